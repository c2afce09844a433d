package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/enade-questoes/internal/aiquiz"
	"github.com/saulo-duarte/enade-questoes/internal/auth"
	"github.com/saulo-duarte/enade-questoes/internal/catalog"
	"github.com/saulo-duarte/enade-questoes/internal/config"
	"github.com/saulo-duarte/enade-questoes/internal/export"
	"github.com/saulo-duarte/enade-questoes/internal/middlewares"
	"github.com/saulo-duarte/enade-questoes/internal/quiz"
	"github.com/saulo-duarte/enade-questoes/internal/source"
	"github.com/saulo-duarte/enade-questoes/internal/user"
)

type RouterConfig struct {
	CORSOrigin     string
	CatalogHandler *catalog.Handler
	SourceHandler  *source.Handler
	AIQuizHandler  *aiquiz.Handler
	ExportHandler  *export.Handler
	QuizHandler    *quiz.Handler
	UserHandler    *user.Handler
	AuthHandler    *auth.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CORSOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/catalog", catalog.Routes(cfg.CatalogHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.OptionalAuth)

		r.Mount("/sources", source.Routes(cfg.SourceHandler))
		r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
		r.Mount("/exports", export.Routes(cfg.ExportHandler))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Mount("/questions", quiz.Routes(cfg.QuizHandler))
	r.Mount("/users", user.Routes(cfg.UserHandler))
	return r
}
