package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/enade-questoes/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/", h.ListQuestions)
	r.Get("/{id}", h.GetQuestion)
	r.Delete("/{id}", h.DeleteQuestion)
	r.Get("/{id}/download", h.DownloadQuestion)
	return r
}
