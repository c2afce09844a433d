package user

import (
	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/enade-questoes/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/me", h.GetUser)
	r.Put("/me/api-keys", h.UpdateAPIKey)
	return r
}
