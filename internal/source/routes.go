package source

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/url", h.ExtractURL)
	r.Post("/upload", h.Upload)
	r.Post("/paragraphs", h.Paragraphs)
	r.Get("/search", h.Search)
	return r
}
