package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/areas", h.ListAreas)
	r.Get("/areas/{area}/courses", h.ListCourses)
	r.Get("/options", h.Options)
	return r
}
