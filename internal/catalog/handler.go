package catalog

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/enade-questoes/internal/config"
	"github.com/saulo-duarte/enade-questoes/internal/llm"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type OptionsResponse struct {
	Areas        []string            `json:"areas"`
	ItemTypes    []string            `json:"item_types"`
	Difficulties []string            `json:"difficulties"`
	Models       map[string][]string `json:"models"`
}

func (h *Handler) ListAreas(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, Areas())
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	area, err := url.PathUnescape(chi.URLParam(r, "area"))
	if err != nil {
		http.Error(w, "invalid area", http.StatusBadRequest)
		return
	}
	courses, err := Courses(area)
	if err != nil {
		http.Error(w, "area not found", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, courses)
}

func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, OptionsResponse{
		Areas:        Areas(),
		ItemTypes:    ItemTypes(),
		Difficulties: Difficulties(),
		Models: map[string][]string{
			llm.OpenAI: llm.Models(llm.OpenAI),
			llm.Gemini: llm.Models(llm.Gemini),
		},
	})
}
