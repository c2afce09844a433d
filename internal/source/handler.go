package source

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/saulo-duarte/enade-questoes/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ExtractURL(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req URLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	src, err := h.service.FromURL(r.Context(), req.URL)
	if err != nil {
		log.WithError(err).Warn("Falha ao extrair URL")
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, src)
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes+(1<<20))
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, ErrFileTooLarge.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > MaxUploadBytes {
		http.Error(w, ErrFileTooLarge.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}

	src, err := h.service.FromUpload(r.Context(), header.Filename, data)
	if err != nil {
		log.WithError(err).Warn("Falha ao ler arquivo enviado")
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, src)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	articles, err := h.service.Search(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, articles)
}

func (h *Handler) Paragraphs(w http.ResponseWriter, r *http.Request) {
	var req ParagraphsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	paragraphs := Paragraphs(req.Text, req.MinLength)
	excerpt, whole := SelectExcerpt(req.Text, paragraphs, req.Selected)

	config.JSON(w, http.StatusOK, ParagraphsResponse{
		Paragraphs: paragraphs,
		Excerpt:    excerpt,
		UsedWhole:  whole,
	})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidURL), errors.Is(err, ErrEmptySearchQuery):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUnsupportedFormat):
		http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
	case errors.Is(err, ErrFileTooLarge):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, ErrEmptySource):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "failed to extract source", http.StatusBadGateway)
	}
}
