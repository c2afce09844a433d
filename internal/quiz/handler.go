package quiz

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/enade-questoes/internal/auth"
	"github.com/saulo-duarte/enade-questoes/internal/config"
	"github.com/saulo-duarte/enade-questoes/internal/export"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	questions, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar histórico de questões")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	q, ok := h.load(w, r)
	if !ok {
		return
	}
	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), claims.UserID); err != nil {
		if !writeLookupError(w, err) {
			log.WithError(err).Error("Erro ao deletar questão")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question deleted successfully",
	})
}

func (h *Handler) DownloadQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, ok := h.load(w, r)
	if !ok {
		return
	}
	generated, err := q.Generated()
	if err != nil {
		log.WithError(err).Error("Questão salva com JSON inválido")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := export.Write(w, generated, format); err != nil {
		log.WithError(err).Error("Erro ao gerar download da questão")
	}
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*Question, bool) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	q, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), claims.UserID)
	if err != nil {
		if !writeLookupError(w, err) {
			log.WithError(err).Error("Erro ao buscar questão")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return nil, false
	}
	return q, true
}

func writeLookupError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid question id", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "question not found", http.StatusNotFound)
	default:
		return false
	}
	return true
}
