package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/enade-questoes/internal/config"
	"github.com/saulo-duarte/enade-questoes/internal/llm"
)

const APIKeyHeader = "X-LLM-API-Key"

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.service.GenerateQuestion(r.Context(), req, r.Header.Get(APIKeyHeader))
	if err != nil {
		log.WithError(err).Errorf("Failed to generate question: %v", err)
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, question)
}

func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	summary, err := h.service.Summarize(r.Context(), req, r.Header.Get(APIKeyHeader))
	if err != nil {
		log.WithError(err).Errorf("Failed to summarize source: %v", err)
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}

func writeError(w http.ResponseWriter, err error) {
	var (
		reqErr *RequestError
		verr   *ValidationError
	)
	switch {
	case errors.As(err, &reqErr):
		config.Error(w, http.StatusBadRequest, reqErr.Error())
	case errors.Is(err, llm.ErrMissingAPIKey):
		config.Error(w, http.StatusUnauthorized, "api key is required for the selected provider")
	case errors.As(err, &verr):
		config.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":    ErrInvalidQuestion.Error(),
			"missing":  verr.Missing,
			"problems": verr.Problems,
			"raw":      verr.Raw,
		})
	default:
		config.Error(w, http.StatusBadGateway, "failed to generate question")
	}
}
