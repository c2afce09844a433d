package export

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/enade-questoes/internal/aiquiz"
	"github.com/saulo-duarte/enade-questoes/internal/config"
)

type Request struct {
	Questao  *aiquiz.GeneratedQuestion `json:"questao"`
	Formato  string                    `json:"formato"`
	Arquivar bool                      `json:"arquivar"`
}

type ArchiveResponse struct {
	Arquivo string `json:"arquivo"`
	URL     string `json:"url"`
}

type Handler struct {
	archiver *Archiver
}

// NewHandler accepts a nil archiver; archive requests then answer 503.
func NewHandler(archiver *Archiver) *Handler {
	return &Handler{archiver: archiver}
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Questao == nil || req.Questao.Body() == "" {
		http.Error(w, "questao is required", http.StatusBadRequest)
		return
	}

	// Unsaved questions may arrive without an id; archive keys are grouped by it.
	if req.Questao.ID == uuid.Nil {
		req.Questao.ID = uuid.New()
	}

	format, err := ParseFormat(req.Formato)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !req.Arquivar {
		if err := Write(w, req.Questao, format); err != nil {
			log.WithError(err).Error("Erro ao gerar arquivo para download")
			http.Error(w, "failed to render file", http.StatusInternalServerError)
		}
		return
	}

	if h.archiver == nil {
		http.Error(w, ErrArchiveDisabled.Error(), http.StatusServiceUnavailable)
		return
	}
	link, err := h.archiver.Upload(r.Context(), req.Questao, format)
	if err != nil {
		log.WithError(err).Error("Erro ao arquivar questão")
		http.Error(w, "failed to archive file", http.StatusBadGateway)
		return
	}

	config.JSON(w, http.StatusCreated, ArchiveResponse{
		Arquivo: ObjectKey(req.Questao, format),
		URL:     link,
	})
}

// Write renders q and sends it as an attachment.
func Write(w http.ResponseWriter, q *aiquiz.GeneratedQuestion, f Format) error {
	data, err := Render(q, f)
	if err != nil {
		if errors.Is(err, ErrUnknownFormat) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}
		return err
	}

	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": FileName(q.Curso, f),
	}))
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(data)
	return err
}
