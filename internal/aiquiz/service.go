package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/enade-questoes/internal/catalog"
	"github.com/saulo-duarte/enade-questoes/internal/config"
	"github.com/saulo-duarte/enade-questoes/internal/llm"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingField   = errors.New("required field is empty")
	ErrProviderFailed = errors.New("llm provider call failed")
)

// RequestError points at the request field that failed validation.
type RequestError struct {
	Field string
	Err   error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

type KeyResolver interface {
	ResolveAPIKey(ctx context.Context, provider, explicit string) (string, error)
}

// Recorder is notified of every generated question. Failures are logged and
// never fail the generation.
type Recorder interface {
	Record(ctx context.Context, q *GeneratedQuestion) error
}

type Service interface {
	GenerateQuestion(ctx context.Context, req QuestionRequest, apiKey string) (*GeneratedQuestion, error)
	Summarize(ctx context.Context, req SummaryRequest, apiKey string) (*SummaryResponse, error)
}

type service struct {
	factory   llm.Factory
	keys      KeyResolver
	recorders []Recorder
	now       func() time.Time
}

func NewService(factory llm.Factory, keys KeyResolver, recorders ...Recorder) Service {
	return &service{
		factory:   factory,
		keys:      keys,
		recorders: recorders,
		now:       time.Now,
	}
}

func (s *service) GenerateQuestion(ctx context.Context, req QuestionRequest, apiKey string) (*GeneratedQuestion, error) {
	log := config.WithContext(ctx)

	if err := normalizeRequest(&req); err != nil {
		log.WithError(err).Warn("[AIQUIZ] Requisição inválida")
		return nil, err
	}

	provider, model, err := s.provider(ctx, req.Provedor, req.Modelo, apiKey)
	if err != nil {
		return nil, err
	}
	req.Provedor, req.Modelo = provider.Name(), model

	now := s.now()
	referencia := BuildReference(req.Fonte, req.Ano, req.Link, now)

	log = log.WithFields(logrus.Fields{
		"provider": req.Provedor,
		"model":    req.Modelo,
		"course":   req.Curso,
		"format":   req.Formato,
	})

	raw, err := provider.Complete(ctx, llm.CompletionRequest{
		System: SystemPrompt(),
		User:   BuildUserPrompt(req, referencia),
		Model:  model,
	})
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Falha ao chamar o provedor")
		return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}
	log.Debugf("[AIQUIZ] Resposta bruta do modelo:\n%s", raw)

	q := &GeneratedQuestion{
		ID:          uuid.New(),
		Area:        req.Area,
		Curso:       req.Curso,
		Assunto:     req.Assunto,
		Dificuldade: req.Dificuldade,
		Provedor:    req.Provedor,
		Modelo:      req.Modelo,
		Formato:     req.Formato,
		Texto:       raw,
		Referencia:  referencia,
		CreatedAt:   now,
	}

	if req.Formato == FormatJSON {
		structured, err := ParseStructured(raw)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				verr.Raw = raw
			}
			log.WithError(err).Warn("[AIQUIZ] JSON gerado fora do formato esperado")
			return nil, err
		}
		q.Estruturada = structured
	}

	for _, r := range s.recorders {
		if err := r.Record(ctx, q); err != nil {
			log.WithError(err).Warnf("[AIQUIZ] Falha ao registrar questão %s", q.ID)
		}
	}

	log.WithField("question_id", q.ID).Info("[AIQUIZ] Questão gerada com sucesso")
	return q, nil
}

func (s *service) Summarize(ctx context.Context, req SummaryRequest, apiKey string) (*SummaryResponse, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(req.Texto) == "" {
		return nil, &RequestError{Field: "texto", Err: ErrMissingField}
	}

	provider, model, err := s.provider(ctx, req.Provedor, req.Modelo, apiKey)
	if err != nil {
		return nil, err
	}

	summary, err := provider.Complete(ctx, llm.CompletionRequest{
		System: SystemPrompt(),
		User:   BuildSummaryPrompt(req.Texto, req.Palavras),
		Model:  model,
	})
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Falha ao resumir texto-base")
		return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}

	return &SummaryResponse{Resumo: summary, Provedor: provider.Name(), Modelo: model}, nil
}

func (s *service) provider(ctx context.Context, name, model, apiKey string) (llm.Provider, string, error) {
	providerName, err := llm.NormalizeProvider(name)
	if err != nil {
		return nil, "", &RequestError{Field: "provedor", Err: err}
	}
	resolvedModel, err := llm.ResolveModel(providerName, model)
	if err != nil {
		return nil, "", &RequestError{Field: "modelo", Err: err}
	}

	key, err := s.keys.ResolveAPIKey(ctx, providerName, apiKey)
	if err != nil {
		return nil, "", err
	}

	provider, err := s.factory(ctx, providerName, key)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("[AIQUIZ] Falha ao criar provedor")
		return nil, "", err
	}
	return provider, resolvedModel, nil
}

func normalizeRequest(req *QuestionRequest) error {
	trim := func(v *string) { *v = strings.TrimSpace(*v) }
	for _, f := range []*string{
		&req.Area, &req.Curso, &req.Assunto, &req.TipoItem, &req.PerfilEgresso,
		&req.Competencia, &req.ObjetoConhecimento, &req.Dificuldade, &req.Observacoes,
		&req.Fonte, &req.Ano, &req.Link,
	} {
		trim(f)
	}

	if err := catalog.ValidateCourse(req.Area, req.Curso); err != nil {
		field := "curso"
		if errors.Is(err, catalog.ErrUnknownArea) {
			field = "area"
		}
		return &RequestError{Field: field, Err: err}
	}
	if req.Fonte == "" {
		return &RequestError{Field: "fonte", Err: ErrMissingField}
	}
	if req.Ano == "" {
		return &RequestError{Field: "ano", Err: ErrMissingField}
	}
	if strings.TrimSpace(req.TextoBase) == "" {
		return &RequestError{Field: "texto_base", Err: ErrMissingField}
	}

	var err error
	if req.TipoItem, err = catalog.NormalizeItemType(req.TipoItem); err != nil {
		return &RequestError{Field: "tipo_item", Err: err}
	}
	if req.Dificuldade, err = catalog.NormalizeDifficulty(req.Dificuldade); err != nil {
		return &RequestError{Field: "dificuldade", Err: err}
	}

	switch req.ModoTextoBase {
	case "":
		req.ModoTextoBase = ExcerptLiteral
	case ExcerptLiteral, ExcerptAI:
	default:
		return &RequestError{Field: "modo_texto_base", Err: fmt.Errorf("unknown mode %q", req.ModoTextoBase)}
	}

	switch req.Formato {
	case "":
		req.Formato = FormatText
	case FormatText, FormatJSON:
	default:
		return &RequestError{Field: "formato", Err: fmt.Errorf("unknown format %q", req.Formato)}
	}

	return nil
}
