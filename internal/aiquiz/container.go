package aiquiz

import "github.com/saulo-duarte/enade-questoes/internal/llm"

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(factory llm.Factory, keys KeyResolver, recorders ...Recorder) *AIQuizContainer {
	service := NewService(factory, keys, recorders...)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}
}
