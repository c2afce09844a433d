// Package llm wraps the hosted chat-completion APIs used to write questions.
// Calls are single request/response round trips: no retry, no streaming.
package llm

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrUnknownProvider = errors.New("unknown llm provider")
	ErrUnknownModel    = errors.New("model not allowed for provider")
	ErrMissingAPIKey   = errors.New("api key is required")
	ErrEmptyResponse   = errors.New("empty response from model")
)

const (
	OpenAI = "openai"
	Gemini = "gemini"

	DefaultTemperature = 0.6
	DefaultMaxTokens   = 1500
)

type CompletionRequest struct {
	System      string
	User        string
	Model       string
	Temperature float32
	MaxTokens   int
}

func (r CompletionRequest) withDefaults() CompletionRequest {
	if r.Temperature == 0 {
		r.Temperature = DefaultTemperature
	}
	if r.MaxTokens <= 0 {
		r.MaxTokens = DefaultMaxTokens
	}
	return r
}

type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Factory builds a provider for one request; the API key may differ per caller.
type Factory func(ctx context.Context, name, apiKey string) (Provider, error)

var allowedModels = map[string][]string{
	OpenAI: {"gpt-4o-mini", "gpt-3.5-turbo"},
	Gemini: {"gemini-1.5-pro-latest", "gemini-1.5-flash-latest", "gemini-2.0-flash"},
}

// NormalizeProvider accepts the display labels the web form used as well as the short names.
func NormalizeProvider(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case n == "", n == OpenAI, strings.HasPrefix(n, "chatgpt"):
		return OpenAI, nil
	case n == Gemini, strings.HasPrefix(n, "gemini"):
		return Gemini, nil
	}
	return "", ErrUnknownProvider
}

func Models(provider string) []string {
	return append([]string(nil), allowedModels[provider]...)
}

// ResolveModel returns the first allowed model when model is empty.
func ResolveModel(provider, model string) (string, error) {
	models, ok := allowedModels[provider]
	if !ok {
		return "", ErrUnknownProvider
	}
	if model == "" {
		return models[0], nil
	}
	for _, m := range models {
		if m == model {
			return m, nil
		}
	}
	return "", ErrUnknownModel
}

type Endpoints struct {
	OpenAIBaseURL string
	GeminiBaseURL string
}

func NewFactory(endpoints Endpoints) Factory {
	return func(ctx context.Context, name, apiKey string) (Provider, error) {
		if strings.TrimSpace(apiKey) == "" {
			return nil, ErrMissingAPIKey
		}
		switch name {
		case OpenAI:
			return NewOpenAIProvider(apiKey, endpoints.OpenAIBaseURL), nil
		case Gemini:
			return NewGeminiProvider(ctx, apiKey, endpoints.GeminiBaseURL)
		}
		return nil, ErrUnknownProvider
	}
}
