package user

import (
	"github.com/saulo-duarte/enade-questoes/internal/config"
	"github.com/saulo-duarte/enade-questoes/internal/llm"
	"gorm.io/gorm"
)

type UserContainer struct {
	Repo    UserRepository
	Service UserService
	Handler *Handler
}

func NewUserContainer(db *gorm.DB, settings config.Settings) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, map[string]string{
		llm.OpenAI: settings.OpenAIKey,
		llm.Gemini: settings.GoogleKey,
	})
	handler := NewHandler(service)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
