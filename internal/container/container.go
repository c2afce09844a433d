package container

import (
	"context"
	"log"

	"github.com/saulo-duarte/enade-questoes/internal/aiquiz"
	"github.com/saulo-duarte/enade-questoes/internal/auth"
	"github.com/saulo-duarte/enade-questoes/internal/catalog"
	"github.com/saulo-duarte/enade-questoes/internal/config"
	"github.com/saulo-duarte/enade-questoes/internal/export"
	"github.com/saulo-duarte/enade-questoes/internal/llm"
	"github.com/saulo-duarte/enade-questoes/internal/quiz"
	"github.com/saulo-duarte/enade-questoes/internal/router"
	"github.com/saulo-duarte/enade-questoes/internal/source"
	"github.com/saulo-duarte/enade-questoes/internal/user"
)

type Container struct {
	Settings        config.Settings
	UserContainer   *user.UserContainer
	SourceContainer *source.SourceContainer
	AIQuizContainer *aiquiz.AIQuizContainer
	QuizContainer   *quiz.QuizContainer
	ExportContainer *export.ExportContainer
	CatalogHandler  *catalog.Handler
	AuthHandler     *auth.Handler
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	settings := config.Load()

	if err := config.Connect(context.Background(), settings.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&user.User{}, &quiz.Question{}); err != nil {
		log.Fatalf("failed to migrate DB: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB, settings)
	quizContainer := quiz.NewQuizContainer(config.DB)
	exportContainer := export.NewExportContainer(settings)
	sourceContainer := source.NewSourceContainer(settings.SearchBaseURL)

	recorders := []aiquiz.Recorder{quizContainer.Service}
	if exportContainer.Ledger.Enabled() {
		recorders = append(recorders, exportContainer.Ledger)
	}

	factory := llm.NewFactory(llm.Endpoints{
		OpenAIBaseURL: settings.OpenAIBaseURL,
		GeminiBaseURL: settings.GeminiBaseURL,
	})
	aiQuizContainer := aiquiz.NewAIQuizContainer(factory, userContainer.Service, recorders...)

	return &Container{
		Settings:        settings,
		UserContainer:   userContainer,
		SourceContainer: sourceContainer,
		AIQuizContainer: aiQuizContainer,
		QuizContainer:   quizContainer,
		ExportContainer: exportContainer,
		CatalogHandler:  catalog.NewHandler(),
		AuthHandler:     auth.NewHandler(settings.CookieDomain),
	}
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		CORSOrigin:     c.Settings.CORSOrigin,
		CatalogHandler: c.CatalogHandler,
		SourceHandler:  c.SourceContainer.Handler,
		AIQuizHandler:  c.AIQuizContainer.Handler,
		ExportHandler:  c.ExportContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		UserHandler:    c.UserContainer.Handler,
		AuthHandler:    c.AuthHandler,
	}
}
