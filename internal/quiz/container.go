package quiz

import "gorm.io/gorm"

type QuizContainer struct {
	Service QuestionService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &QuizContainer{
		Service: service,
		Handler: handler,
	}
}
