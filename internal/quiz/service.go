package quiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/enade-questoes/internal/aiquiz"
	"github.com/saulo-duarte/enade-questoes/internal/auth"
	"github.com/saulo-duarte/enade-questoes/internal/config"
)

type QuestionService interface {
	Record(ctx context.Context, q *aiquiz.GeneratedQuestion) error
	List(ctx context.Context, userID string) ([]*Question, error)
	Get(ctx context.Context, id, userID string) (*Question, error)
	Delete(ctx context.Context, id, userID string) error
}

type questionService struct {
	repo QuestionRepository
}

func NewService(repo QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

// Record saves q to the caller's history. Anonymous generations are not kept.
func (s *questionService) Record(ctx context.Context, q *aiquiz.GeneratedQuestion) error {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.Debug("Questão gerada sem usuário autenticado; histórico ignorado")
		return nil
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fmt.Errorf("%w: user %q", ErrInvalidID, claims.UserID)
	}

	row, err := fromGenerated(userID, q)
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, row); err != nil {
		log.Errorf("Erro ao salvar questão no histórico: %v", err)
		return err
	}

	log.WithField("question_id", row.ID).Info("Questão salva no histórico")
	return nil
}

func (s *questionService) List(ctx context.Context, userID string) ([]*Question, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Errorf("Erro ao listar questões do usuário: %v", err)
		return nil, err
	}
	return questions, nil
}

func (s *questionService) Get(ctx context.Context, id, userID string) (*Question, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.GetByIDAndUser(ctx, id, userID)
}

func (s *questionService) Delete(ctx context.Context, id, userID string) error {
	log := config.WithContext(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		log.Errorf("Erro ao deletar questão: %v", err)
		return err
	}

	log.WithField("question_id", id).Info("Questão deletada com sucesso")
	return nil
}
