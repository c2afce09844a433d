package quiz

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, q *Question) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*Question, error)
	ListByUser(ctx context.Context, userID string) ([]*Question, error)
	Delete(ctx context.Context, id, userID string) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *questionRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*Question, error) {
	var q Question
	if err := r.db.WithContext(ctx).First(&q, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) ListByUser(ctx context.Context, userID string) ([]*Question, error) {
	var questions []*Question
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).Delete(&Question{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
