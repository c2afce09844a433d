package quiz

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/enade-questoes/internal/aiquiz"
	"gorm.io/datatypes"
)

var (
	ErrNotFound  = errors.New("question not found")
	ErrInvalidID = errors.New("invalid id")
)

// Question is a generated question saved to a user's history.
type Question struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Area        string         `gorm:"type:text;not null" json:"area"`
	Curso       string         `gorm:"type:text;not null;index" json:"curso"`
	Assunto     string         `gorm:"type:text" json:"assunto"`
	Dificuldade string         `gorm:"type:text" json:"dificuldade"`
	Provedor    string         `gorm:"type:text;not null" json:"provedor"`
	Modelo      string         `gorm:"type:text;not null" json:"modelo"`
	Formato     string         `gorm:"type:text;not null" json:"formato"`
	Texto       string         `gorm:"type:text;not null" json:"texto"`
	Estruturada datatypes.JSON `gorm:"type:jsonb" json:"estruturada,omitempty"`
	Referencia  string         `gorm:"type:text;not null" json:"referencia"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Question) TableName() string {
	return "generated_questions"
}

func fromGenerated(userID uuid.UUID, q *aiquiz.GeneratedQuestion) (*Question, error) {
	row := &Question{
		ID:          q.ID,
		UserID:      userID,
		Area:        q.Area,
		Curso:       q.Curso,
		Assunto:     q.Assunto,
		Dificuldade: q.Dificuldade,
		Provedor:    q.Provedor,
		Modelo:      q.Modelo,
		Formato:     string(q.Formato),
		Texto:       q.Texto,
		Referencia:  q.Referencia,
		CreatedAt:   q.CreatedAt,
	}
	if q.Estruturada != nil {
		payload, err := json.Marshal(q.Estruturada)
		if err != nil {
			return nil, err
		}
		row.Estruturada = datatypes.JSON(payload)
	}
	return row, nil
}

// Generated turns the row back into the shape the export package renders.
func (q *Question) Generated() (*aiquiz.GeneratedQuestion, error) {
	out := &aiquiz.GeneratedQuestion{
		ID:          q.ID,
		Area:        q.Area,
		Curso:       q.Curso,
		Assunto:     q.Assunto,
		Dificuldade: q.Dificuldade,
		Provedor:    q.Provedor,
		Modelo:      q.Modelo,
		Formato:     aiquiz.OutputFormat(q.Formato),
		Texto:       q.Texto,
		Referencia:  q.Referencia,
		CreatedAt:   q.CreatedAt,
	}
	if len(q.Estruturada) > 0 && string(q.Estruturada) != "null" {
		var s aiquiz.StructuredQuestion
		if err := json.Unmarshal(q.Estruturada, &s); err != nil {
			return nil, err
		}
		out.Estruturada = &s
	}
	return out, nil
}
