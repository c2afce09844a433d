package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrDecryptFailed = errors.New("failed to decrypt stored api key")
)

const RoleDocente = "docente"

type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email              string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Name               string    `gorm:"type:text" json:"name"`
	Role               string    `gorm:"type:text;not null;default:docente" json:"role"`
	EncryptedOpenAIKey string    `gorm:"type:text" json:"-"`
	EncryptedGeminiKey string    `gorm:"type:text" json:"-"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
