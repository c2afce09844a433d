package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/enade-questoes/internal/auth"
	"github.com/saulo-duarte/enade-questoes/internal/config"
	"github.com/saulo-duarte/enade-questoes/internal/llm"
)

type UserService interface {
	EnsureByEmail(ctx context.Context, email, name string) (*User, error)
	GetProfile(ctx context.Context, userID string) (*UserResponse, error)
	SaveAPIKey(ctx context.Context, userID, provider, key string) error
	ResolveAPIKey(ctx context.Context, provider, explicit string) (string, error)
}

type userService struct {
	repo         UserRepository
	fallbackKeys map[string]string
}

// NewService takes the server-wide keys used when neither the request nor the
// user's settings carry one.
func NewService(repo UserRepository, fallbackKeys map[string]string) UserService {
	return &userService{repo: repo, fallbackKeys: fallbackKeys}
}

func (s *userService) EnsureByEmail(ctx context.Context, email, name string) (*User, error) {
	log := config.WithContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar usuário por email")
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u = &User{ID: uuid.New(), Email: email, Name: name, Role: RoleDocente}
	if err := s.repo.Create(ctx, u); err != nil {
		log.WithError(err).Error("Erro ao criar usuário")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("Usuário criado")
	return u, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*UserResponse, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}

func (s *userService) SaveAPIKey(ctx context.Context, userID, provider, key string) error {
	log := config.WithContext(ctx)

	name, err := llm.NormalizeProvider(provider)
	if err != nil {
		return err
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	encrypted := ""
	if key = strings.TrimSpace(key); key != "" {
		if encrypted, err = config.Encrypt(key); err != nil {
			log.WithError(err).Error("Falha ao criptografar chave de API")
			return err
		}
	}

	switch name {
	case llm.OpenAI:
		u.EncryptedOpenAIKey = encrypted
	case llm.Gemini:
		u.EncryptedGeminiKey = encrypted
	}

	if err := s.repo.Update(ctx, u); err != nil {
		log.WithError(err).Error("Erro ao salvar chave de API")
		return err
	}

	log.WithField("provider", name).Info("Chave de API atualizada")
	return nil
}

// ResolveAPIKey picks the key in order: explicit value, the caller's stored
// key, the server key from the environment.
func (s *userService) ResolveAPIKey(ctx context.Context, provider, explicit string) (string, error) {
	if k := strings.TrimSpace(explicit); k != "" {
		return k, nil
	}

	if stored := s.storedKey(ctx, provider); stored != "" {
		return stored, nil
	}

	if k := strings.TrimSpace(s.fallbackKeys[provider]); k != "" {
		return k, nil
	}
	return "", llm.ErrMissingAPIKey
}

func (s *userService) storedKey(ctx context.Context, provider string) string {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return ""
	}
	u, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		if err != nil {
			log.WithError(err).Warn("Não foi possível carregar o usuário para resolver a chave")
		}
		return ""
	}

	encrypted := u.EncryptedOpenAIKey
	if provider == llm.Gemini {
		encrypted = u.EncryptedGeminiKey
	}
	if encrypted == "" {
		return ""
	}

	key, err := config.Decrypt(encrypted)
	if err != nil {
		log.WithError(ErrDecryptFailed).Warn(err.Error())
		return ""
	}
	return key
}
