package user

import "github.com/google/uuid"

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	HasOpenAIKey bool      `json:"has_openai_key"`
	HasGeminiKey bool      `json:"has_gemini_key"`
}

// APIKeyRequest stores a provider key; an empty chave removes it.
type APIKeyRequest struct {
	Provedor string `json:"provedor"`
	Chave    string `json:"chave"`
}

func toResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		HasOpenAIKey: u.EncryptedOpenAIKey != "",
		HasGeminiKey: u.EncryptedGeminiKey != "",
	}
}
