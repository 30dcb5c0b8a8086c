package auth

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PrincipalResponse struct {
	ID     string `json:"id"`
	Role   string `json:"role"`
	Origin string `json:"origin"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresAt   time.Time         `json:"expires_at"`
	Principal   PrincipalResponse `json:"principal"`
}

func ToPrincipalResponse(p *Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:     p.ID,
		Role:   string(p.Role),
		Origin: string(p.Origin),
		Email:  p.Email(),
		Name:   p.DisplayName(),
	}
}
