package dto

import (
	"time"

	"career-guide/internal/domain/account"
)

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AccountResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAccountResponse(a account.Account) AccountResponse {
	return AccountResponse{Email: a.Email, Name: a.Name, CreatedAt: a.CreatedAt}
}
