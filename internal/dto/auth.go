package dto

import (
	"time"

	"hrms/internal/database/mongodb/model"
	"hrms/internal/pkg/request"
)

type LoginDto struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (LoginDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Email.required":    "email is required",
		"Email.email":       "email format is invalid",
		"Password.required": "password is required",
	}
}

type LoginResponseDto struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Employee    *model.Employee `json:"employee"`
}
