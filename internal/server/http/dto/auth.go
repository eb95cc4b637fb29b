package dto

import (
	"time"

	"github.com/polkiloo/userauth/internal/domain/model"
)

// RegisterRequest describes registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response is the envelope shared by all API replies.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
}

// UserResponse exposes the non-secret user fields.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse copies public fields from user.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

// HealthResponse reports service status.
type HealthResponse struct {
	Status string `json:"status"`
}

// Failure builds an unsuccessful response with message.
func Failure(message string) Response {
	return Response{Success: false, Message: message}
}
