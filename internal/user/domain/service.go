package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Deactivate(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Cellphone string `json:"cellphone"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type UpdateRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name"`
	Lastname  *string `json:"lastname"`
	Cellphone *string `json:"cellphone"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
}

// Response never carries the password hash.
type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	Cellphone string    `json:"cellphone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrNotFound        = errors.New("user_not_found")
	ErrInvalidID       = errors.New("invalid_user_id")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidEmail    = errors.New("invalid_email")
	ErrInvalidPassword = errors.New("invalid_password")
	ErrInvalidRole     = errors.New("invalid_role")
	ErrEmailExists     = errors.New("email_already_registered")
)
