package domain

import (
	"context"
	"time"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	Authenticate(ctx context.Context, rawToken string) (*Token, error)
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	RawToken  string
	UserEmail string
	ExpiresAt time.Time
}
