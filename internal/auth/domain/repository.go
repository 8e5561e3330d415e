package domain

import "context"

// TokenRepository persists session tokens. Deletes report ErrTokenNotFound
// when nothing matched so revocation is visibly non-idempotent.
type TokenRepository interface {
	Create(ctx context.Context, token *Token) error
	FindByHash(ctx context.Context, tokenHash string) (*Token, error)
	DeleteByHash(ctx context.Context, tokenHash string) error
}
