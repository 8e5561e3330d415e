package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/sica/internal/auth/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.TokenRepository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, token *domain.Token) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *repo) FindByHash(ctx context.Context, tokenHash string) (*domain.Token, error) {
	var token domain.Token
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTokenNotFound
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *repo) DeleteByHash(ctx context.Context, tokenHash string) error {
	tx := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&domain.Token{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}
