package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/sica/internal/provider/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, provider *domain.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.Provider, error) {
	var p domain.Provider
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindActive(ctx context.Context) ([]domain.Provider, error) {
	var items []domain.Provider
	err := r.db.WithContext(ctx).
		Where("record_status = ?", domain.RecordStatusActive).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, provider *domain.Provider) error {
	tx := r.db.WithContext(ctx).Model(&domain.Provider{}).Where("id = ?", provider.ID).Updates(map[string]any{
		"name":       provider.Name,
		"address":    provider.Address,
		"updated_at": provider.UpdatedAt,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) Deactivate(ctx context.Context, id snowflake.ID) error {
	tx := r.db.WithContext(ctx).Model(&domain.Provider{}).
		Where("id = ? AND record_status = ?", id, domain.RecordStatusActive).
		Update("record_status", domain.RecordStatusInactive)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
