package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/sica/internal/sale/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, sale *domain.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(sale).Error; err != nil {
			return err
		}
		if len(sale.Items) == 0 {
			return nil
		}
		return tx.Create(&sale.Items).Error
	})
}

func (r *repo) FindAll(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.withItems(ctx).
		Order("sale_date ASC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *repo) FindByDateRange(ctx context.Context, lo, hi time.Time) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.withItems(ctx).
		Where("sale_date >= ? AND sale_date <= ?", lo, hi).
		Order("sale_date ASC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *repo) FindByProduct(ctx context.Context, productID snowflake.ID) ([]domain.Sale, error) {
	var sales []domain.Sale
	sub := r.db.Model(&domain.SaleItem{}).
		Select("sale_id").
		Where("product_id = ?", productID)
	err := r.withItems(ctx).
		Where("id IN (?)", sub).
		Order("sale_date ASC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *repo) FindByUser(ctx context.Context, userID snowflake.ID, role domain.UserRole) ([]domain.Sale, error) {
	stmt := r.withItems(ctx)
	switch role {
	case domain.UserRoleSeller:
		stmt = stmt.Where("seller_id = ?", userID)
	case domain.UserRoleClient:
		stmt = stmt.Where("client_id = ?", userID)
	default:
		stmt = stmt.Where("seller_id = ? OR client_id = ?", userID, userID)
	}

	var sales []domain.Sale
	if err := stmt.Order("sale_date ASC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *repo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Sale{}).Count(&count).Error
	return count, err
}

func (r *repo) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.Sale{}).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}
