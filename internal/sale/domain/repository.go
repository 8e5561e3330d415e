package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// UserRole selects which side of a sale a user query matches.
type UserRole string

const (
	UserRoleSeller UserRole = "seller"
	UserRoleClient UserRole = "client"
	UserRoleBoth   UserRole = "both"
)

type Repository interface {
	// Create persists the sale and its items in a single transaction.
	Create(ctx context.Context, sale *Sale) error
	FindAll(ctx context.Context) ([]Sale, error)
	FindByDateRange(ctx context.Context, lo, hi time.Time) ([]Sale, error)
	FindByProduct(ctx context.Context, productID snowflake.ID) ([]Sale, error)
	FindByUser(ctx context.Context, userID snowflake.ID, role UserRole) ([]Sale, error)
	CountAll(ctx context.Context) (int64, error)
}
