package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id snowflake.ID) (*Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	FindByIDs(ctx context.Context, ids []snowflake.ID) ([]Product, error)
	FindActive(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Deactivate(ctx context.Context, id snowflake.ID) error
}
