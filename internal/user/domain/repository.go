package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id snowflake.ID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByIDs(ctx context.Context, ids []snowflake.ID) ([]User, error)
	FindActive(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	Deactivate(ctx context.Context, id snowflake.ID) error
}
