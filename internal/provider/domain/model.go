// Package domain contains core types for the provider service.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// RecordStatus is the soft-delete state of a stored record.
type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "active"
	RecordStatusInactive RecordStatus = "inactive"
)

type Provider struct {
	ID           snowflake.ID `gorm:"primaryKey"`
	Name         string       `gorm:"type:text;not null"`
	Address      string       `gorm:"type:text"`
	RecordStatus RecordStatus `gorm:"column:record_status;type:text;not null;default:'active';index"`
	CreatedAt    time.Time    `gorm:"not null"`
	UpdatedAt    time.Time    `gorm:"not null"`
}

// TableName sets the database table name.
func (Provider) TableName() string { return "providers" }

type Repository interface {
	Create(ctx context.Context, provider *Provider) error
	FindByID(ctx context.Context, id snowflake.ID) (*Provider, error)
	FindActive(ctx context.Context) ([]Provider, error)
	Update(ctx context.Context, provider *Provider) error
	Deactivate(ctx context.Context, id snowflake.ID) error
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Deactivate(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type UpdateRequest struct {
	ID      string  `json:"-"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrNotFound    = errors.New("provider_not_found")
	ErrInvalidID   = errors.New("invalid_provider_id")
	ErrInvalidName = errors.New("invalid_name")
)
