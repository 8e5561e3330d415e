// Package domain contains core types for the product service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// RecordStatus is the soft-delete state of a stored record.
type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "active"
	RecordStatusInactive RecordStatus = "inactive"
)

type Product struct {
	ID           snowflake.ID      `gorm:"primaryKey"`
	Name         string            `gorm:"type:text;not null;uniqueIndex"`
	Description  string            `gorm:"type:text"`
	Category     string            `gorm:"type:text;index"`
	Price        float64           `gorm:"not null"`
	Status       string            `gorm:"type:text;not null"`
	Quantity     int64             `gorm:"not null;default:0"`
	Metadata     datatypes.JSONMap `gorm:"type:jsonb"`
	RecordStatus RecordStatus      `gorm:"column:record_status;type:text;not null;default:'active';index"`
	CreatedAt    time.Time         `gorm:"not null"`
	UpdatedAt    time.Time         `gorm:"not null"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }
