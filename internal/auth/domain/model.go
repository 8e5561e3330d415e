// Package domain contains core types for the auth service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Token represents one active login session. Tokens are immutable once
// issued; the raw value is handed to the caller exactly once and only
// its SHA-256 digest is persisted.
type Token struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	TokenHash string       `gorm:"column:token_hash;type:text;not null;uniqueIndex"`
	UserEmail string       `gorm:"column:user_email;type:text;not null;index"`
	ExpiresAt time.Time    `gorm:"column:expires_at;not null;index"`
	CreatedAt time.Time    `gorm:"column:created_at;not null"`
}

// TableName sets the database table name.
func (Token) TableName() string { return "tokens" }
