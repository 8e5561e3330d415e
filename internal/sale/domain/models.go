// Package domain contains core types for the sale service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Date layouts accepted on the wire. DateTimeLayout is the canonical
// form used in responses.
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateOnlyLayout = "2006-01-02"
)

// Sale is one completed transaction. Immutable after creation: the
// total is computed from the prices observed at the moment of sale and
// never recomputed.
type Sale struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	SellerID  snowflake.ID `gorm:"column:seller_id;not null;index"`
	ClientID  snowflake.ID `gorm:"column:client_id;not null;index"`
	Date      time.Time    `gorm:"column:sale_date;not null;index"`
	Total     float64      `gorm:"not null"`
	CreatedAt time.Time    `gorm:"not null"`
	Items     []SaleItem   `gorm:"foreignKey:SaleID"`
}

// TableName sets the database table name.
func (Sale) TableName() string { return "sales" }

// SaleItem is one line of a sale, kept in the order it was submitted.
type SaleItem struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	SaleID    snowflake.ID `gorm:"column:sale_id;not null;index"`
	Position  int          `gorm:"not null"`
	ProductID snowflake.ID `gorm:"column:product_id;not null;index"`
	Quantity  int64        `gorm:"not null"`
}

// TableName sets the database table name.
func (SaleItem) TableName() string { return "sale_items" }

// ParseDate accepts the canonical datetime form and a date-only form.
// The second return reports whether only a date was given.
func ParseDate(raw string) (time.Time, bool, error) {
	if t, err := time.Parse(DateTimeLayout, raw); err == nil {
		return t.UTC(), false, nil
	}
	t, err := time.Parse(DateOnlyLayout, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), true, nil
}
