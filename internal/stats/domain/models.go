// Package domain contains the read-only analytics types.
package domain

import "context"

// ProductQuantity is the quantity sold of one product across all sales.
type ProductQuantity struct {
	Product  string `json:"product"`
	Quantity int64  `json:"quantity"`
}

// DateTotal is the revenue of one calendar day.
type DateTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// PeriodTotal is the revenue of one week or month of the current year.
type PeriodTotal struct {
	Period int     `json:"period"`
	Total  float64 `json:"total"`
}

// SellerTotal is the revenue attributed to one seller.
type SellerTotal struct {
	Seller string  `json:"seller"`
	Total  float64 `json:"total"`
}

type Service interface {
	TopProducts(ctx context.Context) ([]ProductQuantity, error)
	SalesPerDay(ctx context.Context) ([]DateTotal, error)
	SalesPerWeek(ctx context.Context) ([]PeriodTotal, error)
	SalesPerMonth(ctx context.Context) ([]PeriodTotal, error)
	SalesPerSeller(ctx context.Context) ([]SellerTotal, error)
}
