package domain

import (
	"context"
	"errors"
)

type Service interface {
	CreateSale(ctx context.Context, req CreateRequest) (*Receipt, error)
	List(ctx context.Context) ([]Response, error)
	ListByDateRange(ctx context.Context, lo, hi string) ([]Response, error)
	ListByProduct(ctx context.Context, productID string) ([]Response, error)
	ListByUser(ctx context.Context, userID string) ([]Response, error)
}

type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type CreateRequest struct {
	SellerID string     `json:"seller_id"`
	ClientID string     `json:"client_id"`
	Items    []LineItem `json:"products"`
	Date     string     `json:"date"`
}

// ReceiptLine confirms one resolved line back to the caller.
type ReceiptLine struct {
	ProductID string  `json:"product_id"`
	Product   string  `json:"product"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

type Receipt struct {
	ID       string        `json:"id"`
	SellerID string        `json:"seller_id"`
	ClientID string        `json:"client_id"`
	Date     string        `json:"date"`
	Total    float64       `json:"total"`
	Items    []ReceiptLine `json:"products"`
}

// Response is the persisted view of a sale returned by queries.
type Response struct {
	ID       string     `json:"id"`
	SellerID string     `json:"seller_id"`
	ClientID string     `json:"client_id"`
	Date     string     `json:"date"`
	Total    float64    `json:"total"`
	Items    []LineItem `json:"products"`
}

var (
	ErrInvalidSellerID  = errors.New("invalid_seller_id")
	ErrInvalidClientID  = errors.New("invalid_client_id")
	ErrInvalidProductID = errors.New("invalid_product_id")
	ErrInvalidQuantity  = errors.New("invalid_quantity")
	ErrMissingItems     = errors.New("missing_line_items")
	ErrInvalidDate      = errors.New("invalid_date")
	ErrProductNotFound  = errors.New("product_not_found")
)
