package models

import (
	"errors"
	"strings"
	"time"
)

// BatchNumber is the primary key of a product. It is caller-supplied, not
// generated, so an empty or whitespace-only value must be rejected before it
// reaches the database.
type BatchNumber string

func (b BatchNumber) Validate() error {
	if strings.TrimSpace(string(b)) == "" {
		return errors.New("batch number is required")
	}
	return nil
}

func (b BatchNumber) String() string {
	return string(b)
}

// Product is one batch of a medicine. The batch number is the external key;
// product_id is a serial kept for order item references.
type Product struct {
	ProductID     int         `json:"product_id"`
	BatchNumber   BatchNumber `json:"batch_number"`
	Name          string      `json:"name"`
	Quantity      int         `json:"quantity"`
	PurchasePrice float64     `json:"purchase_price"`
	SellingPrice  float64     `json:"selling_price"`
	ExpiryDate    *time.Time  `json:"expiry_date"`
	AgencyID      *int        `json:"agency_id"`
	IsActive      bool        `json:"is_active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	BatchNumber   BatchNumber `json:"batch_number"`
	Name          string      `json:"name"`
	Quantity      int         `json:"quantity"`
	PurchasePrice float64     `json:"purchase_price"`
	SellingPrice  float64     `json:"selling_price"`
	ExpiryDate    *time.Time  `json:"expiry_date"`
	AgencyID      *int        `json:"agency_id"`
}

// UpdateProductRequest represents the request body for updating a product.
// The batch number itself is immutable; it comes from the URL, never the body.
type UpdateProductRequest struct {
	Name          string     `json:"name"`
	Quantity      int        `json:"quantity"`
	PurchasePrice float64    `json:"purchase_price"`
	SellingPrice  float64    `json:"selling_price"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	AgencyID      *int       `json:"agency_id"`
}
