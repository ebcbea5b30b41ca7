package models

import (
	"fmt"
	"time"

	"pharma-backend/internal/timeutil"
)

// Payment status values. "cancelled" is reserved for future use: it is a
// legal stored value but no transition ever writes it.
const (
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentCancelled = "cancelled"
)

// Order is one consolidated invoice header. CustomerID is nullable because
// walk-in sales carry no customer.
type Order struct {
	ID             int       `json:"id"`
	CustomerID     *int      `json:"customer_id"`
	AgencyID       int       `json:"agency_id"`
	UserID         int       `json:"user_id"`
	PaidDate       *string   `json:"paid_date"`
	PaymentStatus  string    `json:"payment_status"`
	PrintCount     int       `json:"print_count"`
	GrossTotal     float64   `json:"gross_total"`
	NetTotal       float64   `json:"net_total"`
	DiscountAmount float64   `json:"discount_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderItem is one line of an order. ProductName and ExpiryDate are join
// fields populated on reads; they are not stored on the item row.
type OrderItem struct {
	ID                int         `json:"id"`
	OrderID           int         `json:"order_id"`
	ProductID         int         `json:"product_id"`
	BatchNumber       BatchNumber `json:"batch_number"`
	Quantity          int         `json:"quantity"`
	FreeIssueQuantity int         `json:"free_issue_quantity"`

	ProductName string     `json:"product_name,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
}

// OrderWithDetails is an order joined with its counterparty names and items
type OrderWithDetails struct {
	Order
	FormattedOrderID string      `json:"formatted_order_id"`
	CustomerName     string      `json:"customer_name"`
	AgencyName       string      `json:"agency_name"`
	UserName         string      `json:"user_name"`
	Items            []OrderItem `json:"items"`
}

// CreateOrderRequest is the consolidated invoice submission payload: the
// header and every line item in one body, persisted atomically.
type CreateOrderRequest struct {
	CustomerID     *int        `json:"customer_id"`
	AgencyID       int         `json:"agency_id"`
	UserID         int         `json:"user_id"`
	PaidDate       *string     `json:"paid_date"`
	PaymentStatus  string      `json:"payment_status"`
	PrintCount     int         `json:"print_count"`
	GrossTotal     float64     `json:"gross_total"`
	NetTotal       float64     `json:"net_total"`
	DiscountAmount float64     `json:"discount_amount"`
	Items          []OrderItem `json:"items"`
}

// CreateOrderResponse confirms a persisted submission
type CreateOrderResponse struct {
	Message          string `json:"message"`
	OrderID          int    `json:"orderId"`
	ItemsCount       int    `json:"itemsCount"`
	FormattedOrderID string `json:"formattedOrderId"`
}

// UpdateOrderRequest represents the request body for a full-row order update
type UpdateOrderRequest struct {
	PaymentStatus  string  `json:"payment_status"`
	PaidDate       *string `json:"paid_date"`
	PrintCount     int     `json:"print_count"`
	GrossTotal     float64 `json:"gross_total"`
	NetTotal       float64 `json:"net_total"`
	DiscountAmount float64 `json:"discount_amount"`
}

// UpdatePaymentStatusRequest carries one payment-status transition
type UpdatePaymentStatusRequest struct {
	PaymentStatus string  `json:"payment_status"`
	PaidDate      *string `json:"paid_date"`
}

// FormatOrderID renders the display form of an order id: "O" plus the id
// zero-padded to five digits. Ids above 99999 keep all their digits.
func FormatOrderID(id int) string {
	return fmt.Sprintf("O%05d", id)
}

// PrintLabel maps a stored print count to the label stamped on the invoice:
// the first print is the original, every later one is a numbered copy.
func PrintLabel(count int) string {
	if count == 0 {
		return "Original"
	}
	return fmt.Sprintf("Copy (%d)", count)
}

// ValidatePaymentTransition checks a requested payment-status change.
// Moving to paid requires a parseable YYYY-MM-DD paid date; moving back to
// pending is always allowed and keeps the stored paid date. No transition
// ever targets cancelled.
func ValidatePaymentTransition(from, to string, paidDate *string) error {
	switch to {
	case PaymentPaid:
		if paidDate == nil {
			return fmt.Errorf("paid date is required to mark an order paid")
		}
		if _, err := timeutil.ParseDate(*paidDate); err != nil {
			return fmt.Errorf("invalid paid date %q: expected YYYY-MM-DD", *paidDate)
		}
		return nil
	case PaymentPending:
		return nil
	default:
		return fmt.Errorf("unsupported payment status %q", to)
	}
}
