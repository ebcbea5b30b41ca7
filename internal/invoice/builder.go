// Package invoice accumulates line items and computes billing totals for one
// consolidated order submission. The builder holds only in-memory state;
// nothing is persisted until the payload it produces is submitted.
package invoice

import (
	"errors"
	"fmt"

	"pharma-backend/internal/models"
)

// LineItem is one row of a draft invoice. Rate is captured from the product's
// selling price at add-time and never re-read afterwards.
type LineItem struct {
	ProductID    int                `json:"product_id"`
	BatchNumber  models.BatchNumber `json:"batch_number"`
	ProductName  string             `json:"product_name"`
	Quantity     int                `json:"quantity"`
	FreeQuantity int                `json:"free_quantity"`
	Rate         float64            `json:"rate"`
	Amount       float64            `json:"amount"`
	Total        float64            `json:"total"`
}

// Totals is the derived billing summary of a draft invoice
type Totals struct {
	GrossTotal           float64 `json:"gross_total"`
	FreeQuantityDiscount float64 `json:"free_quantity_discount"`
	ManualDiscount       float64 `json:"manual_discount"`
	TotalDiscount        float64 `json:"total_discount"`
	NetTotal             float64 `json:"net_total"`
}

// Builder accumulates line items and a manual discount for one invoice
type Builder struct {
	items    []LineItem
	discount float64
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Items returns the current line items
func (b *Builder) Items() []LineItem {
	return b.items
}

// AddItem records one unit of a product batch. If a line for the same
// (batch, product) pair already exists its quantity grows by one; otherwise a
// new line starts at quantity 1 with no free units.
func (b *Builder) AddItem(productID int, batch models.BatchNumber, name string, unitPrice float64) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	for i := range b.items {
		if b.items[i].BatchNumber == batch && b.items[i].ProductID == productID {
			b.items[i].Quantity++
			b.recompute(i)
			return nil
		}
	}

	b.items = append(b.items, LineItem{
		ProductID:    productID,
		BatchNumber:  batch,
		ProductName:  name,
		Quantity:     1,
		FreeQuantity: 0,
		Rate:         unitPrice,
		Amount:       unitPrice,
		Total:        unitPrice,
	})
	return nil
}

// SetQuantity sets a line's paid quantity, clamped to zero or above
func (b *Builder) SetQuantity(index, quantity int) error {
	if index < 0 || index >= len(b.items) {
		return fmt.Errorf("no line item at index %d", index)
	}
	if quantity < 0 {
		quantity = 0
	}
	b.items[index].Quantity = quantity
	b.recompute(index)
	return nil
}

// SetFreeQuantity sets a line's free (bonus) units, clamped to zero or above.
// Free units never change the line amount; they are a discount mechanism.
func (b *Builder) SetFreeQuantity(index, quantity int) error {
	if index < 0 || index >= len(b.items) {
		return fmt.Errorf("no line item at index %d", index)
	}
	if quantity < 0 {
		quantity = 0
	}
	b.items[index].FreeQuantity = quantity
	b.recompute(index)
	return nil
}

// RemoveItem deletes a line. Order of the remaining lines is preserved.
func (b *Builder) RemoveItem(index int) error {
	if index < 0 || index >= len(b.items) {
		return fmt.Errorf("no line item at index %d", index)
	}
	b.items = append(b.items[:index], b.items[index+1:]...)
	return nil
}

// SetDiscount sets the manual discount, clamped to [0, grossTotal]
func (b *Builder) SetDiscount(discount float64) {
	if discount < 0 {
		discount = 0
	}
	if gross := b.grossTotal(); discount > gross {
		discount = gross
	}
	b.discount = discount
}

// Discount returns the manual discount after clamping
func (b *Builder) Discount() float64 {
	return b.discount
}

func (b *Builder) recompute(i int) {
	line := &b.items[i]
	line.Amount = float64(line.Quantity) * line.Rate
	line.Total = line.Amount
}

func (b *Builder) grossTotal() float64 {
	var gross float64
	for _, item := range b.items {
		gross += float64(item.Quantity) * item.Rate
	}
	return gross
}

// Totals derives the billing summary from the current lines and discount.
// The net total is gross minus the manual discount minus the monetary value
// of all free units.
func (b *Builder) Totals() Totals {
	gross := b.grossTotal()

	var freeDiscount float64
	for _, item := range b.items {
		freeDiscount += float64(item.FreeQuantity) * item.Rate
	}

	manual := b.discount
	if manual > gross {
		manual = gross
	}

	totalDiscount := manual + freeDiscount
	return Totals{
		GrossTotal:           gross,
		FreeQuantityDiscount: freeDiscount,
		ManualDiscount:       manual,
		TotalDiscount:        totalDiscount,
		NetTotal:             gross - totalDiscount,
	}
}

// BuildRequest validates the draft and assembles the consolidated submission
// payload. Customer is optional (walk-in orders); agency and salesperson are
// mandatory, and at least one line item must exist.
func (b *Builder) BuildRequest(customerID *int, agencyID, userID int, paidDate *string) (*models.CreateOrderRequest, error) {
	if agencyID == 0 {
		return nil, errors.New("agency is required")
	}
	if userID == 0 {
		return nil, errors.New("salesperson is required")
	}
	if len(b.items) == 0 {
		return nil, errors.New("at least one line item is required")
	}

	totals := b.Totals()
	items := make([]models.OrderItem, 0, len(b.items))
	for _, line := range b.items {
		items = append(items, models.OrderItem{
			ProductID:         line.ProductID,
			BatchNumber:       line.BatchNumber,
			Quantity:          line.Quantity,
			FreeIssueQuantity: line.FreeQuantity,
		})
	}

	return &models.CreateOrderRequest{
		CustomerID:     customerID,
		AgencyID:       agencyID,
		UserID:         userID,
		PaidDate:       paidDate,
		PaymentStatus:  models.PaymentPending,
		PrintCount:     0,
		GrossTotal:     totals.GrossTotal,
		NetTotal:       totals.NetTotal,
		DiscountAmount: totals.TotalDiscount,
		Items:          items,
	}, nil
}

// Reset clears all draft state after a successful submission
func (b *Builder) Reset() {
	b.items = nil
	b.discount = 0
}
