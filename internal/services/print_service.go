package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"pharma-backend/internal/metrics"
	"pharma-backend/internal/models"
	"pharma-backend/internal/repositories"
	"pharma-backend/internal/timeutil"
)

// PrintService renders orders as printable PDF invoices
type PrintService struct {
	OrderRepo *repositories.OrderRepository
}

func NewPrintService(orderRepo *repositories.OrderRepository) *PrintService {
	return &PrintService{OrderRepo: orderRepo}
}

// PrintOrder renders the invoice PDF for an order and bumps its print count.
// The copy label reflects the count before this print: a never-printed order
// prints as "Original", later prints as "Copy (N)".
func (s *PrintService) PrintOrder(ctx context.Context, id int) ([]byte, error) {
	order, err := s.OrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	label := models.PrintLabel(order.PrintCount)

	if _, err := s.OrderRepo.IncrementPrintCount(ctx, id); err != nil {
		return nil, err
	}

	pdf, err := renderInvoice(order, label)
	if err != nil {
		return nil, err
	}

	metrics.InvoicePrintsTotal.Inc()
	return pdf, nil
}

func renderInvoice(order *models.OrderWithDetails, label string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Pharmacy Distribution - Invoice", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Invoice %s  |  %s", order.FormattedOrderID, label), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Parties box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Order Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	customerName := order.CustomerName
	if customerName == "" {
		customerName = "Walk-in"
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Customer: %s", customerName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Agency: %s", order.AgencyName), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Salesperson: %s", order.UserName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", order.PaymentStatus), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Item table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 7, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "Batch", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(25, 7, "Free", "1", 0, "R", true, 0, "")
	pdf.CellFormat(25, 7, "Expiry", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range order.Items {
		expiry := ""
		if item.ExpiryDate != nil {
			expiry = item.ExpiryDate.Format("01/2006")
		}
		pdf.CellFormat(70, 7, item.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, item.BatchNumber.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", item.FreeIssueQuantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, expiry, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	// Totals block
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(140, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("Gross: %.2f", order.GrossTotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(140, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("Discount: %.2f", order.DiscountAmount), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 8, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("Net: %.2f", order.NetTotal), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
