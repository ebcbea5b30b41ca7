package services

import (
	"context"

	"pharma-backend/internal/cache"
	"pharma-backend/internal/invoice"
	"pharma-backend/internal/metrics"
	"pharma-backend/internal/models"
	"pharma-backend/internal/repositories"
)

type OrderService struct {
	Repo *repositories.OrderRepository
}

func NewOrderService(repo *repositories.OrderRepository) *OrderService {
	return &OrderService{Repo: repo}
}

// CreateWithItems validates and persists one invoice submission. Validation
// happens before any database write: an empty item list never reaches the
// repository.
func (s *OrderService) CreateWithItems(ctx context.Context, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	if req.AgencyID == 0 {
		return nil, invalid("agency_id is required")
	}
	if req.UserID == 0 {
		return nil, invalid("user_id is required")
	}
	if len(req.Items) == 0 {
		return nil, invalid("at least one order item is required")
	}
	for _, item := range req.Items {
		if err := item.BatchNumber.Validate(); err != nil {
			return nil, invalid(err.Error())
		}
	}

	status := req.PaymentStatus
	if status == "" {
		status = models.PaymentPending
	}

	order := &models.Order{
		CustomerID:     req.CustomerID,
		AgencyID:       req.AgencyID,
		UserID:         req.UserID,
		PaidDate:       req.PaidDate,
		PaymentStatus:  status,
		PrintCount:     req.PrintCount,
		GrossTotal:     req.GrossTotal,
		NetTotal:       req.NetTotal,
		DiscountAmount: req.DiscountAmount,
	}

	if err := s.Repo.CreateWithItems(ctx, order, req.Items); err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	cache.InvalidateDashboard(ctx)

	return &models.CreateOrderResponse{
		Message:          "Order created successfully",
		OrderID:          order.ID,
		ItemsCount:       len(req.Items),
		FormattedOrderID: models.FormatOrderID(order.ID),
	}, nil
}

// QuoteRequest carries a draft invoice for server-side totals preview
type QuoteRequest struct {
	Items []struct {
		ProductID    int                `json:"product_id"`
		BatchNumber  models.BatchNumber `json:"batch_number"`
		ProductName  string             `json:"product_name"`
		Rate         float64            `json:"rate"`
		Quantity     int                `json:"quantity"`
		FreeQuantity int                `json:"free_quantity"`
	} `json:"items"`
	Discount float64 `json:"discount"`
}

// Quote runs the invoice builder over a draft and returns its totals without
// persisting anything.
func (s *OrderService) Quote(req *QuoteRequest) (*invoice.Totals, error) {
	b := invoice.NewBuilder()
	for i, item := range req.Items {
		if err := b.AddItem(item.ProductID, item.BatchNumber, item.ProductName, item.Rate); err != nil {
			return nil, err
		}
		if err := b.SetQuantity(i, item.Quantity); err != nil {
			return nil, err
		}
		if err := b.SetFreeQuantity(i, item.FreeQuantity); err != nil {
			return nil, err
		}
	}
	b.SetDiscount(req.Discount)

	totals := b.Totals()
	return &totals, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.OrderWithDetails, error) {
	return s.Repo.Get(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context, paymentStatus string) ([]*models.Order, error) {
	return s.Repo.List(ctx, paymentStatus)
}

// UpdateOrder overwrites an order's mutable fields (full-row overwrite,
// last write wins)
func (s *OrderService) UpdateOrder(ctx context.Context, id int, req *models.UpdateOrderRequest) (*models.OrderWithDetails, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:             id,
		PaymentStatus:  req.PaymentStatus,
		PaidDate:       req.PaidDate,
		PrintCount:     req.PrintCount,
		GrossTotal:     req.GrossTotal,
		NetTotal:       req.NetTotal,
		DiscountAmount: req.DiscountAmount,
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = existing.PaymentStatus
	}

	if err := s.Repo.Update(ctx, order); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return s.Repo.Get(ctx, id)
}

// UpdatePaymentStatus applies a pending/paid transition after validating it
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id int, req *models.UpdatePaymentStatusRequest) (*models.OrderWithDetails, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := models.ValidatePaymentTransition(existing.PaymentStatus, req.PaymentStatus, req.PaidDate); err != nil {
		return nil, invalid(err.Error())
	}

	if err := s.Repo.UpdatePaymentStatus(ctx, id, req.PaymentStatus, req.PaidDate); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return s.Repo.Get(ctx, id)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}
