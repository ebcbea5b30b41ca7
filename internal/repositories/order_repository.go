package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"pharma-backend/internal/models"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateWithItems inserts the order header and all item rows inside one
// transaction: the order and its items appear together or not at all.
func (r *OrderRepository) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO orders(customer_id, agency_id, user_id, paid_date, payment_status,
                            print_count, gross_total, net_total, discount_amount)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		order.CustomerID, order.AgencyID, order.UserID, order.PaidDate, order.PaymentStatus,
		order.PrintCount, order.GrossTotal, order.NetTotal, order.DiscountAmount,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for _, item := range items {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items(order_id, product_id, batch_number, quantity, free_issue_quantity)
			 VALUES($1, $2, $3, $4, $5)`,
			order.ID, item.ProductID, item.BatchNumber, item.Quantity, item.FreeIssueQuantity,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Get retrieves an order with joined names and its item rows. Walk-in orders
// have no customer; COALESCE keeps the name fields usable.
func (r *OrderRepository) Get(ctx context.Context, id int) (*models.OrderWithDetails, error) {
	var order models.OrderWithDetails
	err := r.DB.QueryRow(ctx,
		`SELECT o.id, o.customer_id, o.agency_id, o.user_id, o.paid_date::text, o.payment_status,
		        o.print_count, o.gross_total, o.net_total, o.discount_amount, o.created_at,
		        COALESCE(c.name, '') as customer_name,
		        COALESCE(a.name, '') as agency_name,
		        COALESCE(u.name, '') as user_name
		 FROM orders o
		 LEFT JOIN customers c ON o.customer_id = c.id
		 LEFT JOIN agencies a ON o.agency_id = a.id
		 LEFT JOIN users u ON o.user_id = u.id
		 WHERE o.id = $1`, id,
	).Scan(&order.ID, &order.CustomerID, &order.AgencyID, &order.UserID, &order.PaidDate,
		&order.PaymentStatus, &order.PrintCount, &order.GrossTotal, &order.NetTotal,
		&order.DiscountAmount, &order.CreatedAt,
		&order.CustomerName, &order.AgencyName, &order.UserName)
	if err != nil {
		return nil, err
	}

	order.FormattedOrderID = models.FormatOrderID(order.ID)

	rows, err := r.DB.Query(ctx,
		`SELECT i.id, i.order_id, i.product_id, i.batch_number, i.quantity, i.free_issue_quantity,
		        COALESCE(p.name, '') as product_name, p.expiry_date
		 FROM order_items i
		 LEFT JOIN products p ON i.batch_number = p.batch_number
		 WHERE i.order_id = $1
		 ORDER BY i.id`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Items must be an array even when empty, never null
	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.BatchNumber,
			&item.Quantity, &item.FreeIssueQuantity, &item.ProductName, &item.ExpiryDate)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	order.Items = items
	return &order, nil
}

// List returns orders newest first, optionally filtered by payment status
func (r *OrderRepository) List(ctx context.Context, paymentStatus string) ([]*models.Order, error) {
	query := `SELECT id, customer_id, agency_id, user_id, paid_date::text, payment_status,
	                 print_count, gross_total, net_total, discount_amount, created_at
	          FROM orders`
	args := []any{}
	if paymentStatus != "" {
		query += ` WHERE payment_status = $1`
		args = append(args, paymentStatus)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		err := rows.Scan(&o.ID, &o.CustomerID, &o.AgencyID, &o.UserID, &o.PaidDate,
			&o.PaymentStatus, &o.PrintCount, &o.GrossTotal, &o.NetTotal,
			&o.DiscountAmount, &o.CreatedAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// Update overwrites the mutable fields of an order
func (r *OrderRepository) Update(ctx context.Context, o *models.Order) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE orders SET payment_status=$1, paid_date=$2, print_count=$3,
                gross_total=$4, net_total=$5, discount_amount=$6
         WHERE id=$7`,
		o.PaymentStatus, o.PaidDate, o.PrintCount, o.GrossTotal, o.NetTotal, o.DiscountAmount, o.ID)
	return err
}

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id int, status string, paidDate *string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE orders SET payment_status=$1, paid_date=COALESCE($2::date, paid_date) WHERE id=$3`,
		status, paidDate, id)
	return err
}

// IncrementPrintCount bumps print_count by one and returns the new value
func (r *OrderRepository) IncrementPrintCount(ctx context.Context, id int) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`UPDATE orders SET print_count = print_count + 1 WHERE id=$1 RETURNING print_count`, id,
	).Scan(&count)
	return count, err
}

// Delete purges the order; item rows go with it via ON DELETE CASCADE
// (models.Purge policy)
func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}
