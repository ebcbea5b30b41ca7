package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"pharma-backend/internal/models"
	"pharma-backend/internal/timeutil"
)

type AnalyticsRepository struct {
	DB *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// SalesSince returns per-day net totals for orders created on or after the
// given day. Days with no orders are absent; the service layer fills gaps.
func (r *AnalyticsRepository) SalesSince(ctx context.Context, since time.Time) ([]models.DailySales, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT created_at::date::text AS day, COALESCE(SUM(net_total), 0) AS total
		 FROM orders
		 WHERE created_at >= $1
		 GROUP BY day
		 ORDER BY day`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.DailySales
	for rows.Next() {
		var s models.DailySales
		if err := rows.Scan(&s.Date, &s.Total); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// RecentOrders returns the latest orders with joined customer names for the
// dashboard panel. Walk-in orders show an empty customer name.
func (r *AnalyticsRepository) RecentOrders(ctx context.Context, limit int) ([]models.RecentOrder, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT o.id, COALESCE(c.name, '') AS customer_name, o.net_total,
		        o.payment_status, o.created_at::text
		 FROM orders o
		 LEFT JOIN customers c ON o.customer_id = c.id
		 ORDER BY o.created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.RecentOrder{}
	for rows.Next() {
		var o models.RecentOrder
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.NetTotal, &o.PaymentStatus, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.FormattedOrderID = models.FormatOrderID(o.ID)
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// KPIs computes the dashboard headline figures in one round trip each.
// Every aggregate COALESCEs to zero so an empty database reports zeros.
func (r *AnalyticsRepository) KPIs(ctx context.Context) (*models.KPIs, error) {
	var k models.KPIs
	today := timeutil.StartOfDay(timeutil.Now())
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(net_total), 0), COUNT(*) FROM orders WHERE created_at >= $1`,
		today,
	).Scan(&k.TodaySales, &k.OrdersToday)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(net_total), 0) FROM orders WHERE created_at >= $1`,
		monthStart,
	).Scan(&k.MonthSales)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(credits), 0) FROM customers`,
	).Scan(&k.TotalCredits)
	if err != nil {
		return nil, err
	}

	// Pending payments are derived from unpaid orders, not the stored
	// customer credits balance.
	err = r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(net_total), 0) FROM orders WHERE payment_status = $1`,
		models.PaymentPending,
	).Scan(&k.PendingPayments)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE is_active = TRUE`,
	).Scan(&k.ActiveProducts)
	if err != nil {
		return nil, err
	}

	return &k, nil
}
