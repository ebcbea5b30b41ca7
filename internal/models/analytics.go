package models

// DailySales is one calendar day's order total
type DailySales struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Total float64 `json:"total"`
}

// RecentOrder is one row of the dashboard's latest-orders panel
type RecentOrder struct {
	ID               int     `json:"id"`
	FormattedOrderID string  `json:"formatted_order_id"`
	CustomerName     string  `json:"customer_name"`
	NetTotal         float64 `json:"net_total"`
	PaymentStatus    string  `json:"payment_status"`
	CreatedAt        string  `json:"created_at"`
}

// KPIs are the dashboard headline figures. TotalCredits sums the stored
// customer balance column; PendingPayments sums net totals of unpaid orders.
// The two are computed independently and are not reconciled.
type KPIs struct {
	TodaySales      float64 `json:"todaySales"`
	MonthSales      float64 `json:"monthSales"`
	TotalCredits    float64 `json:"totalCredits"`
	PendingPayments float64 `json:"pendingPayments"`
	OrdersToday     int     `json:"ordersToday"`
	ActiveProducts  int     `json:"activeProducts"`
}
