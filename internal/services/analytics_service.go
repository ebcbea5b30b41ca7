package services

import (
	"context"
	"encoding/json"
	"time"

	"pharma-backend/internal/cache"
	"pharma-backend/internal/models"
	"pharma-backend/internal/repositories"
	"pharma-backend/internal/timeutil"
)

// salesWindowDays is the dashboard sales chart window (today inclusive)
const salesWindowDays = 10

type AnalyticsService struct {
	Repo *repositories.AnalyticsRepository
}

func NewAnalyticsService(repo *repositories.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{Repo: repo}
}

// SalesLast10Days returns exactly one entry per calendar day for today and
// the nine preceding days, ascending, with zero totals for days that had no
// orders. Day boundaries follow the server's local calendar.
func (s *AnalyticsService) SalesLast10Days(ctx context.Context) ([]models.DailySales, error) {
	if data, ok := cache.GetBytes(ctx, cache.SalesLast10Key); ok {
		var cached []models.DailySales
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	today := timeutil.StartOfDay(timeutil.Now())
	since := today.AddDate(0, 0, -(salesWindowDays - 1))

	rows, err := s.Repo.SalesSince(ctx, since)
	if err != nil {
		return nil, err
	}

	filled := FillMissingDates(rows, today, salesWindowDays)

	if data, err := json.Marshal(filled); err == nil {
		cache.SetBytes(ctx, cache.SalesLast10Key, data, cache.DashboardCacheTTL)
	}
	return filled, nil
}

// FillMissingDates expands a sparse per-day series into a dense window of
// exactly `days` entries ending at `today`, ascending, inserting zero totals
// for absent days. Rows outside the window are ignored.
func FillMissingDates(rows []models.DailySales, today time.Time, days int) []models.DailySales {
	byDate := make(map[string]float64, len(rows))
	for _, row := range rows {
		byDate[row.Date] = row.Total
	}

	filled := make([]models.DailySales, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := timeutil.DateString(today.AddDate(0, 0, -i))
		filled = append(filled, models.DailySales{
			Date:  date,
			Total: byDate[date],
		})
	}
	return filled
}

// recentOrdersLimit caps the dashboard's latest-orders panel
const recentOrdersLimit = 5

// RecentOrders returns the latest orders for the dashboard panel. Not cached:
// the panel must show a just-created order immediately.
func (s *AnalyticsService) RecentOrders(ctx context.Context) ([]models.RecentOrder, error) {
	return s.Repo.RecentOrders(ctx, recentOrdersLimit)
}

// KPIs returns the dashboard headline figures, cached briefly in redis
func (s *AnalyticsService) KPIs(ctx context.Context) (*models.KPIs, error) {
	if data, ok := cache.GetBytes(ctx, cache.KPIsKey); ok {
		var cached models.KPIs
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	kpis, err := s.Repo.KPIs(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(kpis); err == nil {
		cache.SetBytes(ctx, cache.KPIsKey, data, cache.DashboardCacheTTL)
	}
	return kpis, nil
}
