package handlers

import (
	"encoding/json"
	"net/http"

	"pharma-backend/internal/services"
)

type AnalyticsHandler struct {
	Service *services.AnalyticsService
}

func NewAnalyticsHandler(s *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: s}
}

// SalesLast10Days returns one entry per day, always exactly ten
func (h *AnalyticsHandler) SalesLast10Days(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Service.SalesLast10Days(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sales)
}

// RecentOrders returns the latest orders for the dashboard panel
func (h *AnalyticsHandler) RecentOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.RecentOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *AnalyticsHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.Service.KPIs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(kpis)
}
