package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pharma-backend/internal/handlers"
	"pharma-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	customerHandler *handlers.CustomerHandler,
	agencyHandler *handlers.AgencyHandler,
	productHandler *handlers.ProductHandler,
	orderHandler *handlers.OrderHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Protected API routes - Orders
	ordersAPI := r.PathPrefix("/api/orders").Subrouter()
	ordersAPI.Use(authMiddleware.Authenticate)
	ordersAPI.HandleFunc("/create-with-items", orderHandler.CreateWithItems).Methods("POST")
	ordersAPI.HandleFunc("/quote", orderHandler.Quote).Methods("POST")
	ordersAPI.HandleFunc("", orderHandler.ListOrders).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.GetOrder).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.UpdateOrder).Methods("PUT")
	ordersAPI.HandleFunc("/{id}", orderHandler.DeleteOrder).Methods("DELETE")
	ordersAPI.HandleFunc("/{id}/payment-status", orderHandler.UpdatePaymentStatus).Methods("PATCH")
	ordersAPI.HandleFunc("/{id}/print", orderHandler.PrintOrder).Methods("GET")

	// Protected API routes - Analytics
	analyticsAPI := r.PathPrefix("/api/analytics").Subrouter()
	analyticsAPI.Use(authMiddleware.Authenticate)
	analyticsAPI.HandleFunc("/sales-last-10-days", analyticsHandler.SalesLast10Days).Methods("GET")
	analyticsAPI.HandleFunc("/kpis", analyticsHandler.KPIs).Methods("GET")
	analyticsAPI.HandleFunc("/recent-orders", analyticsHandler.RecentOrders).Methods("GET")

	// Protected API routes - Products (batch number is the key)
	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.Use(authMiddleware.Authenticate)
	productsAPI.HandleFunc("", productHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("", productHandler.CreateProduct).Methods("POST")
	productsAPI.HandleFunc("/search", productHandler.SearchProducts).Methods("GET")
	productsAPI.HandleFunc("/{batch}", productHandler.GetProduct).Methods("GET")
	productsAPI.HandleFunc("/{batch}", productHandler.UpdateProduct).Methods("PUT")
	productsAPI.HandleFunc("/{batch}", productHandler.DeleteProduct).Methods("DELETE")

	// Protected API routes - Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.Use(authMiddleware.Authenticate)
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")

	// Protected API routes - Agencies
	agenciesAPI := r.PathPrefix("/api/agencies").Subrouter()
	agenciesAPI.Use(authMiddleware.Authenticate)
	agenciesAPI.HandleFunc("", agencyHandler.ListAgencies).Methods("GET")
	agenciesAPI.HandleFunc("", agencyHandler.CreateAgency).Methods("POST")
	agenciesAPI.HandleFunc("/{id}", agencyHandler.GetAgency).Methods("GET")
	agenciesAPI.HandleFunc("/{id}", agencyHandler.UpdateAgency).Methods("PUT")
	agenciesAPI.HandleFunc("/{id}", agencyHandler.DeleteAgency).Methods("DELETE")

	// Protected API routes - Users
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("", userHandler.CreateUser).Methods("POST")
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.UpdateUser).Methods("PUT")
	usersAPI.HandleFunc("/{id}", userHandler.DeleteUser).Methods("DELETE")

	return r
}
