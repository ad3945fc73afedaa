package http

import (
	"net/http"

	"blood-bank-backend/internal/delivery/http/handler"
	"blood-bank-backend/internal/delivery/http/middleware"
	"blood-bank-backend/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	donorHandler        *handler.DonorHandler
	inventoryHandler    *handler.InventoryHandler
	requestHandler      *handler.RequestHandler
	fileHandler         *handler.FileHandler
	notificationHandler *handler.NotificationHandler
	dashboardHandler    *handler.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	donorHandler *handler.DonorHandler,
	inventoryHandler *handler.InventoryHandler,
	requestHandler *handler.RequestHandler,
	fileHandler *handler.FileHandler,
	notificationHandler *handler.NotificationHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		donorHandler:        donorHandler,
		inventoryHandler:    inventoryHandler,
		requestHandler:      requestHandler,
		fileHandler:         fileHandler,
		notificationHandler: notificationHandler,
		dashboardHandler:    dashboardHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Inventory (public read)
	api.HandleFunc("/inventory", r.inventoryHandler.List).Methods(http.MethodGet)

	// Inventory (admin writes)
	inventoryAdmin := api.PathPrefix("/inventory").Subrouter()
	inventoryAdmin.Use(r.authMiddleware.Authenticate)
	inventoryAdmin.Use(middleware.RequireAdmin)
	inventoryAdmin.HandleFunc("/initialize", r.inventoryHandler.Initialize).Methods(http.MethodPost)
	inventoryAdmin.HandleFunc("/{bloodType}", r.inventoryHandler.Upsert).Methods(http.MethodPut)

	// Donors (public)
	api.HandleFunc("/donors/register", r.donorHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/donors", r.donorHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/donors/blood-type/{type}", r.donorHandler.ListByBloodType).Methods(http.MethodGet)

	// Requests (public submission)
	api.HandleFunc("/requests", r.requestHandler.Submit).Methods(http.MethodPost)

	// Requests (admin)
	requestsAdmin := api.PathPrefix("/requests").Subrouter()
	requestsAdmin.Use(r.authMiddleware.Authenticate)
	requestsAdmin.Use(middleware.RequireAdmin)
	requestsAdmin.HandleFunc("", r.requestHandler.List).Methods(http.MethodGet)
	requestsAdmin.HandleFunc("/{id}/status", r.requestHandler.UpdateStatus).Methods(http.MethodPut)

	// Files (any authenticated principal)
	files := api.PathPrefix("/files").Subrouter()
	files.Use(r.authMiddleware.Authenticate)
	files.HandleFunc("/{id}", r.fileHandler.Download).Methods(http.MethodGet)

	// Notifications (any authenticated principal)
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(r.authMiddleware.Authenticate)
	notifications.HandleFunc("", r.notificationHandler.List).Methods(http.MethodGet)
	notifications.HandleFunc("/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPut)

	// Dashboard (admin)
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(r.authMiddleware.Authenticate)
	dashboard.Use(middleware.RequireAdmin)
	dashboard.HandleFunc("/stats", r.dashboardHandler.Stats).Methods(http.MethodGet)

	// Unmatched routes return the JSON envelope rather than the mux default
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
