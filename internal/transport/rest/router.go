package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"kisanmitra/internal/cache"
	"kisanmitra/internal/service"
	"kisanmitra/internal/transport/rest/handler"
	"kisanmitra/internal/transport/rest/middleware"
	"kisanmitra/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	CheckInService *service.CheckInService
	AlertService   *service.AlertService
	FarmerService  *service.FarmerService
	RateLimiter    cache.RateLimiter
	WSHub          *ws.Hub
	Logger         *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	checkInHandler := handler.NewCheckInHandler(c.CheckInService)
	alertHandler := handler.NewAlertHandler(c.AlertService)
	farmerHandler := handler.NewFarmerHandler(c.FarmerService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)
	rateMW := middleware.NewRateLimitMiddleware(c.RateLimiter, c.Logger)

	r.Use(corsMiddleware)
	r.Use(middleware.RequestID)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes (IP rate limited)
	public := v1.NewRoute().Subrouter()
	public.Use(rateMW.Limit)
	public.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	public.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	public.HandleFunc("/auth/otp/request", authHandler.RequestOTP).Methods("POST", "OPTIONS")
	public.HandleFunc("/auth/otp/verify", authHandler.VerifyOTP).Methods("POST", "OPTIONS")
	public.HandleFunc("/auth/admin/login", authHandler.AdminLogin).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/alerts", wsHandler.AlertsWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Farmer routes (require farmer auth)
	farmerRoutes := v1.NewRoute().Subrouter()
	farmerRoutes.Use(authMW.RequireFarmer)

	farmerRoutes.HandleFunc("/checkins", checkInHandler.Submit).Methods("POST", "OPTIONS")
	farmerRoutes.HandleFunc("/checkins", checkInHandler.History).Methods("GET", "OPTIONS")
	farmerRoutes.HandleFunc("/checkins/{checkinId}", checkInHandler.Get).Methods("GET", "OPTIONS")
	farmerRoutes.HandleFunc("/profile", farmerHandler.Profile).Methods("GET", "OPTIONS")

	// Admin/counselor routes (require admin auth)
	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/alerts", alertHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/alerts/{alertId}/acknowledge", alertHandler.Acknowledge).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/alerts/{alertId}/resolve", alertHandler.Resolve).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/alerts/{alertId}/escalate", alertHandler.Escalate).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/alerts/{alertId}/assign", alertHandler.Assign).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/farmers", farmerHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/farmers/{farmerId}/counselor", farmerHandler.AssignCounselor).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/farmers/{farmerId}/remind", farmerHandler.Remind).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
