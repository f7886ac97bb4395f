package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"wigu/internal/service"
	"wigu/internal/transport/rest/handler"
	"wigu/internal/transport/rest/middleware"
	"wigu/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	SessionService   *service.SessionService
	ResponseService  *service.ResponseService
	AdvisorService   *service.AdvisorService
	InsightService   *service.InsightService
	SynthesisService *service.SynthesisService
	ProgressService  *service.ProgressService
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	sessionHandler := handler.NewSessionHandler(c.SessionService, c.ProgressService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)
	advisorHandler := handler.NewAdvisorHandler(c.AdvisorService)
	insightHandler := handler.NewInsightHandler(c.InsightService)
	synthesisHandler := handler.NewSynthesisHandler(c.SynthesisService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/sessions/{sessionId}/owner", wsHandler.OwnerWS).Methods("GET")
	v1.HandleFunc("/ws/sessions/{sessionId}/advisor", wsHandler.AdvisorWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Owner routes (require owner auth)
	ownerRoutes := v1.NewRoute().Subrouter()
	ownerRoutes.Use(authMW.RequireOwner)

	ownerRoutes.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions", sessionHandler.List).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}", sessionHandler.Get).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/complete", sessionHandler.Complete).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/archive", sessionHandler.Archive).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/progress", sessionHandler.GetProgress).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/phase", sessionHandler.SetPhase).Methods("PUT", "OPTIONS")

	ownerRoutes.HandleFunc("/sessions/{sessionId}/responses", responseHandler.Submit).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/responses", responseHandler.List).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/themes", responseHandler.Themes).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/responses/{responseId}", responseHandler.Get).Methods("GET", "OPTIONS")

	ownerRoutes.HandleFunc("/sessions/{sessionId}/advisors", advisorHandler.Invite).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/advisors", advisorHandler.ListInvitations).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/advisor-responses", advisorHandler.ListResponses).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/advisor-responses/{responseId}", advisorHandler.GetResponse).Methods("GET", "OPTIONS")

	ownerRoutes.HandleFunc("/sessions/{sessionId}/insights/generate", insightHandler.Generate).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/insights", insightHandler.List).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/insights/{insightId}/validate", insightHandler.Validate).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/insights/{insightId}/rate", insightHandler.Rate).Methods("POST", "OPTIONS")

	ownerRoutes.HandleFunc("/sessions/{sessionId}/synthesis", synthesisHandler.Generate).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/synthesis", synthesisHandler.Latest).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/synthesis/{synthesisId}", synthesisHandler.Get).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/five-insights", synthesisHandler.GenerateFiveInsights).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/sessions/{sessionId}/five-insights", synthesisHandler.GetFiveInsights).Methods("GET", "OPTIONS")

	// Advisor routes (require advisor token)
	advisorRoutes := v1.NewRoute().Subrouter()
	advisorRoutes.Use(authMW.RequireAdvisor)

	advisorRoutes.HandleFunc("/advisor/responses", advisorHandler.Submit).Methods("POST", "OPTIONS")
	advisorRoutes.HandleFunc("/advisor/responses", advisorHandler.ListOwnResponses).Methods("GET", "OPTIONS")

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
