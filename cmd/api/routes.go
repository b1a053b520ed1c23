package main

import (
	"log"
	"net/http"

	httphandlers "fintrack/internal/interfaces/http"
	"fintrack/internal/shared/config"
	"fintrack/internal/shared/middleware"
	"fintrack/internal/shared/ratelimit"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Public auth routes
	mux.HandleFunc("/api/auth/register", deps.AuthHandler.HandleRegister)
	mux.HandleFunc("/api/auth/login", deps.AuthHandler.HandleLogin)
	mux.HandleFunc("/api/auth/logout", deps.AuthHandler.HandleLogout)

	// Protected routes
	authMiddleware := middleware.Auth(deps.JWT)

	mux.Handle("/api/users/me", authMiddleware(http.HandlerFunc(deps.UserHandler.HandleMe)))
	mux.Handle("/api/transactions", authMiddleware(http.HandlerFunc(deps.TransactionHandler.HandleTransactions)))
	mux.Handle("/api/transactions/statistics", authMiddleware(http.HandlerFunc(deps.TransactionHandler.HandleStatistics)))
	mux.Handle("/api/transactions/{id}", authMiddleware(http.HandlerFunc(deps.TransactionHandler.HandleTransactionByID)))
	mux.Handle("/api/notes", authMiddleware(http.HandlerFunc(deps.NoteHandler.HandleNotes)))
	mux.Handle("/api/notes/{id}", authMiddleware(http.HandlerFunc(deps.NoteHandler.HandleNoteByID)))
	mux.Handle("/api/categories", authMiddleware(http.HandlerFunc(httphandlers.HandleCategories)))

	// Rate limiting sits inside the logging/CORS wrappers but ahead of
	// auth and routing: a denied request never reaches a handler.
	keyFunc := func(*http.Request) string { return ratelimit.GlobalKey }
	if cfg.RateLimit.Scope == "ip" {
		keyFunc = ratelimit.ClientIP
	}

	handler := middleware.Logging(middleware.CORS(cfg.Server.AllowedHosts)(deps.Limiter.Middleware(keyFunc)(mux)))

	// Apply telemetry middleware when enabled
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(middleware.Tracing(handler))
	}

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(middleware.SecureCookies(handler))
		log.Println("TLS security middleware enabled (HSTS + SecureCookies)")
	}

	return handler
}
