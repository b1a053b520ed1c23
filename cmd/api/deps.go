package main

import (
	"log"

	"fintrack/internal/infrastructure/postgres"
	httphandlers "fintrack/internal/interfaces/http"
	"fintrack/internal/shared/auth"
	"fintrack/internal/shared/config"
	"fintrack/internal/shared/ratelimit"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	AuthHandler        *httphandlers.AuthHandler
	UserHandler        *httphandlers.UserHandler
	TransactionHandler *httphandlers.TransactionHandler
	NoteHandler        *httphandlers.NoteHandler

	// Auth
	JWT *auth.JWT

	// Request admission
	Limiter *ratelimit.Limiter
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	// Connect to database
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	noteRepo := postgres.NewNoteRepository(db)

	// Initialize auth components
	jwt := auth.NewJWT(cfg.JWT.Secret)

	// Initialize rate limiter
	limiterCfg := ratelimit.DefaultConfig()
	limiterCfg.Limit = cfg.RateLimit.Limit
	limiterCfg.Window = cfg.RateLimit.Window
	limiter := ratelimit.NewLimiter(limiterCfg)

	// Initialize handlers
	authHandler := httphandlers.NewAuthHandler(userRepo, jwt)
	userHandler := httphandlers.NewUserHandler(userRepo)
	transactionHandler := httphandlers.NewTransactionHandler(transactionRepo)
	noteHandler := httphandlers.NewNoteHandler(noteRepo)

	return &Dependencies{
		DB:                 db,
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		TransactionHandler: transactionHandler,
		NoteHandler:        noteHandler,
		JWT:                jwt,
		Limiter:            limiter,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.Limiter != nil {
		d.Limiter.Stop()
	}
	if d.DB != nil {
		d.DB.Close()
	}
}
