package server

import (
	"fmt"
	"net/http"
	"time"

	"product-catalog/internal/config"
	"product-catalog/internal/database"
	custommiddleware "product-catalog/internal/middleware"
	"product-catalog/internal/repository"
	"product-catalog/internal/service"
	"product-catalog/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     database.Service
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db database.Service) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.IsDevelopment()))

	server := &Server{
		config: cfg,
		logger: logger,
		db:     db,
	}

	if cfg.RateLimit.Enabled {
		server.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		router.Use(custommiddleware.RateLimitMiddleware(server.redis, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.Requests,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "catalog_rate_limit",
		}, logger))
	}

	router.NotFound(custommiddleware.NotFoundHandler)
	router.MethodNotAllowed(custommiddleware.MethodNotAllowedHandler)

	// Health check endpoint
	router.Get("/health", server.health)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db.DB())
	userRepo := repository.NewUserRepository(db.DB())
	reviewRepo := repository.NewReviewRepository(db.DB())

	// Initialize services
	catalog := service.NewCatalogService(productRepo, userRepo, reviewRepo)

	// Register routes
	transport.NewProductHandler(catalog, logger).RegisterRoutes(router)
	transport.NewUserHandler(catalog, logger).RegisterRoutes(router)
	transport.NewReviewHandler(catalog, logger).RegisterRoutes(router)

	server.Server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	stats := s.db.Health(r.Context())

	status := http.StatusOK
	if stats["status"] != "up" {
		s.logger.Warn("Database health check failed", zap.String("error", stats["error"]))
		status = http.StatusServiceUnavailable
	}

	custommiddleware.RespondWithJSON(w, status, stats)
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
			return err
		}
	}

	s.logger.Sync()
	return nil
}
