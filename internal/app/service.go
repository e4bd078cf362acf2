package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/antonrybalko/webapp-go/internal/api"
	"github.com/antonrybalko/webapp-go/internal/config"
	"github.com/antonrybalko/webapp-go/internal/domain"
	"github.com/antonrybalko/webapp-go/internal/views"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version represents the application version
const Version = "0.1.0"

// Service represents the web application
type Service struct {
	config  *config.Config
	logger  *zap.Logger
	sugar   *zap.SugaredLogger
	router  chi.Router
	server  *http.Server
	content *domain.SiteContent
}

// NewService creates a new application service from environment configuration
func NewService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return NewServiceWithLogger(cfg, logger)
}

// NewServiceWithLogger wires the service from an already loaded configuration
func NewServiceWithLogger(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	sugar := logger.Sugar()

	content, err := config.LoadSiteContentOrDefault(cfg.SiteConfigPath, sugar)
	if err != nil {
		return nil, fmt.Errorf("failed to load site content: %w", err)
	}

	renderer, err := views.NewRenderer(sugar)
	if err != nil {
		return nil, fmt.Errorf("failed to load views: %w", err)
	}

	router := chi.NewRouter()
	handler := api.NewHandler(renderer, sugar)
	api.RegisterRoutes(router, handler, content, sugar, Version)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Service{
		config:  cfg,
		logger:  logger,
		sugar:   sugar,
		router:  router,
		server:  server,
		content: content,
	}, nil
}

// Handler returns the service's HTTP handler
func (s *Service) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server in the background
func (s *Service) Start() error {
	s.sugar.Infow("Starting web application",
		"version", Version,
		"environment", s.config.Environment,
		"port", s.config.Port,
		"app", s.content.AppName,
	)

	go func() {
		s.sugar.Infof("Server listening on port %d", s.config.Port)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.sugar.Fatalf("Server failed: %v", err)
		}
	}()

	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Service) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.sugar.Info("Server exited gracefully")
	return nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server
func (s *Service) WaitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	s.sugar.Infof("Shutting down server: %v", sig)

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		s.sugar.Errorw("Shutdown failed", "error", err)
	}
}

// Cleanup performs cleanup tasks
func (s *Service) Cleanup() {
	// Sync errors on stdout/stderr are expected on some platforms
	if err := s.logger.Sync(); err != nil {
		fmt.Printf("Failed to sync logger: %v\n", err)
	}
}
