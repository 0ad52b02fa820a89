// File: internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bff_create_account/internal/account"
	"bff_create_account/internal/catalog"
	"bff_create_account/internal/common"
	"bff_create_account/internal/config"
	"bff_create_account/internal/identity"
	"bff_create_account/internal/middleware"
	"bff_create_account/internal/platform/metrics"
	"bff_create_account/internal/userinfo"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger
}

// NewServer creates a new instance of our application server.
// The process-wide gin mode is set by the caller before this runs.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	accountHandler *account.Handler,
	catalogHandler *catalog.Handler,
	userInfoHandler *userinfo.Handler,
	resolver identity.UserIDResolver,
	httpMetrics *metrics.HTTPMetrics,
) (*Server, error) {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	if cfg.MetricsEnabled && httpMetrics != nil {
		router.Use(middleware.Metrics(httpMetrics))
	}
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	router.NoRoute(middleware.NoRoute)
	router.NoMethod(middleware.NoMethod)

	identityMW := middleware.IdentityMiddleware(resolver, logger.Named("IdentityMiddleware"))

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		common.RespondMessage(c, "BFF Create Account is healthy")
	})
	if cfg.MetricsEnabled && httpMetrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(httpMetrics.Registry, promhttp.HandlerOpts{})))
	}

	accountHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router)
	userInfoHandler.RegisterRoutes(router, identityMW)

	timeout := cfg.ServerTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		cfg:        cfg,
		logger:     logger,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	return s.httpServer.Shutdown(ctx)
}
