// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"careerhub_backend/internal/common"
	"careerhub_backend/internal/config"
	"careerhub_backend/internal/firebase"
	"careerhub_backend/internal/jobs"
	"careerhub_backend/internal/middleware"
	"careerhub_backend/internal/organization"
	"careerhub_backend/internal/profile"
	"careerhub_backend/internal/rolecache"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	profileHandler *profile.Handler
	orgHandler     *organization.Handler

	// Jobs
	orgSweepJob *jobs.OrgSweepJob
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	profileHandler *profile.Handler,
	orgHandler *organization.Handler,
	resolver *rolecache.Resolver,
	orgSweepJob *jobs.OrgSweepJob,
	firebaseService *firebase.FirebaseService,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := middleware.AuthMiddleware(firebaseService, logger.Named("AuthMiddleware"))

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "CareerHub API is healthy!"})
	})

	v1 := router.Group("/api/v1")
	profileHandler.RegisterRoutes(v1, authMW)
	orgHandler.RegisterRoutes(v1, authMW)

	// Role-dependent views. Each navigation evaluates the redirect table
	// once against the cached role state; the correct destination passes
	// through and renders.
	propagationLogger := logger.Named("RolePropagation")
	registerView := func(view rolecache.View) {
		router.GET(rolecache.PathForView(view),
			authMW,
			middleware.RolePropagation(resolver, view, propagationLogger),
			func(c *gin.Context) {
				common.RespondOK(c, "", gin.H{"view": string(view)})
			})
	}
	registerView(rolecache.ViewLanding)
	registerView(rolecache.ViewRoleSelection)
	registerView(rolecache.ViewJobSeeker)
	registerView(rolecache.ViewOrganizationOwner)
	registerView(rolecache.ViewIndependentContractor)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:     httpServer,
		router:         router,
		cfg:            cfg,
		logger:         logger,
		profileHandler: profileHandler,
		orgHandler:     orgHandler,
		orgSweepJob:    orgSweepJob,
	}, nil
}

// Start launches the background jobs and the HTTP server. It blocks until the
// server stops.
func (s *Server) Start() error {
	if s.orgSweepJob != nil {
		if err := s.orgSweepJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to start organization sweep job", zap.Error(err))
		}
	}

	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server and its background jobs.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.orgSweepJob != nil {
		s.orgSweepJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
