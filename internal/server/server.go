package server

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/postpilot/postpilot-backend/internal/analytics"
	"github.com/postpilot/postpilot-backend/internal/auth"
	"github.com/postpilot/postpilot-backend/internal/auth/jwt"
	"github.com/postpilot/postpilot-backend/internal/authz"
	"github.com/postpilot/postpilot-backend/internal/config"
	"github.com/postpilot/postpilot-backend/internal/db"
	"github.com/postpilot/postpilot-backend/internal/middleware"
	"github.com/postpilot/postpilot-backend/internal/platform"
	"github.com/postpilot/postpilot-backend/internal/post"
	"github.com/postpilot/postpilot-backend/internal/socialaccount"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server for the PostPilot backend API.
type Server struct {
	cfg    *config.Config
	log    *logrus.Logger
	engine *gin.Engine
	db     *sql.DB // Database connection for health checks
}

// SetupRoutes registers all API routes and middleware for the server.
// This function centralizes route registration for maintainability.
func (s *Server) SetupRoutes(authHandler *auth.AuthHandler,
	accountHandler *socialaccount.AccountHandler,
	platformHandler *platform.PlatformHandler,
	postHandler *post.PostHandler,
	analyticsHandler *analytics.AnalyticsHandler,
	jwter *jwt.Manager,
	enforcer *authz.Enforcer) {
	// Create API v1 router group
	v1 := s.engine.Group("/api/v1")

	jwtMiddleware := middleware.JWTAuthMiddleware(jwter)
	adminMiddleware := authz.RequireRole(enforcer, authz.RoleAdmin, s.log)

	// Register auth routes FIRST (no middleware - these are public)
	auth.RegisterAuthRoutes(authHandler, v1)

	// The Meta connect/callback pair manages its own session handling: the
	// callback must redirect unauthenticated browsers instead of answering 401.
	socialaccount.RegisterConnectRoutes(accountHandler, v1, jwtMiddleware)

	// Create a new group for protected routes that need JWT
	protected := v1.Group("")
	protected.Use(jwtMiddleware)
	auth.RegisterProfileRoutes(authHandler, protected)
	socialaccount.RegisterAccountRoutes(accountHandler, protected)
	platform.RegisterPlatformRoutes(platformHandler, protected, adminMiddleware)
	post.RegisterPostRoutes(postHandler, protected)
	analytics.RegisterAnalyticsRoutes(analyticsHandler, protected)
}

// routes registers health check and other non-API routes.
func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "PostPilot backend is healthy",
		})
	})

	// Detailed health check with database connection pool stats
	s.engine.GET("/healthz/detailed", func(c *gin.Context) {
		if err := s.db.Ping(); err != nil {
			c.JSON(503, gin.H{
				"status":  "error",
				"message": "Database connection failed",
				"error":   err.Error(),
			})
			return
		}

		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "PostPilot backend is healthy",
			"database": gin.H{
				"status": "connected",
				"pool":   db.GetConnectionStats(s.db),
			},
			"timestamp": gin.H{
				"server_time": time.Now().UTC().Format(time.RFC3339),
			},
		})
	})
}

// New creates a new Server instance with the given config and logger.
func New(cfg *config.Config, log *logrus.Logger, db *sql.DB) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		cfg:    cfg,
		log:    log,
		engine: engine,
		db:     db,
	}
}

// Start runs the HTTP server on the configured port.
func (s *Server) Start() error {
	s.routes()
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	s.log.Infof("starting server on %s", addr)
	return s.engine.Run(addr)
}
