package main

import (
	"time"

	"github.com/postpilot/postpilot-backend/internal/analytics"
	analyticsdb "github.com/postpilot/postpilot-backend/internal/analytics/gen"
	"github.com/postpilot/postpilot-backend/internal/auth"
	userdb "github.com/postpilot/postpilot-backend/internal/auth/gen"
	"github.com/postpilot/postpilot-backend/internal/auth/jwt"
	"github.com/postpilot/postpilot-backend/internal/auth/provider"
	"github.com/postpilot/postpilot-backend/internal/authz"
	"github.com/postpilot/postpilot-backend/internal/config"
	"github.com/postpilot/postpilot-backend/internal/db"
	"github.com/postpilot/postpilot-backend/internal/integrations/meta"
	"github.com/postpilot/postpilot-backend/internal/platform"
	platformdb "github.com/postpilot/postpilot-backend/internal/platform/gen"
	"github.com/postpilot/postpilot-backend/internal/post"
	postdb "github.com/postpilot/postpilot-backend/internal/post/gen"
	"github.com/postpilot/postpilot-backend/internal/server"
	"github.com/postpilot/postpilot-backend/internal/socialaccount"
	accountdb "github.com/postpilot/postpilot-backend/internal/socialaccount/gen"
	"github.com/postpilot/postpilot-backend/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger := utils.New(cfg)

	dbConn := db.InitDB(logger, cfg)

	enforcer, err := authz.NewEnforcer(db.ConnectionURL(cfg), logger)
	if err != nil {
		logger.Fatal("failed to initialize authorization enforcer: ", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		logger.Fatal("failed to seed authorization policies: ", err)
	}

	// JWT manager setup
	jwter := jwt.NewManager(cfg.JWTSecret,
		time.Duration(cfg.AccessTokenDuration)*time.Minute,
		time.Duration(cfg.RefreshTokenDuration)*time.Minute)

	// Sign-in via GitHub
	githubProvider := provider.NewGitHubProvider(
		cfg.GitHubClientID,
		cfg.GitHubClientSecret,
		cfg.GitHubRedirectURL,
	)
	authService := auth.NewAuthService(githubProvider, userdb.New(dbConn), jwter, logger)
	authHandler := auth.NewAuthHandler(authService, logger)

	// Instagram account linking + publishing
	metaClient := meta.NewClient(cfg.MetaClientID, cfg.MetaAppSecret, cfg.MetaRedirectURI)
	accountRepo := accountdb.New(dbConn)
	accountService := socialaccount.NewAccountService(metaClient, accountRepo, logger)
	accountHandler := socialaccount.NewAccountHandler(accountService, jwter, cfg.AppBaseURL, logger)

	platformService := platform.NewPlatformService(platformdb.New(dbConn), accountRepo, logger)
	platformHandler := platform.NewPlatformHandler(platformService, logger)

	postService := post.NewPostService(postdb.New(dbConn), accountRepo, metaClient, logger)
	postHandler := post.NewPostHandler(postService, logger)

	analyticsService := analytics.NewAnalyticsService(analyticsdb.New(dbConn), postService, logger)
	analyticsHandler := analytics.NewAnalyticsHandler(analyticsService, logger)

	s := server.New(cfg, logger, dbConn)
	s.SetupRoutes(authHandler, accountHandler, platformHandler, postHandler, analyticsHandler, jwter, enforcer)

	if err := s.Start(); err != nil {
		logger.Fatal("server failed to start: ", err)
	}
}
