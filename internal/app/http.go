package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fahmidl/app-sso/internal/auth/handler"
	"github.com/fahmidl/app-sso/internal/auth/provider"
	"github.com/fahmidl/app-sso/internal/auth/resolver"
	"github.com/fahmidl/app-sso/internal/config"
	"github.com/fahmidl/app-sso/internal/middleware"
	"github.com/fahmidl/app-sso/internal/session"
	"github.com/fahmidl/app-sso/internal/user"
	"github.com/fahmidl/app-sso/internal/web"
)

func setupHTTP(ctx context.Context, cfg config.Config, log zerolog.Logger) (*gin.Engine, func() error, error) {
	inf, err := setupInfra(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	userStore := user.NewPostgresStore(inf.db)
	sessionStore := session.NewRedisStore(inf.redis.Client)
	identityResolver := resolver.New(userStore)

	// One configured flow per supported provider; selection later is by
	// exhaustive switch on Kind.
	flows := provider.Set{
		Microsoft: provider.New(
			ctx,
			provider.Microsoft,
			cfg.MicrosoftClientID,
			cfg.MicrosoftClientSecret,
			provider.CallbackURL(cfg.PublicBaseURL, provider.Microsoft),
			cfg.ProviderTimeout,
		),
		Google: provider.New(
			ctx,
			provider.Google,
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			provider.CallbackURL(cfg.PublicBaseURL, provider.Google),
			cfg.ProviderTimeout,
		),
	}

	authHandler := handler.New(
		flows,
		sessionStore,
		identityResolver,
		userStore,
		cfg.SessionTTL,
		log,
	)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, nil, fmt.Errorf("parse templates: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.SetHTMLTemplate(tmpl)

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router, func() error {
		return inf.db.Close()
	}, nil
}
