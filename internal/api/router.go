package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/briefpanel/brief-service/internal/api/handler"
	"github.com/briefpanel/brief-service/internal/api/middleware"
	"github.com/briefpanel/brief-service/internal/core/domain"
	"github.com/briefpanel/brief-service/internal/core/service"
	"github.com/briefpanel/brief-service/internal/infrastructure/config"
	"github.com/briefpanel/brief-service/internal/infrastructure/generation"
	"github.com/briefpanel/brief-service/internal/infrastructure/store/filestore"
	"github.com/briefpanel/brief-service/internal/infrastructure/store/memory"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("briefservice"))

	// --- Dependencies ---
	creds := memory.NewCredentialStore([]domain.Credential{{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
	}})
	authService := service.NewAuthService(creds, cfg.JWTSecret, cfg.TokenTTL)

	briefStore := filestore.NewBriefStore(cfg.BriefsDir)
	generator := generation.NewClient(generation.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	})
	briefService := service.NewBriefService(briefStore, generator, log)

	pageHandler := handler.NewPageHandler()
	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL)
	briefHandler := handler.NewBriefHandler(briefService)
	healthHandler := handler.NewHealthHandler()

	e.Use(middleware.Session(authService))

	// --- Public routes ---
	e.GET("/", pageHandler.Landing)
	e.GET("/documents", briefHandler.List)
	e.GET("/documents/:filename", briefHandler.Show)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.Static("/static", cfg.StaticDir)

	// --- Protected routes ---
	e.GET("/panel", briefHandler.Panel, middleware.RequireUser)
	e.POST("/create-brief", briefHandler.Create, middleware.RequireUser)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
