package server

import (
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/shopfront/internal/config"
	"github.com/nfrund/shopfront/internal/domain"
	"github.com/nfrund/shopfront/internal/handlers"
	"github.com/nfrund/shopfront/internal/middleware"
	"github.com/nfrund/shopfront/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	api              domain.ShopAPI
	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
	shopHandler      *handlers.ShopHandler
}

// New creates a new Server wired against the given configuration and shop
// API client. Tests inject a mock ShopAPI here.
func New(cfg config.Provider, api domain.ShopAPI) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)

	// The cookie session only carries the opaque API credential; the
	// backend remains the authority on whether it is still valid.
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.Static("/static", "web/static")
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()

	return &Server{
		E:                e,
		Cfg:              cfg,
		api:              api,
		authHandler:      handlers.NewAuthHandler(api),
		dashboardHandler: handlers.NewDashboardHandler(api, cfg.GetBaseDomain()),
		shopHandler:      handlers.NewShopHandler(api),
	}
}

// API is a getter for the server's shop API client, useful for testing.
func (s *Server) API() domain.ShopAPI {
	return s.api
}
