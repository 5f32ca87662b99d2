package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/shopfront/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()

	// Unauthenticated entry point and the auth flows.
	s.E.GET("/", s.authHandler.SignInGet)
	s.E.POST("/login", s.authHandler.SignInPost, rateLimiter)
	s.E.GET("/register", s.authHandler.RegisterGet)
	s.E.POST("/register", s.authHandler.RegisterPost, rateLimiter)
	s.E.POST("/logout", s.authHandler.LogoutPost)

	// The dashboard requires a stored credential; without one the guard
	// silently returns to the entry point.
	dashboard := s.E.Group("/dashboard", middleware.RequireCredential())
	dashboard.GET("", s.dashboardHandler.DashboardGet)
	dashboard.GET("/logout", s.dashboardHandler.LogoutConfirmGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Tenant storefront; matches the /{shop} path on tenant origins. Static
	// routes above take precedence over the parameter route.
	s.E.GET("/:shop", s.shopHandler.ShopGet)
}
