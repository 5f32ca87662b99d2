package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/shopfront/internal/domain"
	"github.com/nfrund/shopfront/internal/middleware"
	"github.com/nfrund/shopfront/web/src/templates/layouts"
	"github.com/nfrund/shopfront/web/src/templates/pages"
)

// ShopHandler serves the public tenant storefront page.
type ShopHandler struct {
	api domain.ShopAPI
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(api domain.ShopAPI) *ShopHandler {
	return &ShopHandler{api: api}
}

// ShopGet resolves the tenant from the request hostname and renders its
// profile (GET /:shop on a tenant origin). The slug is the leading hostname
// label; the path segment is only there to mirror the tenant origin shape.
//
// Any lookup failure lands in the terminal not-found state: no retry, no
// partial render.
func (h *ShopHandler) ShopGet(c echo.Context) error {
	slug := domain.SlugFromHost(c.Request().Host)

	tenant, err := h.api.Shop(c.Request().Context(), slug)
	if err != nil {
		if !errors.Is(err, domain.ErrShopNotFound) {
			middleware.FromContext(c.Request().Context()).Warn("tenant lookup failed", "slug", slug, "error", err)
		}
		return c.Render(http.StatusNotFound, "", layouts.Base("Shop", pages.ShopNotFound()))
	}

	return c.Render(http.StatusOK, "", layouts.Base(tenant.Name, pages.Shop(tenant)))
}
