package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/shopfront/internal/auth"
	"github.com/nfrund/shopfront/internal/domain"
	"github.com/nfrund/shopfront/internal/middleware"
	"github.com/nfrund/shopfront/web/src/templates/layouts"
	"github.com/nfrund/shopfront/web/src/templates/pages"
	"github.com/nfrund/shopfront/web/src/templates/partials"
)

// DashboardHandler serves the owner dashboard and its logout sub-flow.
type DashboardHandler struct {
	api        domain.ShopAPI
	baseDomain string
}

// NewDashboardHandler creates a new DashboardHandler. baseDomain is the
// domain under which tenant origins are built for shop activation links.
func NewDashboardHandler(api domain.ShopAPI, baseDomain string) *DashboardHandler {
	return &DashboardHandler{api: api, baseDomain: baseDomain}
}

// DashboardGet performs the one-shot session bootstrap (GET /dashboard).
//
// Every failure class collapses into the same outcome: the session is
// dropped and the client silently returns to the entry point. The dashboard
// never renders with empty or stale data.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	cred := c.Get(middleware.CredentialContextKey).(domain.Credential)

	data, err := h.api.Dashboard(c.Request().Context(), cred)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("dashboard bootstrap failed", "error", err)
		_ = auth.Clear(c)
		return c.Redirect(http.StatusSeeOther, "/")
	}

	view := pages.DashboardData{
		Username: data.Username,
		Shops:    make([]pages.ShopLink, 0, len(data.Shops)),
	}
	for _, shop := range data.Shops {
		view.Shops = append(view.Shops, pages.ShopLink{Name: shop, URL: h.shopURL(shop)})
	}

	return c.Render(http.StatusOK, "", layouts.Base("Dashboard", pages.Dashboard(view)))
}

// LogoutConfirmGet returns the logout confirmation panel as an htmx fragment
// (GET /dashboard/logout). Entering the confirming state makes no API call;
// neither does dismissing the panel, which is handled client-side.
func (h *DashboardHandler) LogoutConfirmGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", partials.LogoutConfirm())
}

// shopURL builds the tenant-scoped origin a shop opens in a new browsing
// context, e.g. "http://acme.localhost:8080/acme".
func (h *DashboardHandler) shopURL(shop string) string {
	return fmt.Sprintf("http://%s.%s/%s", shop, h.baseDomain, shop)
}
