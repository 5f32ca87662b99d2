package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/shopfront/internal/auth"
)

// CredentialContextKey is where the guard places the session credential for
// downstream handlers.
const CredentialContextKey = "credential"

// RequireCredential protects routes that need an authenticated session.
// A request without a stored credential is silently redirected to the
// unauthenticated entry point; no error page is rendered. Whether the
// credential is still accepted by the backend is decided by the guarded
// handler's own API call, not here.
func RequireCredential() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cred, ok := auth.Credential(c)
			if !ok {
				return c.Redirect(http.StatusSeeOther, "/")
			}
			c.Set(CredentialContextKey, cred)
			return next(c)
		}
	}
}
