package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/shopfront/internal/auth"
	"github.com/nfrund/shopfront/internal/domain"
	"github.com/nfrund/shopfront/internal/middleware"
	"github.com/nfrund/shopfront/internal/shopapi"
	"github.com/nfrund/shopfront/web/src/templates/layouts"
	"github.com/nfrund/shopfront/web/src/templates/pages"
)

// signupFallback is shown when a registration or login failure carries no
// backend-provided message.
const signupFallback = "Signup failed. Please try again."

// AuthHandler orchestrates the sign-in, registration and logout flows
// against the remote shop API.
type AuthHandler struct {
	api domain.ShopAPI
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(api domain.ShopAPI) *AuthHandler {
	return &AuthHandler{api: api}
}

// SignInGet renders the unauthenticated entry page (GET /).
func (h *AuthHandler) SignInGet(c echo.Context) error {
	return renderSignIn(c, http.StatusOK, pages.SignInData{})
}

// SignInPost handles the sign-in form submission (POST /login).
func (h *AuthHandler) SignInPost(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return renderSignIn(c, http.StatusBadRequest, pages.SignInData{Error: "Invalid form submission."})
	}
	data := pages.SignInData{Username: req.Username}
	if err := c.Validate(&req); err != nil {
		data.Error = "Username and password are required."
		return renderSignIn(c, http.StatusOK, data)
	}

	cred, err := h.api.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("failed login attempt", "username", req.Username, "error", err)
		data.Error = failureMessage(err, "Invalid username or password.")
		return renderSignIn(c, http.StatusOK, data)
	}

	if err := auth.StoreCredential(c, cred, false); err != nil {
		middleware.FromContext(c.Request().Context()).Error("failed to store credential", "error", err)
		data.Error = "Could not start your session. Please try again."
		return renderSignIn(c, http.StatusOK, data)
	}

	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// RegisterGet renders the registration page with its three empty shop slots
// (GET /register).
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	return renderRegister(c, pages.RegisterData{})
}

// RegisterPost handles the registration form submission (POST /register).
//
// The flow is sequential and deliberately non-atomic: an account-creation
// call, then a login call with just the username and password. A failure
// between the two leaves the account created and the user unauthenticated
// with the failure shown; that is accepted, observable behavior.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return renderRegister(c, pages.RegisterData{Error: "Invalid form submission."})
	}

	// A fresh render always starts with the previous error cleared; the
	// submitted values are preserved on every failure path.
	data := pages.RegisterData{
		Username: req.Username,
		Password: req.Password,
		Shops:    req.shopSlots(),
		Remember: req.Remember,
	}

	if err := c.Validate(&req); err != nil {
		data.Error = "Username and password are required."
		return renderRegister(c, data)
	}

	reg := &domain.Registration{
		Username: req.Username,
		Password: req.Password,
		Shops:    req.shopSlots(),
		Remember: req.Remember,
	}
	if err := h.api.Register(c.Request().Context(), reg); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("registration failed", "username", req.Username, "error", err)
		data.Error = failureMessage(err, signupFallback)
		return renderRegister(c, data)
	}

	// The login call carries exactly the username and password; shop slots
	// and the remember flag are not re-sent.
	cred, err := h.api.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("post-registration login failed", "username", req.Username, "error", err)
		data.Error = failureMessage(err, signupFallback)
		return renderRegister(c, data)
	}

	if err := auth.StoreCredential(c, cred, req.Remember); err != nil {
		middleware.FromContext(c.Request().Context()).Error("failed to store credential", "error", err)
		data.Error = signupFallback
		return renderRegister(c, data)
	}

	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// LogoutPost invalidates the session server-side and returns to the entry
// point (POST /logout). Logout is best-effort by design: a failed backend
// call is logged for diagnostics and the client proceeds as logged out.
func (h *AuthHandler) LogoutPost(c echo.Context) error {
	if cred, ok := auth.Credential(c); ok {
		if err := h.api.Logout(c.Request().Context(), cred); err != nil {
			middleware.FromContext(c.Request().Context()).Warn("logout request failed", "error", err)
		}
	}
	if err := auth.Clear(c); err != nil {
		middleware.FromContext(c.Request().Context()).Error("failed to clear session", "error", err)
	}

	// htmx-submitted confirmations navigate via HX-Redirect; plain form
	// posts get a regular redirect.
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", "/")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// failureMessage surfaces the backend's nested message verbatim when it is
// structurally present and falls back to the given generic message.
func failureMessage(err error, fallback string) string {
	if msg := shopapi.ErrorMessage(err); msg != "" {
		return msg
	}
	return fallback
}

func renderSignIn(c echo.Context, status int, data pages.SignInData) error {
	return c.Render(status, "", layouts.Base("Sign In", pages.SignIn(data)))
}

func renderRegister(c echo.Context, data pages.RegisterData) error {
	return c.Render(http.StatusOK, "", layouts.Base("Register", pages.Register(data)))
}
