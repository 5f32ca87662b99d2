package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/shopfront/internal/domain"
	"github.com/nfrund/shopfront/internal/handlers"
	"github.com/nfrund/shopfront/internal/rendering"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// LoginCall records the exact payload of one Login invocation.
type LoginCall struct {
	Username string
	Password string
}

// MockShopAPI is a recording mock of domain.ShopAPI. Each *Fn field can be
// set per-test; unset functions succeed with zero-ish defaults.
type MockShopAPI struct {
	ShopFn      func(ctx context.Context, slug string) (*domain.Tenant, error)
	DashboardFn func(ctx context.Context, cred domain.Credential) (*domain.DashboardData, error)
	RegisterFn  func(ctx context.Context, reg *domain.Registration) error
	LoginFn     func(ctx context.Context, username, password string) (domain.Credential, error)
	LogoutFn    func(ctx context.Context, cred domain.Credential) error

	ShopCalls      []string
	DashboardCalls int
	RegisterCalls  []domain.Registration
	LoginCalls     []LoginCall
	LogoutCalls    int
}

func (m *MockShopAPI) Shop(ctx context.Context, slug string) (*domain.Tenant, error) {
	m.ShopCalls = append(m.ShopCalls, slug)
	if m.ShopFn != nil {
		return m.ShopFn(ctx, slug)
	}
	return &domain.Tenant{Name: slug}, nil
}

func (m *MockShopAPI) Dashboard(ctx context.Context, cred domain.Credential) (*domain.DashboardData, error) {
	m.DashboardCalls++
	if m.DashboardFn != nil {
		return m.DashboardFn(ctx, cred)
	}
	return &domain.DashboardData{Shops: []string{}}, nil
}

func (m *MockShopAPI) Register(ctx context.Context, reg *domain.Registration) error {
	m.RegisterCalls = append(m.RegisterCalls, *reg)
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, reg)
	}
	return nil
}

func (m *MockShopAPI) Login(ctx context.Context, username, password string) (domain.Credential, error) {
	m.LoginCalls = append(m.LoginCalls, LoginCall{Username: username, Password: password})
	if m.LoginFn != nil {
		return m.LoginFn(ctx, username, password)
	}
	return "sid=test-token", nil
}

func (m *MockShopAPI) Logout(ctx context.Context, cred domain.Credential) error {
	m.LogoutCalls++
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx, cred)
	}
	return nil
}

// newTestEcho builds an Echo instance with the same renderer, validator and
// session middleware the real server uses.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	return e
}

// postForm issues a form POST against the echo instance.
func postForm(e *echo.Echo, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// signIn runs a login round-trip and returns the session cookies that carry
// the stored credential for follow-up requests.
func signIn(t *testing.T, e *echo.Echo) []*http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("username", "ada")
	form.Set("password", "hunter2")
	rec := postForm(e, "/login", form)
	require.Equal(t, http.StatusSeeOther, rec.Code, "sign-in should succeed before the actual test")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "sign-in should set a session cookie")
	return cookies
}
