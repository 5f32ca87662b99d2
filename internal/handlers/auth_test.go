package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/shopfront/internal/domain"
	"github.com/nfrund/shopfront/internal/handlers"
	"github.com/nfrund/shopfront/internal/shopapi"
)

func setupAuthTest(mock *MockShopAPI) *echo.Echo {
	e := newTestEcho()
	authHandler := handlers.NewAuthHandler(mock)
	e.GET("/", authHandler.SignInGet)
	e.POST("/login", authHandler.SignInPost)
	e.GET("/register", authHandler.RegisterGet)
	e.POST("/register", authHandler.RegisterPost)
	e.POST("/logout", authHandler.LogoutPost)
	return e
}

func registerForm() url.Values {
	form := url.Values{}
	form.Set("username", "ada")
	form.Set("password", "hunter2")
	form["shops"] = []string{"acme", "", "books"}
	form.Set("remember", "true")
	return form
}

func TestRegisterPost(t *testing.T) {
	t.Run("registers, logs in and lands on the dashboard", func(t *testing.T) {
		mock := &MockShopAPI{}
		e := setupAuthTest(mock)

		rec := postForm(e, "/register", registerForm())

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

		require.Len(t, mock.RegisterCalls, 1)
		assert.Equal(t, domain.Registration{
			Username: "ada",
			Password: "hunter2",
			Shops:    [3]string{"acme", "", "books"},
			Remember: true,
		}, mock.RegisterCalls[0])

		// The follow-up login carries exactly the two credential fields.
		require.Len(t, mock.LoginCalls, 1)
		assert.Equal(t, LoginCall{Username: "ada", Password: "hunter2"}, mock.LoginCalls[0])
	})

	t.Run("shows the backend message verbatim when registration is rejected", func(t *testing.T) {
		mock := &MockShopAPI{
			RegisterFn: func(ctx context.Context, reg *domain.Registration) error {
				return &shopapi.APIError{Status: http.StatusConflict, Message: "username already taken"}
			},
		}
		e := setupAuthTest(mock)

		rec := postForm(e, "/register", registerForm())

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "username already taken")

		// No field is cleared on failure.
		assert.Contains(t, body, `value="ada"`)
		assert.Contains(t, body, `value="hunter2"`)
		assert.Contains(t, body, `value="acme"`)
		assert.Contains(t, body, `value="books"`)
		assert.Contains(t, body, "checked")

		// The login step is never reached.
		assert.Empty(t, mock.LoginCalls)
	})

	t.Run("falls back to the generic message when the failure has none", func(t *testing.T) {
		mock := &MockShopAPI{
			RegisterFn: func(ctx context.Context, reg *domain.Registration) error {
				return errors.New("connection refused")
			},
		}
		e := setupAuthTest(mock)

		rec := postForm(e, "/register", registerForm())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Signup failed. Please try again.")
	})

	t.Run("a failed login after a successful registration stays on the form", func(t *testing.T) {
		mock := &MockShopAPI{
			LoginFn: func(ctx context.Context, username, password string) (domain.Credential, error) {
				return "", &shopapi.APIError{Status: http.StatusUnauthorized, Message: "invalid credentials"}
			},
		}
		e := setupAuthTest(mock)

		rec := postForm(e, "/register", registerForm())

		// The account was created but no session exists: accepted, observable
		// behavior of the non-atomic two-step flow.
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid credentials")
		require.Len(t, mock.RegisterCalls, 1)
		require.Len(t, mock.LoginCalls, 1)
	})

	t.Run("empty shop slots are preserved and submitted as-is", func(t *testing.T) {
		mock := &MockShopAPI{}
		e := setupAuthTest(mock)

		form := registerForm()
		form["shops"] = []string{"", "", ""}
		rec := postForm(e, "/register", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		require.Len(t, mock.RegisterCalls, 1)
		assert.Equal(t, [3]string{"", "", ""}, mock.RegisterCalls[0].Shops)
	})
}

func TestSignInPost(t *testing.T) {
	t.Run("stores the credential and redirects to the dashboard", func(t *testing.T) {
		mock := &MockShopAPI{}
		e := setupAuthTest(mock)

		form := url.Values{}
		form.Set("username", "ada")
		form.Set("password", "hunter2")
		rec := postForm(e, "/login", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		assert.NotEmpty(t, rec.Result().Cookies())
	})

	t.Run("re-renders inline with the backend message on rejection", func(t *testing.T) {
		mock := &MockShopAPI{
			LoginFn: func(ctx context.Context, username, password string) (domain.Credential, error) {
				return "", &shopapi.APIError{Status: http.StatusUnauthorized, Message: "invalid credentials"}
			},
		}
		e := setupAuthTest(mock)

		form := url.Values{}
		form.Set("username", "ada")
		form.Set("password", "wrong")
		rec := postForm(e, "/login", form)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid credentials")
		assert.Contains(t, rec.Body.String(), `value="ada"`)
	})
}

func TestLogoutPost(t *testing.T) {
	t.Run("invalidates the session and returns to the entry point", func(t *testing.T) {
		mock := &MockShopAPI{}
		e := setupAuthTest(mock)
		cookies := signIn(t, e)

		rec := postForm(e, "/logout", url.Values{}, cookies...)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Equal(t, 1, mock.LogoutCalls)
	})

	t.Run("still redirects when the server call fails", func(t *testing.T) {
		mock := &MockShopAPI{
			LogoutFn: func(ctx context.Context, cred domain.Credential) error {
				return errors.New("backend unavailable")
			},
		}
		e := setupAuthTest(mock)
		cookies := signIn(t, e)

		rec := postForm(e, "/logout", url.Values{}, cookies...)

		// Best-effort: the failure is only logged, the client proceeds as
		// logged out.
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Equal(t, 1, mock.LogoutCalls)
	})

	t.Run("answers htmx confirmations with HX-Redirect", func(t *testing.T) {
		mock := &MockShopAPI{}
		e := setupAuthTest(mock)
		cookies := signIn(t, e)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set("HX-Request", "true")
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))
		assert.Equal(t, 1, mock.LogoutCalls)
	})

	t.Run("skips the API call without a stored credential", func(t *testing.T) {
		mock := &MockShopAPI{}
		e := setupAuthTest(mock)

		rec := postForm(e, "/logout", url.Values{})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Zero(t, mock.LogoutCalls)
	})
}
