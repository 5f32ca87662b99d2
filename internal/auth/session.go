// Package auth stores the backend-issued session credential in the signed
// cookie session. The credential is treated as opaque: it is written on
// login, read back for authenticated calls, and dropped on logout. Whether
// it is still valid is only ever decided by the backend.
package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/shopfront/internal/domain"
)

const (
	sessionName   = "shopfront-session"
	credentialKey = "credential"

	// rememberMaxAge keeps the session cookie for 30 days when the user
	// ticked "remember me"; otherwise the cookie lasts for the browser
	// session only.
	rememberMaxAge = 30 * 24 * 60 * 60
)

// StoreCredential saves the credential in the session, honoring the
// remember flag for the cookie lifetime.
func StoreCredential(c echo.Context, cred domain.Credential, remember bool) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values[credentialKey] = string(cred)
	sess.Options = sessionOptions(0)
	if remember {
		sess.Options = sessionOptions(rememberMaxAge)
	}
	return sess.Save(c.Request(), c.Response())
}

// Credential returns the stored credential, or false when the session
// carries none.
func Credential(c echo.Context) (domain.Credential, bool) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return "", false
	}
	raw, ok := sess.Values[credentialKey].(string)
	if !ok || raw == "" {
		return "", false
	}
	return domain.Credential(raw), true
}

// Clear drops the credential and expires the session cookie.
func Clear(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	delete(sess.Values, credentialKey)
	sess.Options = sessionOptions(-1)
	return sess.Save(c.Request(), c.Response())
}

func sessionOptions(maxAge int) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
