package domain

import "context"

// Credential is the opaque, server-issued token proving an authenticated
// identity. It is never inspected by this layer; it is captured from a
// successful login and handed back verbatim on every authenticated call.
type Credential string

// DashboardData is the result of the one-shot bootstrap query: who the
// current user is and which shops they own.
type DashboardData struct {
	Username string   `json:"username"`
	Shops    []string `json:"shops"`
}

// Registration is the full account-creation payload. Shops is a fixed
// three-slot list; empty slots are valid and submitted as-is.
type Registration struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Shops    [3]string `json:"shops"`
	Remember bool      `json:"remember"`
}

// ShopAPI is the contract with the remote shop platform backend. It lives
// in the domain because it is a requirement OF the views, not of the HTTP
// client implementation.
//
// The backend is the sole authority on accounts, credentials and shop
// ownership; this layer only orchestrates calls and reacts to results.
type ShopAPI interface {
	// Shop fetches the public profile for a tenant slug.
	Shop(ctx context.Context, slug string) (*Tenant, error)

	// Dashboard performs the authenticated bootstrap query.
	Dashboard(ctx context.Context, cred Credential) (*DashboardData, error)

	// Register submits an account-creation request. It does not establish
	// a session; callers follow up with Login.
	Register(ctx context.Context, reg *Registration) error

	// Login verifies the credentials and returns the session credential
	// issued by the backend.
	Login(ctx context.Context, username, password string) (Credential, error)

	// Logout invalidates the session server-side.
	Logout(ctx context.Context, cred Credential) error
}
