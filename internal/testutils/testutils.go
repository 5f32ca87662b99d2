package testutils

import (
	"testing"

	"github.com/nfrund/shopfront/internal/config"
)

// ConfigForTests sets the required environment variables for this test and
// returns a valid config.Provider. Values can be overridden per-test with
// another t.Setenv before calling config.New again.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	t.Setenv("SHOP_API_URL", "http://shop-api.test")
	t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
	t.Setenv("BASE_DOMAIN", "localhost:8080")

	return config.New()
}
