package pages

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/shopfront/internal/domain"
)

// Shop renders a tenant's public storefront page.
func Shop(tenant *domain.Tenant) gomponents.Node {
	return Div(
		Class("flex flex-col items-center justify-center min-h-screen"),
		H1(
			Class("text-3xl font-bold mb-4"),
			gomponents.Textf("This Is %s Shop", tenant.Name),
		),
	)
}

// ShopNotFound is the terminal state when the tenant lookup fails for any
// reason. No partial profile data is ever shown.
func ShopNotFound() gomponents.Node {
	return Div(
		Class("flex items-center justify-center min-h-screen"),
		P(Class("text-lg text-gray-400"), gomponents.Text("Shop not found.")),
	)
}
