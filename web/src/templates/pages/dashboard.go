package pages

import (
	"fmt"

	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ShopLink is one owned shop and the tenant-scoped origin it opens.
type ShopLink struct {
	Name string
	URL  string
}

// DashboardData is the view state populated by the bootstrap call.
type DashboardData struct {
	Username string
	Shops    []ShopLink
}

// Dashboard renders the owner dashboard: greeting, owned-shop grid and the
// logout flow. The logout button swaps the confirmation panel into the
// #modal slot; confirmation and dismissal live in the partial itself.
func Dashboard(data DashboardData) gomponents.Node {
	return Div(
		Class("min-h-screen p-6"),
		Header(
			Class("max-w-6xl mx-auto flex justify-between items-center mb-12 pt-8"),
			Div(
				H1(Class("text-3xl font-bold"), gomponents.Textf("Welcome, %s!", data.Username)),
				P(Class("text-gray-400 mt-2"), gomponents.Text("Manage your shops and settings")),
			),
			Button(
				Type("button"),
				hx.Get("/dashboard/logout"),
				hx.Target("#modal"),
				hx.Swap("innerHTML"),
				Class("bg-gray-800 hover:bg-red-900/20 px-5 py-2.5 rounded-lg border border-red-800/30"),
				gomponents.Text("Logout"),
			),
		),
		Main(
			Class("max-w-6xl mx-auto"),
			Div(
				Class("bg-gray-800/30 rounded-2xl p-8 border border-gray-700/50"),
				Div(
					Class("flex items-center justify-between mb-10"),
					H2(Class("text-2xl font-semibold"), gomponents.Text("Your Shops")),
					Span(
						Class("bg-blue-500/10 text-blue-400 px-3 py-1 rounded-full text-sm"),
						gomponents.Text(shopCount(len(data.Shops))),
					),
				),
				shopGrid(data.Shops),
			),
		),
		Div(ID("modal")),
	)
}

func shopGrid(shops []ShopLink) gomponents.Node {
	if len(shops) == 0 {
		return Div(
			Class("text-center py-12"),
			H3(Class("text-xl font-medium mb-2"), gomponents.Text("No shops yet")),
			P(
				Class("text-gray-400 max-w-md mx-auto"),
				gomponents.Text("Get started by creating your first shop to manage products and orders."),
			),
		)
	}

	return Div(
		Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-5"),
		gomponents.Map(shops, func(shop ShopLink) gomponents.Node {
			return A(
				Href(shop.URL),
				Target("_blank"),
				Class("block bg-gray-900/50 rounded-xl p-6 border border-gray-700/30 hover:border-blue-500/30"),
				H3(Class("font-semibold text-lg mb-2"), gomponents.Text(shop.Name)),
				P(Class("text-gray-400 text-sm"), gomponents.Text("Click to open shop")),
			)
		}),
	)
}

func shopCount(n int) string {
	if n == 1 {
		return "1 Shop"
	}
	return fmt.Sprintf("%d Shops", n)
}
