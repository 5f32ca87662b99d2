package partials

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// LogoutConfirm is the logout confirmation panel, swapped into the dashboard
// modal slot. Dismissal is purely client-side: clicking the backdrop (but
// not the panel) or the cancel button removes the element without a network
// call. Only the confirm button talks to the server.
func LogoutConfirm() gomponents.Node {
	return Div(
		ID("logout-backdrop"),
		Class("fixed inset-0 bg-black/80 flex items-center justify-center z-50 p-4"),
		// Dismiss only when the click lands on the backdrop itself, not on
		// anything inside the panel.
		gomponents.Attr("hx-on:click", "if (event.target === this) this.remove()"),
		Div(
			Class("bg-gray-900 rounded-2xl p-6 w-full max-w-md border border-gray-700/50 shadow-2xl"),
			H2(Class("text-2xl font-bold text-center mb-2"), gomponents.Text("Confirm Logout")),
			P(
				Class("text-gray-400 text-center mb-6"),
				gomponents.Text("Are you sure you want to log out from your account?"),
			),
			Div(
				Class("flex gap-3"),
				Button(
					Type("button"),
					Class("flex-1 bg-gray-700 hover:bg-gray-600/70 px-4 py-3 rounded-lg"),
					gomponents.Attr("hx-on:click", "document.getElementById('logout-backdrop').remove()"),
					gomponents.Text("Cancel"),
				),
				Button(
					Type("button"),
					hx.Post("/logout"),
					hx.Swap("none"),
					Class("flex-1 bg-red-600 hover:bg-red-700 px-4 py-3 rounded-lg text-white"),
					gomponents.Text("Yes, Logout"),
				),
			),
		),
	)
}
