package pages

import (
	"fmt"

	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// RegisterData carries the registration form state. On a failed submission
// every field keeps its submitted value; nothing is cleared.
type RegisterData struct {
	Username string
	Password string
	Shops    [3]string
	Remember bool
	Error    string
}

// Register renders the registration page. The shop list is a fixed three-slot
// sequence: slots are independently editable, empty slots are valid.
func Register(data RegisterData) gomponents.Node {
	return Div(
		Class("min-h-screen flex items-center justify-center p-4"),
		Div(
			Class("bg-gray-900/80 rounded-2xl shadow-2xl border border-white/10 w-full max-w-xl px-10 py-12"),
			H1(Class("text-3xl font-bold text-center mb-2"), gomponents.Text("Welcome")),
			P(Class("text-gray-400 text-center mb-10"), gomponents.Text("Register now")),
			Form(
				Method("post"),
				Action("/register"),
				Class("space-y-6"),
				gomponents.If(data.Error != "",
					P(Class("text-red-500 mb-2"), gomponents.Text(data.Error)),
				),
				Input(
					Type("text"),
					Name("username"),
					Placeholder("User Name"),
					Value(data.Username),
					Required(),
					Class("w-full px-4 py-3 bg-gray-800/60 border border-gray-700/50 rounded-lg text-white"),
				),
				Input(
					Type("password"),
					Name("password"),
					Placeholder("Password"),
					Value(data.Password),
					Required(),
					Class("w-full px-4 py-3 bg-gray-800/60 border border-gray-700/50 rounded-lg text-white"),
				),
				shopSlots(data.Shops),
				Div(
					Class("flex items-center"),
					Input(
						Type("checkbox"),
						ID("remember-me"),
						Name("remember"),
						Value("true"),
						gomponents.If(data.Remember, Checked()),
						Class("w-4 h-4"),
					),
					Label(
						For("remember-me"),
						Class("ml-2 text-sm font-medium text-gray-300"),
						gomponents.Text("Remember me"),
					),
				),
				Button(
					Type("submit"),
					Class("bg-blue-600 text-white rounded p-2 mt-3 w-full hover:bg-blue-700"),
					gomponents.Text("Sign Up"),
				),
			),
			Div(
				Class("mt-6 text-center"),
				P(
					Class("text-gray-400"),
					gomponents.Text("Already have an account? "),
					A(Href("/"), Class("font-medium text-cyan-400"), gomponents.Text("Sign In")),
				),
			),
		),
	)
}

// shopSlots renders the three shop-name inputs. All slots post under the
// same "shops" field so they bind back into the fixed-size list in order.
func shopSlots(shops [3]string) gomponents.Node {
	nodes := make([]gomponents.Node, 0, len(shops))
	for i, shop := range shops {
		nodes = append(nodes, Input(
			Type("text"),
			Name("shops"),
			Placeholder(fmt.Sprintf("Shop %d", i+1)),
			Value(shop),
			Class("w-full px-4 py-3 bg-gray-800/60 border border-gray-700/50 rounded-lg text-white"),
		))
	}
	return gomponents.Group(nodes)
}
