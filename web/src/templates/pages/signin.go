package pages

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SignInData carries the sign-in form state: the last submitted username and
// an inline error message, both empty on first render.
type SignInData struct {
	Username string
	Error    string
}

// SignIn renders the unauthenticated entry page.
func SignIn(data SignInData) gomponents.Node {
	return Div(
		Class("min-h-screen flex items-center justify-center p-4"),
		Div(
			Class("bg-gray-900/80 rounded-2xl shadow-2xl border border-white/10 w-full max-w-md px-10 py-12"),
			H1(Class("text-3xl font-bold text-center mb-2"), gomponents.Text("Welcome")),
			P(Class("text-gray-400 text-center mb-10"), gomponents.Text("Sign in to your account")),
			Form(
				Method("post"),
				Action("/login"),
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
					Required(),
					Class("w-full px-4 py-3 bg-gray-800/60 border border-gray-700/50 rounded-lg text-white"),
				),
				Button(
					Type("submit"),
					Class("bg-blue-600 text-white rounded p-2 mt-3 w-full hover:bg-blue-700"),
					gomponents.Text("Sign In"),
				),
			),
			Div(
				Class("mt-6 text-center"),
				P(
					Class("text-gray-400"),
					gomponents.Text("Don't have an account? "),
					A(Href("/register"), Class("font-medium text-cyan-400"), gomponents.Text("Register")),
				),
			),
		),
	)
}
