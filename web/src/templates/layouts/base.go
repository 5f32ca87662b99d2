package layouts

import (
	"maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Base wraps page content in the shared HTML shell: head metadata, the htmx
// runtime and the application stylesheet.
func Base(title string, content gomponents.Node) gomponents.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(gomponents.Text(CalculateTitle(title))),
				h.Script(h.Src("https://unpkg.com/htmx.org@1.9.12")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
			),
			h.Body(
				h.Class("min-h-screen bg-gray-950 text-white"),
				content,
			),
		),
	)
}
