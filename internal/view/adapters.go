package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// The two adapters below bridge the rendering ecosystems: a gomponents view
// can embed a templ component and vice versa. The universal renderer accepts
// both, so either wrapping direction produces a renderable component.

// GomponentToTemplAdapter wraps a gomponents.Node as a templ.Component.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component by delegating to the wrapped node.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter wraps a templ.Component as a gomponents.Node.
type TemplToGomponentAdapter struct {
	Component templ.Component
}

// Render implements gomponents.Node. Gomponents rendering carries no
// context, so the templ component is rendered with context.Background().
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ Component into a gomponents Node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}
