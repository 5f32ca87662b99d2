package view_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/shopfront/internal/view"
)

func TestAdaptGomponentToTempl(t *testing.T) {
	component := view.AdaptGomponentToTempl(Span(gomponents.Text("hello")))

	var buf bytes.Buffer
	require.NoError(t, component.Render(context.Background(), &buf))
	assert.Equal(t, "<span>hello</span>", buf.String())
}

func TestAdaptTemplToGomponent(t *testing.T) {
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<em>templ</em>")
		return err
	})
	node := view.AdaptTemplToGomponent(component)

	var buf bytes.Buffer
	require.NoError(t, node.Render(&buf))
	assert.Equal(t, "<em>templ</em>", buf.String())
}
