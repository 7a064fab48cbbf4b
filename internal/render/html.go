package render

import (
	"strings"

	"github.com/nao1215/salesreport/internal/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLRenderer renders a total as a single heading, e.g. <h1>your sales: ¥1000</h1>.
// Digits are not grouped so the stored amount appears literally.
type HTMLRenderer struct {
	opts options
}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer(opts ...Option) *HTMLRenderer {
	return &HTMLRenderer{opts: newOptions(opts)}
}

// Format implements Renderer.
func (r *HTMLRenderer) Format() string {
	return FormatHTML
}

// Render implements Renderer.
func (r *HTMLRenderer) Render(total model.SalesTotal) string {
	label := r.opts.printer().Sprintf(msgYourSales)

	h1 := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.H1,
		Data:     atom.H1.String(),
	}
	h1.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: label + ": " + r.opts.currency + total.Amount.String(),
	})

	var sb strings.Builder
	// Rendering into a strings.Builder cannot fail.
	_ = html.Render(&sb, h1) //nolint:errcheck // strings.Builder never errors
	return sb.String()
}
