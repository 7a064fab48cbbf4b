package render

import (
	"github.com/fatih/color"
	"github.com/nao1215/salesreport/internal/model"
)

// TextRenderer renders a total as one line with locale-aware digit grouping:
//
//	Your sales: ¥1,000 (2025-04-01..2025-04-30)
type TextRenderer struct {
	opts options
}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer(opts ...Option) *TextRenderer {
	return &TextRenderer{opts: newOptions(opts)}
}

// Format implements Renderer.
func (r *TextRenderer) Format() string {
	return FormatText
}

// Render implements Renderer.
func (r *TextRenderer) Render(total model.SalesTotal) string {
	line := r.opts.printer().Sprintf(msgTextLine, r.opts.currency, int64(total.Amount), total.Range.String())
	if !r.opts.color {
		return line
	}

	c := color.New(color.FgGreen, color.Bold)
	// The package-level NoColor switch follows the terminal; WithColor is an explicit request.
	c.EnableColor()
	return c.Sprint(line)
}
