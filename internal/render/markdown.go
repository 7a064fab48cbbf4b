package render

import (
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/salesreport/internal/model"
)

// MarkdownRenderer renders a total as a heading and a summary table.
type MarkdownRenderer struct {
	opts options
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(opts ...Option) *MarkdownRenderer {
	return &MarkdownRenderer{opts: newOptions(opts)}
}

// Format implements Renderer.
func (r *MarkdownRenderer) Format() string {
	return FormatMarkdown
}

// Render implements Renderer.
func (r *MarkdownRenderer) Render(total model.SalesTotal) string {
	p := r.opts.printer()

	var sb strings.Builder
	md := markdown.NewMarkdown(&sb)

	md.H2(p.Sprintf(msgTitle))
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{p.Sprintf(msgItem), p.Sprintf(msgValue)},
		Rows: [][]string{
			{p.Sprintf(msgPeriod), total.Range.String()},
			{p.Sprintf(msgDays), strconv.Itoa(total.Range.Days())},
			{p.Sprintf(msgTotal), r.opts.currency + total.Amount.String()},
		},
	})

	return md.String()
}
