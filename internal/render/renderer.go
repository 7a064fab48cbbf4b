package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nao1215/salesreport/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format names.
const (
	FormatHTML     = "html"
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// DefaultCurrencySymbol is prepended to amounts.
const DefaultCurrencySymbol = "¥"

// ErrUnknownFormat is returned by New for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format: expected html, text, markdown or json")

// Renderer produces text for a sales total. Implementations have no side
// effects and accept any amount.
type Renderer interface {
	// Render returns the formatted report body.
	Render(total model.SalesTotal) string

	// Format returns the format name, e.g. "html".
	Format() string
}

// Formats returns every supported format name.
func Formats() []string {
	return []string{FormatHTML, FormatText, FormatMarkdown, FormatJSON}
}

// ContentType returns the HTTP media type for a format.
func ContentType(format string) string {
	switch format {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// options holds settings shared by every renderer.
type options struct {
	locale   language.Tag
	currency string
	color    bool
}

// Option configures a renderer.
type Option func(*options)

// WithLocale selects the language of labels.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithCurrency sets the symbol prepended to amounts.
func WithCurrency(symbol string) Option {
	return func(o *options) {
		o.currency = symbol
	}
}

// WithColor enables ANSI colour in the text renderer. Other renderers ignore it.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

func newOptions(opts []Option) options {
	o := options{
		locale:   language.English,
		currency: DefaultCurrencySymbol,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) printer() *message.Printer {
	return newPrinter(o.locale)
}

// New returns the renderer for format.
func New(format string, opts ...Option) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatHTML:
		return NewHTMLRenderer(opts...), nil
	case FormatText, "txt", "":
		return NewTextRenderer(opts...), nil
	case FormatMarkdown, "md":
		return NewMarkdownRenderer(opts...), nil
	case FormatJSON:
		return NewJSONRenderer(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
