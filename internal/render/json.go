package render

import (
	"encoding/json"

	"github.com/nao1215/salesreport/internal/model"
)

// JSONRenderer renders a total as a compact JSON object.
type JSONRenderer struct {
	opts options
}

// JSONTotal is the document produced by JSONRenderer.
type JSONTotal struct {
	Start    string       `json:"start"`
	End      string       `json:"end"`
	Total    model.Amount `json:"total"`
	Currency string       `json:"currency"`
	Locale   string       `json:"locale"`
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(opts ...Option) *JSONRenderer {
	return &JSONRenderer{opts: newOptions(opts)}
}

// Format implements Renderer.
func (r *JSONRenderer) Format() string {
	return FormatJSON
}

// Render implements Renderer.
func (r *JSONRenderer) Render(total model.SalesTotal) string {
	doc := JSONTotal{
		Start:    total.Range.Start.Format(model.DateLayout),
		End:      total.Range.End.Format(model.DateLayout),
		Total:    total.Amount,
		Currency: r.opts.currency,
		Locale:   r.opts.locale.String(),
	}
	// JSONTotal holds only strings and integers, so Marshal cannot fail.
	data, _ := json.Marshal(doc) //nolint:errchkjson // fixed, marshalable shape
	return string(data)
}
