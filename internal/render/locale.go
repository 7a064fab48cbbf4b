package render

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// ErrUnsupportedLocale is returned when a locale has no translation.
var ErrUnsupportedLocale = errors.New("unsupported locale: expected en or ja")

// Message keys. The English text doubles as the key.
const (
	msgYourSales = "your sales"
	msgTitle     = "Sales Report"
	msgPeriod    = "Period"
	msgTotal     = "Total"
	msgDays      = "Days"
	msgItem      = "Item"
	msgValue     = "Value"
	msgTextLine  = "Your sales: %s%d (%s)"
)

// supportedLocales is ordered by preference; the first entry is the fallback.
var supportedLocales = []language.Tag{
	language.English,
	language.Japanese,
}

var matcher = language.NewMatcher(supportedLocales)

// messages holds every translated string.
var messages = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	translations := map[language.Tag]map[string]string{
		language.English: {
			msgYourSales: "your sales",
			msgTitle:     "Sales Report",
			msgPeriod:    "Period",
			msgTotal:     "Total",
			msgDays:      "Days",
			msgItem:      "Item",
			msgValue:     "Value",
			msgTextLine:  "Your sales: %s%d (%s)",
		},
		language.Japanese: {
			msgYourSales: "あなたの売上",
			msgTitle:     "売上レポート",
			msgPeriod:    "期間",
			msgTotal:     "合計",
			msgDays:      "日数",
			msgItem:      "項目",
			msgValue:     "値",
			msgTextLine:  "あなたの売上: %s%d (%s)",
		},
	}

	for tag, entries := range translations {
		for key, msg := range entries {
			// SetString only fails for malformed tags, and these are constants.
			_ = b.SetString(tag, key, msg) //nolint:errcheck // constant input
		}
	}
	return b
}

// ParseLocale resolves s (e.g. "en", "ja-JP", "en_US") to a supported tag.
// An empty string yields English.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return supportedLocales[0], nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}
	return supportedLocales[idx], nil
}

// newPrinter returns a printer bound to the shared catalog.
func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
