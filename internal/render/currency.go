package render

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/public-api-fetcher/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatUSD renders a numeric JSON value as dollars with thousands
// separators and the given number of decimals. Non-numeric values are
// returned verbatim without the currency sign.
func FormatUSD(v any, decimals int) string {
	amount, ok := numeric(v)
	if !ok {
		return FormatRaw(v)
	}

	return "$" + amountPrinter.Sprintf(fmt.Sprintf("%%.%df", decimals), amount)
}

// FormatRaw renders a decoded JSON value verbatim.
func FormatRaw(v any) string {
	return models.FormatValue(v)
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
