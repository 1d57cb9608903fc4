package render

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/public-api-fetcher/models"
)

// cryptoFormatter renders CoinGecko market entries.
type cryptoFormatter struct{}

func (cryptoFormatter) Format(idx int, rec models.Record) (string, error) {
	name, err := text(rec, "name")
	if err != nil {
		return "", err
	}
	symbol, err := upperSymbol(rec)
	if err != nil {
		return "", err
	}

	// single-key lookups cannot fail on shape
	price, found, _ := rec.Lookup("current_price")
	if !found {
		price = 0
	}
	marketCap, found, _ := rec.Lookup("market_cap")
	if !found {
		marketCap = 0
	}

	b := newBlock("Crypto", idx)
	b.line("Name", name)
	b.line("Symbol", symbol)
	b.line(priceLabel(price), FormatUSD(price, 2))
	b.line("Market Cap", FormatUSD(marketCap, 0))
	return b.String(), nil
}

// priceLabel shortens the label when the price is shown verbatim.
func priceLabel(price any) string {
	if _, ok := numeric(price); ok {
		return "Current Price"
	}
	return "Price"
}

func upperSymbol(rec models.Record) (string, error) {
	v, found, err := rec.Lookup("symbol")
	if err != nil {
		return "", wrapShape(err)
	}
	if !found || v == nil {
		return models.Placeholder, nil
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %w: symbol is %T, not a string", ErrRender, models.ErrUnexpectedShape, v)
	}
	return strings.ToUpper(s), nil
}
