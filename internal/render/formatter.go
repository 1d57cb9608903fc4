package render

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/public-api-fetcher/internal/console"
	"github.com/MKhiriev/public-api-fetcher/models"
)

// Separator terminates every rendered block.
var Separator = strings.Repeat("-", console.RecordRule)

// Formatter renders one record as a newline-terminated block.
type Formatter interface {
	// Format renders rec using the 1-based display index idx. The returned
	// block ends with [Separator] and a newline. On error nothing should be
	// printed for the record.
	Format(idx int, rec models.Record) (string, error)
}

// ForKind returns the formatter for kind.
func ForKind(kind models.ProfileKind) (Formatter, error) {
	switch kind {
	case models.KindJSONPlaceholder:
		return userFormatter{}, nil
	case models.KindRandomUser:
		return randomUserFormatter{}, nil
	case models.KindCoinGecko:
		return cryptoFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// block accumulates "Label: value" lines and finishes with the separator.
type block struct {
	sb strings.Builder
}

func newBlock(label string, idx int) *block {
	b := &block{}
	fmt.Fprintf(&b.sb, "%s %d:\n", label, idx)
	return b
}

func (b *block) line(label, value string) {
	fmt.Fprintf(&b.sb, "%s: %s\n", label, value)
}

func (b *block) String() string {
	b.sb.WriteString(Separator)
	b.sb.WriteByte('\n')
	return b.sb.String()
}

// text resolves path with the placeholder default, wrapping shape errors.
func text(rec models.Record, path ...string) (string, error) {
	v, err := rec.Text(models.Placeholder, path...)
	if err != nil {
		return "", wrapShape(err)
	}
	return v, nil
}

func wrapShape(err error) error {
	return fmt.Errorf("%w: %w", ErrRender, err)
}
