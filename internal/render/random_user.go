package render

import (
	"strings"

	"github.com/MKhiriev/public-api-fetcher/models"
)

// randomUserFormatter renders Random User Generator users.
type randomUserFormatter struct{}

func (randomUserFormatter) Format(idx int, rec models.Record) (string, error) {
	name, err := fullName(rec)
	if err != nil {
		return "", err
	}
	email, err := text(rec, "email")
	if err != nil {
		return "", err
	}
	city, err := text(rec, "location", "city")
	if err != nil {
		return "", err
	}
	country, err := text(rec, "location", "country")
	if err != nil {
		return "", err
	}

	b := newBlock("User", idx)
	b.line("Name", name)
	b.line("Email", email)
	b.line("City", city)
	b.line("Country", country)
	return b.String(), nil
}

// fullName joins name.first and name.last with a single space.
func fullName(rec models.Record) (string, error) {
	first, err := rec.Text("", "name", "first")
	if err != nil {
		return "", wrapShape(err)
	}
	last, err := rec.Text("", "name", "last")
	if err != nil {
		return "", wrapShape(err)
	}

	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return models.Placeholder, nil
	}
	return name, nil
}
