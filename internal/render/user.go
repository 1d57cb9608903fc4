package render

import "github.com/MKhiriev/public-api-fetcher/models"

// userFormatter renders JSONPlaceholder users.
type userFormatter struct{}

func (userFormatter) Format(idx int, rec models.Record) (string, error) {
	name, err := text(rec, "name")
	if err != nil {
		return "", err
	}
	username, err := text(rec, "username")
	if err != nil {
		return "", err
	}
	email, err := text(rec, "email")
	if err != nil {
		return "", err
	}
	city, err := text(rec, "address", "city")
	if err != nil {
		return "", err
	}

	b := newBlock("User", idx)
	b.line("Name", name)
	b.line("Username", username)
	b.line("Email", email)
	b.line("City", city)
	return b.String(), nil
}
