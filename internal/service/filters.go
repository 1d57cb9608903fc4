package service

import (
	"strings"

	"github.com/MKhiriev/public-api-fetcher/models"
)

// FieldHasPrefix matches records whose string value at path starts with
// prefix. Missing, non-string or unreachable values never match.
func FieldHasPrefix(prefix string, path ...string) Filter {
	return func(rec models.Record) bool {
		v, found, err := rec.Lookup(path...)
		if err != nil || !found {
			return false
		}
		s, ok := v.(string)
		return ok && strings.HasPrefix(s, prefix)
	}
}

// CityHasPrefix matches records of profile p whose city starts with prefix.
// Profiles without a city field match nothing.
func CityHasPrefix(p models.Profile, prefix string) Filter {
	if len(p.CityPath) == 0 {
		return func(models.Record) bool { return false }
	}
	return FieldHasPrefix(prefix, p.CityPath...)
}
