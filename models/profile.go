// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProfileKind identifies which public API a [Profile] describes.
// The value selects both the response envelope handling and the formatter
// used to render records.
type ProfileKind int

const (
	// KindJSONPlaceholder represents the JSONPlaceholder users endpoint.
	// The response body is a top-level array of user objects.
	KindJSONPlaceholder ProfileKind = 1

	// KindRandomUser represents the Random User Generator endpoint.
	// The user objects are wrapped in a "results" envelope.
	KindRandomUser ProfileKind = 2

	// KindCoinGecko represents the CoinGecko markets endpoint.
	// The response body is a top-level array of coin objects.
	KindCoinGecko ProfileKind = 3
)

// String returns the registry identifier of the kind.
func (k ProfileKind) String() string {
	switch k {
	case KindJSONPlaceholder:
		return "jsonplaceholder"
	case KindRandomUser:
		return "randomuser"
	case KindCoinGecko:
		return "coingecko"
	default:
		return "unknown"
	}
}

// Profile is the static description of one target API.
// Profiles are created once by the registry and never mutated; the
// WithEndpoint helper returns a modified copy.
type Profile struct {
	// Kind is the tagged variant used for envelope and formatter dispatch.
	Kind ProfileKind

	// ID is the registry identifier (e.g. "jsonplaceholder").
	ID string

	// Endpoint is the full URL requested by a fetch, query string included.
	Endpoint string

	// DisplayName is the human-readable API name shown on the console.
	DisplayName string

	// ExpectedFields lists, in display order, the fields a record renders.
	ExpectedFields []string

	// RecordLabel prefixes each rendered block (e.g. "User 1:").
	RecordLabel string

	// ResultsKey names the object key holding the record list when the API
	// wraps its records in an envelope. Empty means the body is the list.
	ResultsKey string

	// CityPath is the record path of the city field, used by city filters.
	// Empty when the API has no notion of a city.
	CityPath []string
}

// Fields returns a copy of ExpectedFields.
func (p Profile) Fields() []string {
	out := make([]string, len(p.ExpectedFields))
	copy(out, p.ExpectedFields)
	return out
}

// WithEndpoint returns a copy of the profile pointing at endpoint.
func (p Profile) WithEndpoint(endpoint string) Profile {
	p.ExpectedFields = p.Fields()
	p.CityPath = append([]string(nil), p.CityPath...)
	p.Endpoint = endpoint
	return p
}
