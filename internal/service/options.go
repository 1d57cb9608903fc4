package service

import "github.com/MKhiriev/public-api-fetcher/models"

// Filter reports whether a record should be displayed.
type Filter func(rec models.Record) bool

// DisplayOption configures a single DisplayData call.
type DisplayOption func(*displayOptions)

type displayOptions struct {
	limit  int
	filter Filter
}

func newDisplayOptions(opts ...DisplayOption) displayOptions {
	var o displayOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLimit stops the listing after n rendered records. Values below one
// mean no limit.
func WithLimit(n int) DisplayOption {
	return func(o *displayOptions) {
		o.limit = n
	}
}

// WithFilter skips records for which f returns false. Skipped records do not
// count toward the limit.
func WithFilter(f Filter) DisplayOption {
	return func(o *displayOptions) {
		o.filter = f
	}
}

// SessionOption configures a session at construction time.
type SessionOption func(*fetchSession)

// WithEndpoint points the session at endpoint instead of the registry URL.
func WithEndpoint(endpoint string) SessionOption {
	return func(s *fetchSession) {
		s.profile = s.profile.WithEndpoint(endpoint)
	}
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) SessionOption {
	return func(s *fetchSession) {
		s.id = id
	}
}
