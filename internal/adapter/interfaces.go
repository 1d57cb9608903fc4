// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer that talks to the public APIs
// described by [models.Profile].
//
// The primary abstraction is [RecordFetcher], which decouples the fetch
// session from the underlying protocol. The package ships an HTTP
// implementation built on resty ([NewHTTPRecordFetcher]).
//
// Error values defined in errors.go classify every failure of a fetch so that
// callers can use [errors.Is] / [errors.As] to pick a message: [ErrTimeout],
// [ErrConnectionFailure], [ErrTransport], [ErrDecode] and [*StatusError]
// (which matches [ErrHTTPStatus]).
package adapter

import (
	"context"

	"github.com/MKhiriev/public-api-fetcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_fetcher_mock.go -package=mock

// RecordFetcher retrieves the record list of a single API profile.
type RecordFetcher interface {
	// Fetch issues exactly one request to profile.Endpoint and returns the
	// decoded record list in response order. Envelope unwrapping follows
	// profile.ResultsKey. The returned slice is never nil on success.
	//
	// Errors are classified with the sentinel values of this package; no
	// retry is attempted.
	Fetch(ctx context.Context, profile models.Profile) ([]models.Record, error)
}
