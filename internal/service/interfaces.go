// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the fetch session: one bound API profile plus
// the most recently fetched record list.
//
// A session performs a single blocking fetch through an
// [adapter.RecordFetcher], reports the outcome on the console and renders the
// stored records with the profile's formatter. Failures never escape: fetch
// errors become a false result plus a console message, and a record that
// cannot be rendered becomes a warning line while the listing continues.
package service

import (
	"context"

	"github.com/MKhiriev/public-api-fetcher/models"
)

// FetchSession is the per-run state of the fetcher. Implementations are not
// safe for concurrent use.
type FetchSession interface {
	// ID returns the identifier attached to the session's log entries.
	ID() string

	// Profile returns the API profile the session is bound to.
	Profile() models.Profile

	// FetchData performs one request to the profile endpoint and stores the
	// decoded records. It returns false, after printing a classified error
	// message, when the request or decoding fails; in that case previously
	// stored records are left untouched.
	FetchData(ctx context.Context) bool

	// DisplayData prints stored records in their original order, applying
	// the options, and returns the number of rendered blocks.
	DisplayData(opts ...DisplayOption) int

	// Count returns the number of stored records, or zero before the first
	// successful fetch.
	Count() int

	// Records returns a copy of the stored record slice. It is nil before
	// the first successful fetch.
	Records() []models.Record
}
