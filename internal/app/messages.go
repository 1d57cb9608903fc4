// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// fetch session and the demonstration runner.
//
// All Msg* constants are human-readable message strings printed on the
// console to describe the outcome of an operation. Keeping them in one place
// ensures consistent wording throughout the program. Templates ending in "f"
// take fmt arguments.
package app

// Demonstration report.
const (
	// MsgTitle is the banner title.
	MsgTitle = "PUBLIC API DATA FETCHER"

	// MsgAvailableAPIs introduces the profile list.
	MsgAvailableAPIs = "Available APIs:"

	// MsgAPIEntryf is one profile list entry; takes the 1-based position and
	// the display name.
	MsgAPIEntryf = "%d. %s"

	// MsgDefaultMark is appended to the selected profile in the list.
	MsgDefaultMark = " (Default)"

	// MsgOptionHeaderf heads the run; takes the position and the upper-cased
	// display name.
	MsgOptionHeaderf = "OPTION %d: %s"

	// MsgDisplayAllf heads the full listing; takes the plural record label.
	MsgDisplayAllf = "DISPLAYING ALL %s:"

	// MsgBonusHeaderf heads the city listing; takes the plural record label
	// and the city prefix.
	MsgBonusHeaderf = "BONUS: %s FROM CITIES STARTING WITH '%s'"
)

// Fetch session outcomes.
const (
	// MsgFetchingFromf announces a fetch; takes the API display name.
	MsgFetchingFromf = "Fetching data from %s..."

	// MsgURLf shows the requested endpoint; takes the URL.
	MsgURLf = "URL: %s"

	// MsgFetchSucceededf reports a successful fetch; takes the record count.
	MsgFetchSucceededf = "✓ Successfully fetched %d records."

	// MsgTimeout is printed when the request exceeded its time budget.
	MsgTimeout = "✗ Error: Request timed out. Please check your internet connection."

	// MsgConnectionFailure is printed when the endpoint could not be reached.
	MsgConnectionFailure = "✗ Error: Failed to connect to the API. Please check your internet connection."

	// MsgHTTPErrorf is printed for a non-2xx response; takes the error.
	MsgHTTPErrorf = "✗ Error: HTTP error occurred: %v"

	// MsgStatusCodef follows MsgHTTPErrorf; takes the status code.
	MsgStatusCodef = "  Status Code: %d"

	// MsgTransportErrorf is printed for any other request failure; takes the error.
	MsgTransportErrorf = "✗ Error: An error occurred while fetching data: %v"

	// MsgDecodeErrorf is printed when the body cannot be decoded; takes the error.
	MsgDecodeErrorf = "✗ Error: Failed to parse JSON response: %v"

	// MsgNoData is printed when a listing is requested before a successful fetch.
	MsgNoData = "No data available. Please fetch data first."

	// MsgNoMatches is printed when a listing rendered zero records.
	MsgNoMatches = "No records matched the filter criteria."

	// MsgRecordWarningf is printed when one record cannot be rendered; takes
	// the 1-based record index and the error.
	MsgRecordWarningf = "⚠ Warning: Error processing record %d: %v"

	// MsgTotalProcessedf is the summary line; takes the record count.
	MsgTotalProcessedf = "Total records processed: %d"
)
