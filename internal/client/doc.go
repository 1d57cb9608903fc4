// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the demonstration runner of the fetcher.
//
// It binds a fetch session to the configured profile and prints the fixed
// report: banner, available APIs, one fetch, the full listing, the city
// listing and the record total. Fetch failures are reported on the console
// and never turn into a process error.
package client
