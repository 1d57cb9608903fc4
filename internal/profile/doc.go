// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package profile holds the fixed registry of public APIs the fetcher knows
// how to query.
//
// The registry is built once at package initialisation and is read-only
// afterwards. Callers resolve an identifier with [Lookup]; an unknown
// identifier yields an error wrapping [ErrInvalidConfiguration] that lists
// every valid identifier.
package profile
