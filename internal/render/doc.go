// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns loosely-typed API records into fixed multi-line text
// blocks.
//
// There is one stateless [Formatter] per [models.ProfileKind]; [ForKind] is
// the single dispatch point. Missing fields render as [models.Placeholder].
// A record whose shape makes rendering impossible (for example an "address"
// that is a string instead of an object) yields an error wrapping
// [ErrRender]; callers are expected to skip that record and carry on.
package render
