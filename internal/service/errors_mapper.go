// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/public-api-fetcher/internal/adapter"
	"github.com/MKhiriev/public-api-fetcher/internal/app"
)

// reportFetchError prints the console message matching the class of a fetch
// error.
func (s *fetchSession) reportFetchError(err error) {
	var statusErr *adapter.StatusError

	switch {
	case errors.As(err, &statusErr):
		s.out.Failure(app.MsgHTTPErrorf, statusErr)
		s.out.Line(app.MsgStatusCodef, statusErr.StatusCode)
	case errors.Is(err, adapter.ErrTimeout):
		s.out.Failure(app.MsgTimeout)
	case errors.Is(err, adapter.ErrConnectionFailure):
		s.out.Failure(app.MsgConnectionFailure)
	case errors.Is(err, adapter.ErrDecode):
		s.out.Failure(app.MsgDecodeErrorf, err)
	default:
		s.out.Failure(app.MsgTransportErrorf, err)
	}
}
