package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/public-api-fetcher/internal/config"
	"github.com/MKhiriev/public-api-fetcher/internal/logger"
	"github.com/MKhiriev/public-api-fetcher/internal/utils"
	"github.com/MKhiriev/public-api-fetcher/models"
)

// RequestIDHeader carries the fetch session id on outgoing requests.
const RequestIDHeader = "X-Request-ID"

type httpRecordFetcher struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRecordFetcher constructs the resty-backed implementation of
// [RecordFetcher]. Every request is bounded by adapterCfg.RequestTimeout and
// carries adapterCfg.UserAgent.
func NewHTTPRecordFetcher(adapterCfg config.Adapter, log *logger.Logger) RecordFetcher {
	if log == nil {
		log = logger.Nop()
	}
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout, adapterCfg.UserAgent)

	return &httpRecordFetcher{client: client, logger: log}
}

// Fetch implements [RecordFetcher]. It GETs profile.Endpoint once, maps a
// non-2xx status to [*StatusError] and decodes the body with decodeRecords.
// It logs through the logger attached to ctx when there is one.
func (h *httpRecordFetcher) Fetch(ctx context.Context, profile models.Profile) ([]models.Record, error) {
	log := logger.FromContextOr(ctx, h.logger)

	log.Debug().
		Str("profile", profile.ID).
		Str("url", profile.Endpoint).
		Msg("sending request")

	req := h.client.R().SetContext(ctx)
	if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
		req.SetHeader(RequestIDHeader, sessionID)
	}

	resp, err := req.Get(profile.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", profile.ID, mapTransportError(err))
	}

	log.Debug().
		Str("profile", profile.ID).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Int("bytes", len(resp.Body())).
		Msg("response received")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	records, err := decodeRecords(resp.Body(), profile.ResultsKey)
	if err != nil {
		return nil, fmt.Errorf("decode %s response: %w", profile.ID, err)
	}

	return records, nil
}
