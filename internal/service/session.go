package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/public-api-fetcher/internal/adapter"
	"github.com/MKhiriev/public-api-fetcher/internal/app"
	"github.com/MKhiriev/public-api-fetcher/internal/console"
	"github.com/MKhiriev/public-api-fetcher/internal/logger"
	"github.com/MKhiriev/public-api-fetcher/internal/profile"
	"github.com/MKhiriev/public-api-fetcher/internal/render"
	"github.com/MKhiriev/public-api-fetcher/internal/utils"
	"github.com/MKhiriev/public-api-fetcher/models"
)

type fetchSession struct {
	id        string
	profile   models.Profile
	formatter render.Formatter

	fetcher adapter.RecordFetcher
	out     *console.Printer
	logger  *logger.Logger

	records []models.Record
}

// NewFetchSession binds a new session to the profile registered under
// profileID.
//
// Returns an error wrapping [profile.ErrInvalidConfiguration] when profileID
// is unknown; this is the only fatal error of the package.
func NewFetchSession(
	profileID string,
	fetcher adapter.RecordFetcher,
	out *console.Printer,
	log *logger.Logger,
	opts ...SessionOption,
) (FetchSession, error) {
	p, err := profile.Lookup(profileID)
	if err != nil {
		return nil, err
	}

	formatter, err := render.ForKind(p.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", profile.ErrInvalidConfiguration, err)
	}

	if log == nil {
		log = logger.Nop()
	}
	if out == nil {
		out = console.New(io.Discard)
	}

	s := &fetchSession{
		id:        utils.NewUUIDGenerator().Generate(),
		profile:   p,
		formatter: formatter,
		fetcher:   fetcher,
		out:       out,
	}
	for _, opt := range opts {
		opt(s)
	}

	child := log.GetChildLogger()
	child.Logger = child.With().
		Str("session_id", s.id).
		Str("profile", s.profile.ID).
		Logger()
	s.logger = child

	return s, nil
}

func (s *fetchSession) ID() string {
	return s.id
}

func (s *fetchSession) Profile() models.Profile {
	return s.profile.WithEndpoint(s.profile.Endpoint)
}

func (s *fetchSession) FetchData(ctx context.Context) bool {
	ctx = s.logger.WithContext(utils.WithSessionID(ctx, s.id))

	s.out.Line(app.MsgFetchingFromf, s.profile.DisplayName)
	s.out.Line(app.MsgURLf, s.profile.Endpoint)
	s.out.Blank()

	records, err := s.fetcher.Fetch(ctx, s.profile)
	if err != nil {
		s.logger.Error().Err(err).Str("url", s.profile.Endpoint).Msg("fetch failed")
		s.reportFetchError(err)
		return false
	}

	s.records = records
	s.logger.Info().Int("records", len(records)).Msg("fetch succeeded")

	s.out.Success(app.MsgFetchSucceededf, len(records))
	s.out.Blank()
	return true
}

func (s *fetchSession) DisplayData(opts ...DisplayOption) int {
	if len(s.records) == 0 {
		s.out.Line(app.MsgNoData)
		return 0
	}

	o := newDisplayOptions(opts...)
	displayed := 0

	for i, rec := range s.records {
		idx := i + 1

		if o.filter != nil && !o.filter(rec) {
			continue
		}

		block, err := s.formatter.Format(idx, rec)
		if err != nil {
			s.logger.Warn().Err(err).Int("record", idx).Msg("record skipped")
			s.out.Warning(app.MsgRecordWarningf, idx, err)
			s.out.Rule(console.AlertRule)
			continue
		}

		s.out.Raw(block)
		displayed++

		if o.limit > 0 && displayed >= o.limit {
			break
		}
	}

	if displayed == 0 {
		s.out.Line(app.MsgNoMatches)
	}

	s.logger.Debug().
		Int("displayed", displayed).
		Int("limit", o.limit).
		Bool("filtered", o.filter != nil).
		Msg("records displayed")

	return displayed
}

func (s *fetchSession) Count() int {
	return len(s.records)
}

func (s *fetchSession) Records() []models.Record {
	if s.records == nil {
		return nil
	}
	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}
