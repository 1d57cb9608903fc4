package client

import (
	"context"
	"io"
	"strings"

	"github.com/MKhiriev/public-api-fetcher/internal/adapter"
	"github.com/MKhiriev/public-api-fetcher/internal/app"
	"github.com/MKhiriev/public-api-fetcher/internal/config"
	"github.com/MKhiriev/public-api-fetcher/internal/console"
	"github.com/MKhiriev/public-api-fetcher/internal/logger"
	"github.com/MKhiriev/public-api-fetcher/internal/profile"
	"github.com/MKhiriev/public-api-fetcher/internal/service"
)

type App struct {
	session service.FetchSession
	display config.Display

	out    *console.Printer
	logger *logger.Logger
}

// NewApp binds a fetch session to cfg.App.Profile.
// An unknown profile is the only error.
func NewApp(cfg *config.StructuredConfig, fetcher adapter.RecordFetcher, out *console.Printer, log *logger.Logger, opts ...service.SessionOption) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	if out == nil {
		out = console.New(io.Discard)
	}

	session, err := service.NewFetchSession(cfg.App.Profile, fetcher, out, log, opts...)
	if err != nil {
		return nil, err
	}

	return &App{
		session: session,
		display: cfg.Display,
		out:     out,
		logger:  log,
	}, nil
}

// Run prints the report. It returns ctx.Err() when ctx is already done and
// nil otherwise; fetch failures end the report early.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	selected := a.session.Profile()
	position := a.printProfiles(selected.ID)

	a.out.Blank()
	a.out.Blank()
	a.out.DoubleRule(console.WideRule)
	a.out.Heading(app.MsgOptionHeaderf, position, strings.ToUpper(selected.DisplayName))
	a.out.DoubleRule(console.WideRule)

	if !a.session.FetchData(ctx) {
		a.logger.Warn().Str("profile", selected.ID).Msg("report stopped after failed fetch")
		return nil
	}

	plural := pluralLabel(selected.RecordLabel)

	a.out.Heading(app.MsgDisplayAllf, plural)
	a.out.Rule(console.WideRule)
	a.session.DisplayData(service.WithLimit(a.display.Limit))

	if len(selected.CityPath) > 0 {
		a.out.Blank()
		a.out.DoubleRule(console.WideRule)
		a.out.Heading(app.MsgBonusHeaderf, plural, a.display.CityPrefix)
		a.out.DoubleRule(console.WideRule)
		a.session.DisplayData(service.WithFilter(service.CityHasPrefix(selected, a.display.CityPrefix)))
	} else {
		a.logger.Debug().Str("profile", selected.ID).Msg("city listing skipped, profile has no city field")
	}

	a.out.Blank()
	a.out.DoubleRule(console.WideRule)
	a.out.Line(app.MsgTotalProcessedf, a.session.Count())
	a.out.DoubleRule(console.WideRule)

	return nil
}

// printProfiles prints the banner and the registry, marking selectedID, and
// returns the 1-based position of the selected profile.
func (a *App) printProfiles(selectedID string) int {
	a.out.Banner(app.MsgTitle)
	a.out.Blank()
	a.out.Line(app.MsgAvailableAPIs)

	position := 0
	for i, p := range profile.List() {
		entry := p.DisplayName
		if p.ID == selectedID {
			entry += app.MsgDefaultMark
			position = i + 1
		}
		a.out.Line(app.MsgAPIEntryf, i+1, entry)
	}
	a.out.DoubleRule(console.WideRule)

	return position
}

func pluralLabel(label string) string {
	if label == "" {
		return "RECORDS"
	}
	return strings.ToUpper(label) + "S"
}
