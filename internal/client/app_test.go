package client

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MKhiriev/public-api-fetcher/internal/adapter"
	"github.com/MKhiriev/public-api-fetcher/internal/config"
	"github.com/MKhiriev/public-api-fetcher/internal/console"
	"github.com/MKhiriev/public-api-fetcher/internal/logger"
	"github.com/MKhiriev/public-api-fetcher/internal/mock"
	"github.com/MKhiriev/public-api-fetcher/internal/profile"
	"github.com/MKhiriev/public-api-fetcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	wide   = strings.Repeat("=", 70)
	thin   = strings.Repeat("-", 70)
	record = strings.Repeat("-", 24)
)

func records(t *testing.T, raw string) []models.Record {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var out []models.Record
	require.NoError(t, dec.Decode(&out))
	return out
}

func newTestApp(t *testing.T, cfg *config.StructuredConfig) (*App, *mock.MockRecordFetcher, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockRecordFetcher(ctrl)
	var out bytes.Buffer

	a, err := NewApp(cfg, fetcher, console.New(&out), logger.Nop())
	require.NoError(t, err)
	return a, fetcher, &out
}

func TestNewApp_UnknownProfile(t *testing.T) {
	cfg := config.Defaults()
	cfg.App.Profile = "github"

	a, err := NewApp(cfg, mock.NewMockRecordFetcher(gomock.NewController(t)), nil, nil)

	assert.Nil(t, a)
	assert.ErrorIs(t, err, profile.ErrInvalidConfiguration)
}

func TestRun_DefaultReport(t *testing.T) {
	a, fetcher, out := newTestApp(t, config.Defaults())
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(records(t, `[
		{"name":"Leanne Graham","username":"Bret","email":"a@b.com","address":{"city":"Gwenborough"}},
		{"name":"Patricia Lebsack","username":"Karianne","email":"p@k.org","address":{"city":"South Elvis"}}
	]`), nil)

	require.NoError(t, a.Run(context.Background()))

	want := strings.Join([]string{
		wide,
		"PUBLIC API DATA FETCHER",
		wide,
		"",
		"Available APIs:",
		"1. JSONPlaceholder Users API (Default)",
		"2. Random User Generator API",
		"3. CoinGecko Cryptocurrency API",
		wide,
		"",
		"",
		wide,
		"OPTION 1: JSONPLACEHOLDER USERS API",
		wide,
		"Fetching data from JSONPlaceholder Users API...",
		"URL: https://jsonplaceholder.typicode.com/users",
		"",
		"✓ Successfully fetched 2 records.",
		"",
		"DISPLAYING ALL USERS:",
		thin,
		"User 1:",
		"Name: Leanne Graham",
		"Username: Bret",
		"Email: a@b.com",
		"City: Gwenborough",
		record,
		"User 2:",
		"Name: Patricia Lebsack",
		"Username: Karianne",
		"Email: p@k.org",
		"City: South Elvis",
		record,
		"",
		wide,
		"BONUS: USERS FROM CITIES STARTING WITH 'S'",
		wide,
		"User 2:",
		"Name: Patricia Lebsack",
		"Username: Karianne",
		"Email: p@k.org",
		"City: South Elvis",
		record,
		"",
		wide,
		"Total records processed: 2",
		wide,
		"",
	}, "\n")

	assert.Equal(t, want, out.String())
}

func TestRun_FailedFetchStopsReport(t *testing.T) {
	a, fetcher, out := newTestApp(t, config.Defaults())
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, &adapter.StatusError{
		StatusCode: 500,
		Status:     "500 Internal Server Error",
		URL:        "https://jsonplaceholder.typicode.com/users",
	})

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "  Status Code: 500\n")
	assert.NotContains(t, out.String(), "DISPLAYING ALL")
	assert.NotContains(t, out.String(), "Total records processed")
}

func TestRun_ConfiguredProfileAndLimit(t *testing.T) {
	cfg := config.Defaults()
	cfg.App.Profile = profile.CoinGeckoID
	cfg.Display.Limit = 1

	a, fetcher, out := newTestApp(t, cfg)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Profile) ([]models.Record, error) {
			assert.Equal(t, profile.CoinGeckoID, p.ID)
			return records(t, `[
				{"name":"Bitcoin","symbol":"btc","current_price":43250.5,"market_cap":850000000},
				{"name":"Ethereum","symbol":"eth","current_price":2250,"market_cap":270000000000}
			]`), nil
		},
	)

	require.NoError(t, a.Run(context.Background()))

	report := out.String()
	assert.Contains(t, report, "3. CoinGecko Cryptocurrency API (Default)\n")
	assert.Contains(t, report, "1. JSONPlaceholder Users API\n")
	assert.Contains(t, report, "OPTION 3: COINGECKO CRYPTOCURRENCY API\n")
	assert.Contains(t, report, "DISPLAYING ALL CRYPTOS:\n")
	assert.Contains(t, report, "Crypto 1:\n")
	assert.NotContains(t, report, "Crypto 2:")
	assert.NotContains(t, report, "BONUS", "profiles without a city skip the city listing")
	assert.Contains(t, report, "Total records processed: 2\n")
}

func TestRun_CityPrefix(t *testing.T) {
	cfg := config.Defaults()
	cfg.Display.CityPrefix = "G"

	a, fetcher, out := newTestApp(t, cfg)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(records(t, `[
		{"name":"Leanne Graham","address":{"city":"Gwenborough"}},
		{"name":"Patricia Lebsack","address":{"city":"South Elvis"}}
	]`), nil)

	require.NoError(t, a.Run(context.Background()))

	bonus := out.String()[strings.Index(out.String(), "BONUS"):]
	assert.True(t, strings.HasPrefix(bonus, "BONUS: USERS FROM CITIES STARTING WITH 'G'\n"))
	assert.Contains(t, bonus, "Name: Leanne Graham")
	assert.NotContains(t, bonus, "Name: Patricia Lebsack")
}

func TestRun_CancelledContext(t *testing.T) {
	a, _, out := newTestApp(t, config.Defaults())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, a.Run(ctx), context.Canceled)
	assert.Empty(t, out.String())
}

func TestPluralLabel(t *testing.T) {
	assert.Equal(t, "USERS", pluralLabel("User"))
	assert.Equal(t, "CRYPTOS", pluralLabel("Crypto"))
	assert.Equal(t, "RECORDS", pluralLabel(""))
}
