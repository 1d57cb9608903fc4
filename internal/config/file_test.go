package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseFile_JSON(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{
		"app": {"profile": "randomuser"},
		"log": {"level": "warn", "file": "/tmp/f.log"},
		"adapter": {"request_timeout": "30s", "user_agent": "json-agent"},
		"display": {"limit": 7, "city_prefix": "Ne"}
	}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "randomuser", cfg.App.Profile)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/f.log", cfg.Log.File)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "json-agent", cfg.Adapter.UserAgent)
	assert.Equal(t, 7, cfg.Display.Limit)
	assert.Equal(t, "Ne", cfg.Display.CityPrefix)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	body := `
app:
  profile: coingecko
adapter:
  request_timeout: 2m
display:
  limit: 3
`
	for _, name := range []string{"config.yaml", "config.yml", "CONFIG.YAML"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := parseFile(writeConfigFile(t, name, body))
			require.NoError(t, err)

			assert.Equal(t, "coingecko", cfg.App.Profile)
			assert.Equal(t, 2*time.Minute, cfg.Adapter.RequestTimeout)
			assert.Equal(t, 3, cfg.Display.Limit)
		})
	}
}

func TestParseFile_JSONNumericDuration(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{"adapter": {"request_timeout": 1000000000}}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{name: "malformed json", file: "bad.json", body: "{not valid json"},
		{name: "malformed yaml", file: "bad.yaml", body: "app: [unclosed"},
		{name: "bad json duration", file: "dur.json", body: `{"adapter": {"request_timeout": "soon"}}`},
		{name: "bad yaml duration", file: "dur.yaml", body: "adapter:\n  request_timeout: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile(writeConfigFile(t, tt.file, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a config file")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
