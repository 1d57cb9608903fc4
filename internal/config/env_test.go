// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_PROFILE": "coingecko",

		"LOG_LEVEL": "debug",
		"LOG_FILE":  "/var/log/fetcher.log",

		"ADAPTER_REQUEST_TIMEOUT": "20s",
		"ADAPTER_USER_AGENT":      "agent/3",

		"DISPLAY_LIMIT":       "4",
		"DISPLAY_CITY_PREFIX": "Lo",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)
	assert.Equal(t, "coingecko", cfg.App.Profile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/fetcher.log", cfg.Log.File)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "agent/3", cfg.Adapter.UserAgent)
	assert.Equal(t, 4, cfg.Display.Limit)
	assert.Equal(t, "Lo", cfg.Display.CityPrefix)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("APP_PROFILE", "randomuser")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "randomuser", cfg.App.Profile)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Display.CityPrefix)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "fifteen")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
