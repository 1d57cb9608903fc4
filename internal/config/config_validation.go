// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The profile identifier is only checked for presence here; resolving it
// against the registry happens when the fetch session is constructed.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.Profile) == "" {
		return fmt.Errorf("%w: empty profile", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive, got %s",
			ErrInvalidAdapterConfigs, cfg.Adapter.RequestTimeout)
	}

	if cfg.Display.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d",
			ErrInvalidDisplayConfigs, cfg.Display.Limit)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
