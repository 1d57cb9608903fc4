package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of a configuration file. The
// same keys are accepted in JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		Profile string `json:"profile" yaml:"profile"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Log struct {
		Level string `json:"level" yaml:"level"`
		File  string `json:"file" yaml:"file"`
	} `json:"log,omitempty" yaml:"log,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		UserAgent      string   `json:"user_agent" yaml:"user_agent"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Display struct {
		Limit      int    `json:"limit" yaml:"limit"`
		CityPrefix string `json:"city_prefix" yaml:"city_prefix"`
	} `json:"display,omitempty" yaml:"display,omitempty"`
}

// parseFile reads a configuration file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		App: App{
			Profile: fileCfg.App.Profile,
		},
		Log: Log{
			Level: fileCfg.Log.Level,
			File:  fileCfg.Log.File,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
			UserAgent:      fileCfg.Adapter.UserAgent,
		},
		Display: Display{
			Limit:      fileCfg.Display.Limit,
			CityPrefix: fileCfg.Display.CityPrefix,
		},
		ConfigFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" in both JSON and YAML. Bare numbers are read as
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if tmp, err := time.ParseDuration(raw); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var ns int64
	if err := value.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", raw)
	}
	*d = Duration(time.Duration(ns))
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
