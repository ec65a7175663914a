package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors [StructuredConfig] for JSON and TOML config files.
type fileConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		BasePath       string   `json:"base_path" toml:"base_path"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter" toml:"adapter"`

	Log struct {
		File  string `json:"file" toml:"file"`
		Level string `json:"level" toml:"level"`
	} `json:"log" toml:"log"`
}

// parseFile reads a config file; files with a ".toml" extension are decoded
// as TOML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	var fileCfg fileConfig

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error reading a json file: %w", err)
		}
		defer f.Close()

		if err = json.NewDecoder(f).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			BasePath:       fileCfg.Adapter.BasePath,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Log: Log{
			File:  fileCfg.Log.File,
			Level: fileCfg.Log.Level,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML files. JSON numbers are read as
// nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
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
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler; TOML strings use it.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
