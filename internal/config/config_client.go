package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend address used by the client.
	HTTPAddress string
	// BasePath is the relative path of the todos resource.
	BasePath string
	// RequestTimeout is the timeout for outbound requests; zero disables it.
	RequestTimeout time.Duration
}

// ClientLog holds the client logging settings.
type ClientLog struct {
	// File is the path the client appends log entries to.
	File string
	// Level is the zerolog level name.
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains backend address and request settings.
	Adapter ClientAdapter
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			BasePath:       cfg.Adapter.BasePath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}
}
