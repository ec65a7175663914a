package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a backend address, host:port or URL
//	-base-path relative path of the todos resource
//	-request-timeout request timeout (e.g., "30s"); 0 disables it
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-c/-config JSON or TOML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		address        string
		basePath       string
		requestTimeout time.Duration
		logFile        string
		logLevel       string
		configPath     string
	)

	fs := flag.NewFlagSet("todo-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Backend address host:port or URL")
	fs.StringVar(&basePath, "base-path", "", "Relative path of the todos resource")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s); 0 disables it")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&configPath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or TOML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    address,
			BasePath:       basePath,
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		ConfigFilePath: configPath,
	}, nil
}
