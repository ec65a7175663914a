// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the client settings from environ, a list of KEY=value pairs
// as returned by os.Environ. Variable names come from the `env` and
// `envPrefix` tags of [StructuredConfig]; ADAPTER_ADDRESS, for example, sets
// the backend address. Unset variables leave their fields zero so that flags,
// the config file and defaults decide them.
func parseEnv(environ []string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, fmt.Errorf("reading todo client environment: %w", err)
	}

	return &cfg, nil
}
