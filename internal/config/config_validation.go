// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidAdapterConfigs)
	}
	if strings.Trim(strings.TrimSpace(cfg.Adapter.BasePath), "/") == "" {
		return fmt.Errorf("%w: empty base path", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if strings.TrimSpace(cfg.Log.File) == "" {
		return fmt.Errorf("%w: empty log file", ErrInvalidLogConfigs)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}
