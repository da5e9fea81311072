// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment via the `env` and
// `envPrefix` tags of [StructuredConfig]. Variables set to an empty string
// are treated as unset.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: nonEmptyEnviron()})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func nonEmptyEnviron() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || v == "" {
			continue
		}
		vars[k] = v
	}
	return vars
}
