// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Semenov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ProcessTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
