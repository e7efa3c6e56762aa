// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] is usable.
//
// Empty client settings are not an error: they are defaulted when the
// client is configured. Only values that cannot be defaulted are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Client.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidClientConfigs, cfg.Client.RequestTimeout)
	}

	if cfg.Sandbox.Address != "" {
		var addr NetAddress
		if err := addr.Set(cfg.Sandbox.Address); err != nil {
			return fmt.Errorf("%w: address %q: %w", ErrInvalidSandboxConfigs, cfg.Sandbox.Address, err)
		}
	}

	return nil
}
