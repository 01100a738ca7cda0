// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package ffi

import (
	"os"

	"cryptobase/config"
	"cryptobase/logging"
)

// ConfigEnv names the YAML file a loaded library reads at start-up.
const ConfigEnv = "CRYPTOBASE_CONFIG"

// Configure applies cfg to the logger and to the Default table.
func Configure(cfg *config.DigestConfig) error {
	if err := logging.Configure(cfg.Logging); err != nil {
		return err
	}
	Default.SetLogMisuse(cfg.Boundary.LogMisuse)
	return nil
}

// ConfigureFromEnv is a no-op when ConfigEnv is unset.
func ConfigureFromEnv() error {
	path := os.Getenv(ConfigEnv)
	if path == "" {
		return nil
	}
	if _, err := config.LoadDigestYAML(path); err != nil {
		return err
	}
	return Configure(config.Global())
}
