// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

package config

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"cryptobase/defErr"

	"gopkg.in/yaml.v3"
)

type (
	Logging struct {
		Level       string `yaml:"Level"`
		Development bool   `yaml:"Development"`
	}
	SpeedTest struct {
		Algorithms []string `yaml:"Algorithms"`
		BufferSize int      `yaml:"BufferSize"`
		Duration   string   `yaml:"Duration"`
	}
	Boundary struct {
		// log every contract violation seen at the foreign boundary.
		LogMisuse bool `yaml:"LogMisuse"`
	}
	DigestConfig struct {
		Logging   Logging   `yaml:"Logging"`
		SpeedTest SpeedTest `yaml:"SpeedTest"`
		Boundary  Boundary  `yaml:"Boundary"`
	}
)

var (
	safe_read_digest          sync.RWMutex
	globalDigestConfiguration = DefaultDigestConfig()
	logLevels                 = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

func DefaultDigestConfig() *DigestConfig {
	return &DigestConfig{
		Logging: Logging{Level: "info"},
		SpeedTest: SpeedTest{
			Algorithms: []string{"md5", "sha1", "sha224", "sha256", "sha384", "sha512", "sm3"},
			BufferSize: 8192,
			Duration:   "1s",
		},
		Boundary: Boundary{LogMisuse: true},
	}
}

// ParseDigestYAML reads path over the defaults, so a file only needs the
// keys it changes.
func ParseDigestYAML(path string) (*DigestConfig, error) {
	cfg_data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res := DefaultDigestConfig()
	if err = yaml.Unmarshal(cfg_data, res); err != nil {
		return nil, defErr.DescribeThenConcat(`parse `+path, err)
	}
	if err = res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// LoadDigestYAML parses path and installs it as the global configuration.
func LoadDigestYAML(path string) (*DigestConfig, error) {
	res, err := ParseDigestYAML(path)
	if err != nil {
		return nil, err
	}
	safe_read_digest.Lock()
	defer safe_read_digest.Unlock()
	globalDigestConfiguration = res
	return res, nil
}

func Global() *DigestConfig {
	safe_read_digest.RLock()
	defer safe_read_digest.RUnlock()
	return globalDigestConfiguration
}

// Validate reports every problem found, not only the first one.
func (c *DigestConfig) Validate() error {
	var err error
	if !logLevels[c.Logging.Level] {
		err = defErr.PushErrorToErrChain(err, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}
	if c.SpeedTest.BufferSize <= 0 {
		err = defErr.PushErrorToErrChain(err, fmt.Errorf("buffer size %d must be positive", c.SpeedTest.BufferSize))
	}
	if _, derr := c.SpeedDuration(); derr != nil {
		err = defErr.PushErrorToErrChain(err, derr)
	}
	if len(c.SpeedTest.Algorithms) == 0 {
		err = defErr.PushErrorToErrChain(err, errors.New(`no algorithms to test`))
	}
	return err
}

func (c *DigestConfig) SpeedDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.SpeedTest.Duration)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %s must be positive", d)
	}
	return d, nil
}
