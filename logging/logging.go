// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

// Package logging holds the process-wide zap logger.
package logging

import (
	"sync"

	"cryptobase/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// New builds a logger from cfg without installing it.
func New(cfg config.Logging) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

// Configure replaces the global logger. The previous one is synced.
func Configure(cfg config.Logging) error {
	logger, err := New(cfg)
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}

func SetLogger(logger *zap.Logger) {
	mu.Lock()
	prev := global
	global = logger
	mu.Unlock()
	_ = prev.Sync()
}

// L returns the global logger. It is a no-op logger until configured.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
