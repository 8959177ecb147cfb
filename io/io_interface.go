// Package io stores record files for import and export.
package io

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Config describes underlying storage
type Config struct {
	// Base directory
	Root string

	Ctx context.Context
	Log *logrus.Logger
}

// New creates storage based on given config
func New(cfg Config) (Storage, error) {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}
	return NewFSObjStorage(cfg)
}
