// Package agenda drives the collections with settlement records: a registry
// keyed by name and a priority queue ordered by a selectable comparator.
package agenda

import (
	"github.com/sirupsen/logrus"

	aio "github.com/neganovalexey/agenda/io"
	"github.com/neganovalexey/agenda/municipality"
)

const defaultExpectedItems = 1024

// Config is configuration shared by Registry and PriorityQueue
type Config struct {
	// Storage holds record files, required by Import/Load/Export only
	Storage aio.Storage

	// Order names the priority queue comparator ("total" or "name")
	Order string

	// ExpectedItems sizes the registry name filter
	ExpectedItems int

	// Seed for the random record generator
	Seed int64

	Log *logrus.Logger
}

func (cfg *Config) setDefaults() {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	if cfg.ExpectedItems <= 0 {
		cfg.ExpectedItems = defaultExpectedItems
	}
	if cfg.Order == "" {
		cfg.Order = municipality.OrderTotal
	}
}

// ImportResult reports the outcome of a successful or partial import
type ImportResult struct {
	Count int
}

// ExportResult reports number of written records
type ExportResult struct {
	Count int
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
