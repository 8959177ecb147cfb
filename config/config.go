// Package config loads agenda settings from a YAML file, a .env file and
// AGENDA_* environment variables, in that order of precedence (last wins).
package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/municipality"
)

// EnvPrefix starts names of environment overrides
const EnvPrefix = "AGENDA_"

// Config holds settings of the agenda command
type Config struct {
	// DataDir is the storage root for record files
	DataDir string `yaml:"data_dir"`
	// ImportFile is imported into the registry at startup when set
	ImportFile string `yaml:"import_file"`
	// ExportFile receives the drained priority queue when set
	ExportFile string `yaml:"export_file"`
	// Order is "total" or "name"
	Order string `yaml:"order"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	Seed          int64 `yaml:"seed"`
	ExpectedItems int   `yaml:"expected_items"`

	// Gops starts the diagnostics agent
	Gops bool `yaml:"gops"`
}

// Default returns config used when nothing else is given
func Default() *Config {
	return &Config{
		DataDir:       ".",
		Order:         municipality.OrderTotal,
		LogLevel:      logrus.InfoLevel.String(),
		Seed:          1,
		ExpectedItems: 1024,
	}
}

// FromReader decodes YAML config, name is used in error messages only
func FromReader(name string, r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "decode config %s", name)
	}
	return cfg, cfg.Validate()
}

// Load reads YAML config file (defaults when path is empty), then applies
// variables from the .env file in the working directory and the process environment
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open config")
		}
		cfg, err = FromReader(path, f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrap(err, "load .env")
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from AGENDA_* variables returned by lookup
func (cfg *Config) ApplyEnv(lookup func(key string) (string, bool)) error {
	strs := map[string]*string{
		"DATA_DIR":    &cfg.DataDir,
		"IMPORT_FILE": &cfg.ImportFile,
		"EXPORT_FILE": &cfg.ExportFile,
		"ORDER":       &cfg.Order,
		"LOG_LEVEL":   &cfg.LogLevel,
		"LOG_FILE":    &cfg.LogFile,
	}
	for key, field := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*field = v
		}
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%sSEED", EnvPrefix)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(EnvPrefix + "EXPECTED_ITEMS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "%sEXPECTED_ITEMS", EnvPrefix)
		}
		cfg.ExpectedItems = n
	}
	if v, ok := lookup(EnvPrefix + "GOPS"); ok {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "%sGOPS", EnvPrefix)
		}
		cfg.Gops = on
	}
	return nil
}

// Validate checks ordering and log level names
func (cfg *Config) Validate() error {
	if _, err := municipality.ComparatorByName(cfg.Order); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return codeerrors.ErrInvalidState.WithMessage("unknown log level %q", cfg.LogLevel).WithReason(err)
	}
	if cfg.ExpectedItems < 0 {
		return codeerrors.ErrInvalidState.WithMessage("negative expected items %d", cfg.ExpectedItems)
	}
	return nil
}

// Level returns parsed log level, Validate must pass first
func (cfg *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
