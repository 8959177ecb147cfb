package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/neganovalexey/agenda/codeerrors"
)

const testConfig = `
data_dir: /var/lib/agenda
import_file: kraje.csv
order: name
log_level: debug
seed: 42
gops: true
`

func TestFromReader(t *testing.T) {
	cfg, err := FromReader("test.yaml", strings.NewReader(testConfig))
	require.NoError(t, err)
	require.Equal(t, "/var/lib/agenda", cfg.DataDir)
	require.Equal(t, "kraje.csv", cfg.ImportFile)
	require.Equal(t, "", cfg.ExportFile)
	require.Equal(t, "name", cfg.Order)
	require.Equal(t, logrus.DebugLevel, cfg.Level())
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, 1024, cfg.ExpectedItems)
	require.True(t, cfg.Gops)
}

func TestFromReaderEmpty(t *testing.T) {
	cfg, err := FromReader("empty.yaml", strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestFromReaderInvalid(t *testing.T) {
	_, err := FromReader("bad.yaml", strings.NewReader("seed: [1, 2"))
	require.Error(t, err)

	_, err = FromReader("order.yaml", strings.NewReader("order: area"))
	require.True(t, errors.Is(err, codeerrors.ErrInvalidState))

	_, err = FromReader("level.yaml", strings.NewReader("log_level: loud"))
	require.True(t, errors.Is(err, codeerrors.ErrInvalidState))
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"AGENDA_ORDER":          "name",
		"AGENDA_EXPORT_FILE":    "out.csv",
		"AGENDA_SEED":           "7",
		"AGENDA_EXPECTED_ITEMS": "10",
		"AGENDA_GOPS":           "true",
		"ORDER":                 "ignored",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	require.Equal(t, "name", cfg.Order)
	require.Equal(t, "out.csv", cfg.ExportFile)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, 10, cfg.ExpectedItems)
	require.True(t, cfg.Gops)
	require.Equal(t, ".", cfg.DataDir)

	env["AGENDA_SEED"] = "seven"
	require.Error(t, cfg.ApplyEnv(lookup))
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "agenda-config-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "agenda.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(testConfig), 0600))

	t.Setenv("AGENDA_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "name", cfg.Order)
	require.Equal(t, logrus.WarnLevel, cfg.Level())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
