package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wirepat/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wirepat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 1, cfg.Epsilon)
	require.Equal(t, "first_leaf", cfg.SourcePolicy)
	require.Contains(t, cfg.Nets, "**/*.json")
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
epsilon: 4
nets_dir: /data/nets
nets: ["top/**/*.json.gz"]
timing_graph: /data/design.yml
patterns_csv: out/patterns.csv
log_verbosity: 2
source_policy: driver_pin
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Epsilon)
	require.Equal(t, "/data/nets", cfg.NetsDir)
	require.Equal(t, []string{"top/**/*.json.gz"}, cfg.Nets)
	require.Equal(t, "/data/design.yml", cfg.TimingGraph)
	require.Equal(t, "out/patterns.csv", cfg.PatternsCSV)
	require.Equal(t, 2, cfg.LogVerbosity)
	require.Equal(t, "driver_pin", cfg.SourcePolicy)
	require.Empty(t, cfg.SequencesJSON)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "epsilon: [1\n"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "epsilon: 1\nunknown_key: 3\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		msg    string
	}{
		{"epsilon zero", func(c *config.Config) { c.Epsilon = 0 }, "epsilon: must be at least 1"},
		{"verbosity high", func(c *config.Config) { c.LogVerbosity = 9 }, "log_verbosity: must not exceed 5"},
		{"unknown policy", func(c *config.Config) { c.SourcePolicy = "random" }, "source_policy: must be one of"},
		{"empty glob", func(c *config.Config) { c.Nets = []string{""} }, "nets[0]: field is required"},
		{"bad glob", func(c *config.Config) { c.Nets = []string{"a/[b"} }, "nets[0]: bad glob pattern"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalid)
			require.Contains(t, err.Error(), tc.msg)
		})
	}

	var nilCfg *config.Config
	require.ErrorIs(t, nilCfg.Validate(), config.ErrInvalid)
}
