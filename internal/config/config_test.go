package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_MissingFile(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "config.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfigFrom_FileAndEnv(t *testing.T) {
	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "data_file: ~/verbs.csv\nstrict: true\nseed: 12\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Setenv("IRVERBS_SEED", "99")
	t.Setenv("IRVERBS_ANSWER_MAX_LEN", "10")

	// --- Act ---
	cfg, err := LoadConfigFrom(path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, Config{
		DataFile:     "~/verbs.csv",
		Strict:       true,
		Seed:         99,
		AnswerMaxLen: 10,
		LogLevel:     "debug",
	}, cfg)
}

func TestLoadConfigFrom_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [not a number\n"), 0600))

	_, err := LoadConfigFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfigFrom_BadEnv(t *testing.T) {
	t.Setenv("IRVERBS_STRICT", "maybe")

	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "config.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment overrides")
}

func TestUpdateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv("IRVERBS_LOG_LEVEL", "error")

	cfg, err := UpdateConfigFile(path, func(c *Config) { c.DataFile = "/tmp/verbs.csv" })
	require.NoError(t, err)
	assert.Equal(t, "/tmp/verbs.csv", cfg.DataFile)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data_file: /tmp/verbs.csv\n", string(data), "env overrides are not saved")

	cfg, err = UpdateConfigFile(path, func(c *Config) { c.Strict = true })
	require.NoError(t, err)
	assert.Equal(t, Config{DataFile: "/tmp/verbs.csv", Strict: true}, cfg)
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("~/verbs.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "verbs.csv"), got)

	got, err = ResolvePath("data/verbs.csv")
	require.NoError(t, err)
	assert.Equal(t, "data/verbs.csv", got)
}
