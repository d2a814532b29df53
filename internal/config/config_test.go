package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := GetConfigDir
	GetConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { GetConfigDir = prev })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := withConfigDir(t)
	v := viper.New()
	SetDefaults(v)
	require.NoError(t, ReadFile(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "arc.db"), cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.UI.Enabled)
	assert.Equal(t, 0, cfg.UI.PageSize)
}

func TestLoad_File(t *testing.T) {
	dir := withConfigDir(t)
	content := "database:\n  path: /tmp/elsewhere.db\nlog:\n  level: DEBUG\nui:\n  enabled: false\n  page_size: 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	v := viper.New()
	SetDefaults(v)
	require.NoError(t, ReadFile(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.UI.Enabled)
	assert.Equal(t, 7, cfg.UI.PageSize)
}

func TestLoad_Env(t *testing.T) {
	withConfigDir(t)
	t.Setenv("ARC_LOG_LEVEL", "info")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestReadFile_ExplicitMissing(t *testing.T) {
	withConfigDir(t)
	v := viper.New()
	err := ReadFile(v, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	withConfigDir(t)

	v := viper.New()
	SetDefaults(v)
	v.Set("log.level", "loud")
	_, err := Load(v)
	assert.ErrorContains(t, err, "invalid config")

	v = viper.New()
	SetDefaults(v)
	v.Set("ui.page_size", -1)
	_, err = Load(v)
	assert.ErrorContains(t, err, "invalid config")

	v = viper.New()
	SetDefaults(v)
	v.Set("database.path", "")
	_, err = Load(v)
	assert.Error(t, err)
}
