package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	// 只覆盖端口，其余字段走默认值
	yaml := "server:\n  http-port: \":8080\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	c, realpath, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, realpath)

	assert.Equal(t, ":8080", c.Server.HttpPort)
	assert.Equal(t, "release", c.Server.RunMode)
	assert.Equal(t, "sqlite", c.Database.Type)
	assert.Equal(t, 10, c.Database.MaxIdleConns)
	assert.Equal(t, "0 3 * * *", c.App.AssociationSweepCron)
	assert.Equal(t, "X-Trace-ID", c.Tracer.Header)
	assert.True(t, c.Tracer.Enabled)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigSaveRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  run-mode: debug\n"), 0644))

	c, _, err := LoadConfig(path)
	require.NoError(t, err)

	c.Server.HttpPort = ":7070"
	require.NoError(t, c.Save())

	c2, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", c2.Server.HttpPort)
	assert.Equal(t, "debug", c2.Server.RunMode)
}
