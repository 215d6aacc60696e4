package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"sync": {
			"policy": "remote-wins",
			"interval": "2m",
			"debounce": "15s",
			"retry_limit": 2
		},
		"backup": { "interval": "10m", "retain": 5 },
		"remote": {
			"kind": "http",
			"address": "http://files.local",
			"record_path": "case-data.json",
			"request_timeout": "5s"
		},
		"storage": { "dsn": "case.db", "mirror_file": "case.json" },
		"server": { "http_address": "localhost:8090" },
		"log": { "level": "warn" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "remote-wins", cfg.Sync.Policy)
	assert.Equal(t, 2*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 15*time.Second, cfg.Sync.Debounce)
	assert.Equal(t, 2, cfg.Sync.RetryLimit)
	assert.Equal(t, 10*time.Minute, cfg.Backup.Interval)
	assert.Equal(t, 5, cfg.Backup.Retain)
	assert.Equal(t, "http", cfg.Remote.Kind)
	assert.Equal(t, "http://files.local", cfg.Remote.Address)
	assert.Equal(t, 5*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "case.db", cfg.Storage.DSN)
	assert.Equal(t, "localhost:8090", cfg.Server.HTTPAddress)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseJSON_NumericDurationIsNanoseconds(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"sync":{"debounce":1000000000}}`), 0o600))

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Sync.Debounce)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"sync": `), 0o600))

	_, err := parseFile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"sync":{"interval":"soon"}}`), 0o600))

	_, err := parseFile(p)
	assert.Error(t, err)
}

func TestParseTOML_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "casesync.toml")
	body := `
[sync]
policy = "local-wins"
interval = "90s"
debounce = "20s"

[backup]
retain = 12

[remote]
kind = "git"
repo_dir = "/srv/case"
branch = "records"
`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	cfg, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, "local-wins", cfg.Sync.Policy)
	assert.Equal(t, 90*time.Second, cfg.Sync.Interval)
	assert.Equal(t, 20*time.Second, cfg.Sync.Debounce)
	assert.Equal(t, 12, cfg.Backup.Retain)
	assert.Equal(t, "/srv/case", cfg.Remote.RepoDir)
	assert.Equal(t, "records", cfg.Remote.Branch)
}

func TestParseTOML_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "casesync.toml")
	require.NoError(t, os.WriteFile(p, []byte("[sync\npolicy ="), 0o600))

	_, err := parseFile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding toml configs")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
