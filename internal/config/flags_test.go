package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "empty host",
			input:        ":8090",
			expectedAddr: NetAddress{Host: "", Port: 8090},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range",
		},
		{
			name:        "port too large",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr, *addr)
			}
		})
	}
}

func TestFlagsConfig_AllFlags(t *testing.T) {
	fs := newTestFlagSet(t,
		"-c", "/etc/casesync.json",
		"--policy", "local-wins",
		"--sync-interval", "1m",
		"--debounce", "5s",
		"--retry-limit", "3",
		"--cycle-timeout", "20s",
		"--probe-interval", "2s",
		"--backup-interval", "30m",
		"--backup-retain", "7",
		"--remote", "git",
		"--repo", "/srv/case",
		"--remote-name", "origin",
		"--branch", "main",
		"--record-path", "case-data.json",
		"--remote-address", "http://files.local",
		"--request-timeout", "4s",
		"-d", "case.db",
		"--mirror-file", "case.json",
		"-a", "127.0.0.1:8090",
		"--log-file", "sync.log",
		"--log-level", "debug",
	)

	cfg, err := flagsConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "/etc/casesync.json", cfg.ConfigFilePath)
	assert.Equal(t, "local-wins", cfg.Sync.Policy)
	assert.Equal(t, time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 5*time.Second, cfg.Sync.Debounce)
	assert.Equal(t, 3, cfg.Sync.RetryLimit)
	assert.Equal(t, 20*time.Second, cfg.Sync.CycleTimeout)
	assert.Equal(t, 2*time.Second, cfg.Sync.ProbeInterval)
	assert.Equal(t, 30*time.Minute, cfg.Backup.Interval)
	assert.Equal(t, 7, cfg.Backup.Retain)
	assert.Equal(t, "git", cfg.Remote.Kind)
	assert.Equal(t, "/srv/case", cfg.Remote.RepoDir)
	assert.Equal(t, "http://files.local", cfg.Remote.Address)
	assert.Equal(t, 4*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "case.db", cfg.Storage.DSN)
	assert.Equal(t, "case.json", cfg.Storage.MirrorFile)
	assert.Equal(t, "127.0.0.1:8090", cfg.Server.HTTPAddress)
	assert.Equal(t, "sync.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestFlagsConfig_UnsetFlagsStayZero(t *testing.T) {
	fs := newTestFlagSet(t)

	cfg, err := flagsConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestFlagsConfig_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)

	_, err := flagsConfig(fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading flags")
}

func TestRegisterFlags_InvalidAddressRejected(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	err := fs.Parse([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}
