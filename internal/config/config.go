// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// case-sync application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON or TOML file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Sync holds the scheduler settings: policy, timers and retry budget.
	Sync Sync `envPrefix:"SYNC_"`

	// Backup holds the snapshot interval and retention count.
	Backup Backup `envPrefix:"BACKUP_"`

	// Remote selects and configures the remote gateway.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the local database and mirror file locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the local control API address.
	Server Server `envPrefix:"SERVER_"`

	// Log holds the log file location and level.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or TOML configuration
	// file. Populated via the CONFIG environment variable or the -c / --config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Sync configures the sync scheduler.
type Sync struct {
	// Policy is one of "local-wins", "remote-wins" or "merge".
	// Env: SYNC_POLICY
	Policy string `env:"POLICY"`

	// Interval is the period of the timer trigger.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// Debounce is the quiet period after the latest local edit before a sync
	// is triggered.
	// Env: SYNC_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// RetryLimit bounds the re-pull/merge/push loop after a push conflict.
	// Env: SYNC_RETRY_LIMIT
	RetryLimit int `env:"RETRY_LIMIT"`

	// CycleTimeout caps a whole cycle so that lost connectivity fails fast.
	// Env: SYNC_CYCLE_TIMEOUT
	CycleTimeout time.Duration `env:"CYCLE_TIMEOUT"`

	// ProbeInterval is how often remote reachability is checked.
	// Env: SYNC_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// InitialDelay is the delay before the first cycle after start.
	// Env: SYNC_INITIAL_DELAY
	InitialDelay time.Duration `env:"INITIAL_DELAY"`
}

// Backup configures the backup rotator.
type Backup struct {
	// Interval is the snapshot period.
	// Env: BACKUP_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// Retain is the number of snapshots kept after rotation.
	// Env: BACKUP_RETAIN
	Retain int `env:"RETAIN"`
}

// Remote selects the remote gateway implementation.
type Remote struct {
	// Kind is "git" or "http".
	// Env: REMOTE_KIND
	Kind string `env:"KIND"`

	// RepoDir is the working tree of the git repository holding the record.
	// Env: REMOTE_REPO_DIR
	RepoDir string `env:"REPO_DIR"`

	// Name is the git remote name (e.g. "origin").
	// Env: REMOTE_NAME
	Name string `env:"NAME"`

	// Branch is the remote branch the record lives on.
	// Env: REMOTE_BRANCH
	Branch string `env:"BRANCH"`

	// RecordPath is the record file path inside the repository or file store.
	// Env: REMOTE_RECORD_PATH
	RecordPath string `env:"RECORD_PATH"`

	// InfoPath is the path of the published sync info document.
	// Env: REMOTE_INFO_PATH
	InfoPath string `env:"INFO_PATH"`

	// Address is the base URL of the HTTP file store.
	// Env: REMOTE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the per-request timeout of remote calls.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DSN is the SQLite database file.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DB_DSN"`

	// MirrorFile is the JSON file the record is mirrored to and imported from.
	// Env: STORAGE_MIRROR_FILE
	MirrorFile string `env:"MIRROR_FILE"`

	// LockFile guards against two processes syncing the same store.
	// Env: STORAGE_LOCK_FILE
	LockFile string `env:"LOCK_FILE"`
}

// Server holds the local control API settings.
type Server struct {
	// HTTPAddress is the "host:port" the control API listens on. Empty
	// disables the API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Log holds logging settings.
type Log struct {
	// File is the rotating log file. Empty logs to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// For every field the first source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags registered by [RegisterFlags] on fs
//  3. JSON or TOML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withFile().
		withDefaults().
		build()
}
