package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig is the on-disk layout shared by the JSON and TOML formats.
type fileConfig struct {
	Sync struct {
		Policy        string   `json:"policy" toml:"policy"`
		Interval      Duration `json:"interval" toml:"interval"`
		Debounce      Duration `json:"debounce" toml:"debounce"`
		RetryLimit    int      `json:"retry_limit" toml:"retry_limit"`
		CycleTimeout  Duration `json:"cycle_timeout" toml:"cycle_timeout"`
		ProbeInterval Duration `json:"probe_interval" toml:"probe_interval"`
		InitialDelay  Duration `json:"initial_delay" toml:"initial_delay"`
	} `json:"sync" toml:"sync"`

	Backup struct {
		Interval Duration `json:"interval" toml:"interval"`
		Retain   int      `json:"retain" toml:"retain"`
	} `json:"backup" toml:"backup"`

	Remote struct {
		Kind           string   `json:"kind" toml:"kind"`
		RepoDir        string   `json:"repo_dir" toml:"repo_dir"`
		Name           string   `json:"name" toml:"name"`
		Branch         string   `json:"branch" toml:"branch"`
		RecordPath     string   `json:"record_path" toml:"record_path"`
		InfoPath       string   `json:"info_path" toml:"info_path"`
		Address        string   `json:"address" toml:"address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"remote" toml:"remote"`

	Storage struct {
		DSN        string `json:"dsn" toml:"dsn"`
		MirrorFile string `json:"mirror_file" toml:"mirror_file"`
		LockFile   string `json:"lock_file" toml:"lock_file"`
	} `json:"storage" toml:"storage"`

	Server struct {
		HTTPAddress string `json:"http_address" toml:"http_address"`
	} `json:"server" toml:"server"`

	Log struct {
		File  string `json:"file" toml:"file"`
		Level string `json:"level" toml:"level"`
	} `json:"log" toml:"log"`
}

// parseFile reads a config file. Files ending in ".toml" are decoded as
// TOML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(path)
	}
	return parseJSON(path)
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fc fileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fc.structured(), nil
}

func parseTOML(tomlFilePath string) (*StructuredConfig, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(tomlFilePath, &fc); err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	return fc.structured(), nil
}

func (fc fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		Sync: Sync{
			Policy:        fc.Sync.Policy,
			Interval:      fc.Sync.Interval.Std(),
			Debounce:      fc.Sync.Debounce.Std(),
			RetryLimit:    fc.Sync.RetryLimit,
			CycleTimeout:  fc.Sync.CycleTimeout.Std(),
			ProbeInterval: fc.Sync.ProbeInterval.Std(),
			InitialDelay:  fc.Sync.InitialDelay.Std(),
		},
		Backup: Backup{
			Interval: fc.Backup.Interval.Std(),
			Retain:   fc.Backup.Retain,
		},
		Remote: Remote{
			Kind:           fc.Remote.Kind,
			RepoDir:        fc.Remote.RepoDir,
			Name:           fc.Remote.Name,
			Branch:         fc.Remote.Branch,
			RecordPath:     fc.Remote.RecordPath,
			InfoPath:       fc.Remote.InfoPath,
			Address:        fc.Remote.Address,
			RequestTimeout: fc.Remote.RequestTimeout.Std(),
		},
		Storage: Storage{
			DSN:        fc.Storage.DSN,
			MirrorFile: fc.Storage.MirrorFile,
			LockFile:   fc.Storage.LockFile,
		},
		Server: Server{HTTPAddress: fc.Server.HTTPAddress},
		Log:    Log{File: fc.Log.File, Level: fc.Log.Level},
	}
}

// Duration is a wrapper around time.Duration that supports decoding from
// strings like "1h" or "30s" in both JSON and TOML.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler, used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
