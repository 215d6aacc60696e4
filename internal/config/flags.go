package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flag names registered by [RegisterFlags].
const (
	flagConfig         = "config"
	flagPolicy         = "policy"
	flagSyncInterval   = "sync-interval"
	flagDebounce       = "debounce"
	flagRetryLimit     = "retry-limit"
	flagCycleTimeout   = "cycle-timeout"
	flagProbeInterval  = "probe-interval"
	flagBackupInterval = "backup-interval"
	flagBackupRetain   = "backup-retain"
	flagRemoteKind     = "remote"
	flagRepoDir        = "repo"
	flagRemoteName     = "remote-name"
	flagBranch         = "branch"
	flagRecordPath     = "record-path"
	flagRemoteAddress  = "remote-address"
	flagRequestTimeout = "request-timeout"
	flagDSN            = "db"
	flagMirrorFile     = "mirror-file"
	flagAddress        = "address"
	flagLogFile        = "log-file"
	flagLogLevel       = "log-level"
)

// RegisterFlags declares every configuration flag on fs. Defaults are left
// zero so that unset flags never shadow env or file values; the real
// defaults are applied last by the config builder.
//
// Flags:
//
//	-c/--config        JSON or TOML config file path
//	--policy           conflict policy: local-wins, remote-wins or merge
//	--sync-interval    timer trigger period (e.g. "5m")
//	--debounce         quiet period after the latest edit (e.g. "30s")
//	--retry-limit      re-pull attempts after a push conflict
//	--cycle-timeout    upper bound for one sync cycle
//	--probe-interval   remote reachability probe period
//	--backup-interval  snapshot period
//	--backup-retain    snapshots kept after rotation
//	--remote           remote gateway kind: git or http
//	--repo             git working tree holding the record
//	--remote-name      git remote name
//	--branch           remote branch
//	--record-path      record file path on the remote
//	--remote-address   HTTP file store base URL
//	--request-timeout  per-request remote timeout
//	-d/--db            SQLite database file
//	--mirror-file      JSON mirror of the local record
//	-a/--address       control API address host:port
//	--log-file         rotating log file
//	--log-level        log level
func RegisterFlags(fs *pflag.FlagSet) {
	var address NetAddress

	fs.StringP(flagConfig, "c", "", "JSON or TOML config file path")
	fs.String(flagPolicy, "", "Conflict policy: local-wins, remote-wins or merge")
	fs.Duration(flagSyncInterval, 0, "Sync interval (e.g., 5m)")
	fs.Duration(flagDebounce, 0, "Debounce window after the latest local edit (e.g., 30s)")
	fs.Int(flagRetryLimit, 0, "Push conflict retries per cycle")
	fs.Duration(flagCycleTimeout, 0, "Timeout of a single sync cycle")
	fs.Duration(flagProbeInterval, 0, "Remote reachability probe interval")
	fs.Duration(flagBackupInterval, 0, "Backup interval (e.g., 5m)")
	fs.Int(flagBackupRetain, 0, "Number of backups to retain")
	fs.String(flagRemoteKind, "", "Remote gateway kind: git or http")
	fs.String(flagRepoDir, "", "Git working tree holding the record")
	fs.String(flagRemoteName, "", "Git remote name")
	fs.String(flagBranch, "", "Remote branch")
	fs.String(flagRecordPath, "", "Record file path on the remote")
	fs.String(flagRemoteAddress, "", "HTTP file store base URL")
	fs.Duration(flagRequestTimeout, 0, "Remote request timeout (e.g., 30s)")
	fs.StringP(flagDSN, "d", "", "SQLite database file")
	fs.String(flagMirrorFile, "", "JSON mirror file of the local record")
	fs.VarP(&address, flagAddress, "a", "Control API address host:port")
	fs.String(flagLogFile, "", "Log file path")
	fs.String(flagLogLevel, "", "Log level")
}

// flagsConfig reads the values registered by [RegisterFlags] from an
// already parsed fs.
func flagsConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var errs []error
	str := func(name string) string {
		v, err := fs.GetString(name)
		errs = append(errs, err)
		return v
	}
	dur := func(name string) time.Duration {
		v, err := fs.GetDuration(name)
		errs = append(errs, err)
		return v
	}
	num := func(name string) int {
		v, err := fs.GetInt(name)
		errs = append(errs, err)
		return v
	}

	var address string
	if f := fs.Lookup(flagAddress); f != nil {
		address = f.Value.String()
	}

	cfg := &StructuredConfig{
		Sync: Sync{
			Policy:        str(flagPolicy),
			Interval:      dur(flagSyncInterval),
			Debounce:      dur(flagDebounce),
			RetryLimit:    num(flagRetryLimit),
			CycleTimeout:  dur(flagCycleTimeout),
			ProbeInterval: dur(flagProbeInterval),
		},
		Backup: Backup{
			Interval: dur(flagBackupInterval),
			Retain:   num(flagBackupRetain),
		},
		Remote: Remote{
			Kind:           str(flagRemoteKind),
			RepoDir:        str(flagRepoDir),
			Name:           str(flagRemoteName),
			Branch:         str(flagBranch),
			RecordPath:     str(flagRecordPath),
			Address:        str(flagRemoteAddress),
			RequestTimeout: dur(flagRequestTimeout),
		},
		Storage: Storage{
			DSN:        str(flagDSN),
			MirrorFile: str(flagMirrorFile),
		},
		Server:         Server{HTTPAddress: address},
		Log:            Log{File: str(flagLogFile), Level: str(flagLogLevel)},
		ConfigFilePath: str(flagConfig),
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
