package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/case-sync/models"
	"github.com/spf13/pflag"
)

// ClientSync holds the scheduler settings in their parsed form.
type ClientSync struct {
	Policy        models.ConflictPolicy
	Interval      time.Duration
	Debounce      time.Duration
	RetryLimit    int
	CycleTimeout  time.Duration
	ProbeInterval time.Duration
	InitialDelay  time.Duration
}

// ClientBackup holds the backup rotator settings.
type ClientBackup struct {
	Interval time.Duration
	Retain   int
}

// ClientRemote holds the gateway settings.
type ClientRemote struct {
	Kind           string
	RepoDir        string
	Name           string
	Branch         string
	RecordPath     string
	InfoPath       string
	Address        string
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups local storage settings.
type ClientStorage struct {
	DB         ClientDB
	MirrorFile string
	LockFile   string
}

// ClientServer holds the control API settings.
type ClientServer struct {
	HTTPAddress string
}

// ClientLog holds logging settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Sync    ClientSync
	Backup  ClientBackup
	Remote  ClientRemote
	Storage ClientStorage
	Server  ClientServer
	Log     ClientLog
}

// Remote gateway kinds.
const (
	RemoteKindGit  = "git"
	RemoteKindHTTP = "http"
)

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.clientConfig()
}

func (cfg *StructuredConfig) clientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Sync: ClientSync{
			Policy:        models.ConflictPolicy(cfg.Sync.Policy),
			Interval:      cfg.Sync.Interval,
			Debounce:      cfg.Sync.Debounce,
			RetryLimit:    cfg.Sync.RetryLimit,
			CycleTimeout:  cfg.Sync.CycleTimeout,
			ProbeInterval: cfg.Sync.ProbeInterval,
			InitialDelay:  cfg.Sync.InitialDelay,
		},
		Backup: ClientBackup{
			Interval: cfg.Backup.Interval,
			Retain:   cfg.Backup.Retain,
		},
		Remote: ClientRemote{
			Kind:           cfg.Remote.Kind,
			RepoDir:        cfg.Remote.RepoDir,
			Name:           cfg.Remote.Name,
			Branch:         cfg.Remote.Branch,
			RecordPath:     cfg.Remote.RecordPath,
			InfoPath:       cfg.Remote.InfoPath,
			Address:        cfg.Remote.Address,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:         ClientDB{DSN: cfg.Storage.DSN},
			MirrorFile: cfg.Storage.MirrorFile,
			LockFile:   cfg.Storage.LockFile,
		},
		Server: ClientServer{HTTPAddress: cfg.Server.HTTPAddress},
		Log:    ClientLog{File: cfg.Log.File, Level: cfg.Log.Level},
	}

	return clientCfg, clientCfg.validate()
}
