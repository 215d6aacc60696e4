package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/case-sync/internal/adapter"
	"github.com/MKhiriev/case-sync/internal/config"
	"github.com/MKhiriev/case-sync/internal/handler"
	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/server"
	"github.com/MKhiriev/case-sync/internal/service"
	"github.com/MKhiriev/case-sync/internal/store"
	"github.com/MKhiriev/case-sync/internal/watcher"
	"github.com/MKhiriev/case-sync/internal/workers"
	"github.com/MKhiriev/case-sync/models"
	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"
)

// App owns every long-lived component of the sync process.
type App struct {
	cfg      *config.ClientConfig
	lock     *flock.Flock
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	server   server.Server

	logger *logger.Logger
}

// NewApp takes the store lock, opens storage, builds the gateway and the
// services. It does not start any background work.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	lock, err := acquireLock(cfg.Storage.LockFile)
	if err != nil {
		return nil, err
	}

	app := &App{cfg: cfg, lock: lock, logger: log}
	if err = app.init(ctx, build); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (a *App) init(ctx context.Context, build models.AppBuildInfo) error {
	storages, err := store.NewClientStorages(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	a.storages = storages

	gateway, err := adapter.NewRemoteGateway(a.cfg.Remote, a.logger)
	if err != nil {
		return fmt.Errorf("create remote gateway: %w", err)
	}

	services, err := service.NewClientServices(ctx, storages, gateway, a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("create client services: %w", err)
	}
	a.services = services

	a.workers = workers.NewWorkers(a.logger).
		Add("scheduler", services.Scheduler).
		Add("backup", workers.BackupWorker(services.BackupRotator, a.cfg.Backup.Interval, a.cfg.Backup.Retain))
	if storages.RecordMirror != nil {
		a.workers.Add("mirror-watcher", watcher.NewMirrorWatcher(storages.RecordMirror, services.Records, 0, a.logger))
	}

	if a.cfg.Server.HTTPAddress != "" {
		handlers, err := handler.NewHandlers(services, a.cfg, build, a.logger)
		if err != nil {
			return fmt.Errorf("create handlers: %w", err)
		}
		if a.server, err = server.NewServer(handlers, a.cfg.Server, a.logger); err != nil {
			return fmt.Errorf("create server: %w", err)
		}
	}

	return nil
}

// Services exposes the wired services to in-process callers.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run starts the workers and the control API and blocks until ctx is
// cancelled or one of them fails. Storage stays open; call Close afterwards.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.workers.Run(gctx)
	})
	if a.server != nil {
		g.Go(func() error {
			return a.server.RunServer(gctx)
		})
	}

	a.logger.Info().Str("func", "App.Run").Str("remote", a.cfg.Remote.Kind).Msg("case-sync started")
	err := g.Wait()
	a.logger.Info().Str("func", "App.Run").Msg("case-sync stopped")

	return err
}

// Close releases storage and the lock. It is safe to call more than once.
func (a *App) Close() error {
	var errs []error
	if a.storages != nil {
		errs = append(errs, a.storages.Close())
		a.storages = nil
	}
	if a.lock != nil {
		errs = append(errs, a.lock.Unlock())
		a.lock = nil
	}
	return errors.Join(errs...)
}

func acquireLock(path string) (*flock.Flock, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create lock directory: %w", err)
		}
	}

	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, path)
	}
	return lock, nil
}
