package client

import (
	"context"

	"github.com/MKhiriev/case-sync/models"
)

// localController runs commands against an in-process [App].
type localController struct {
	app    *App
	retain int
}

func newLocalController(app *App) *localController {
	return &localController{app: app, retain: app.cfg.Backup.Retain}
}

func (c *localController) SyncNow(ctx context.Context) (models.CycleResult, error) {
	return c.app.services.Scheduler.SyncNow(ctx)
}

func (c *localController) Status(ctx context.Context) (models.SyncStatus, error) {
	return c.app.services.Scheduler.Status(ctx), nil
}

func (c *localController) SetPolicy(ctx context.Context, policy models.ConflictPolicy) error {
	return c.app.services.SyncService.SetPolicy(ctx, policy)
}

func (c *localController) ListBackups(ctx context.Context) ([]models.BackupInfo, error) {
	return c.app.services.BackupRotator.List(ctx)
}

func (c *localController) CreateBackup(ctx context.Context) (models.BackupInfo, error) {
	backup, err := c.app.services.BackupRotator.Snapshot(ctx)
	if err != nil {
		return models.BackupInfo{}, err
	}
	if _, err = c.app.services.BackupRotator.Rotate(ctx, c.retain); err != nil {
		return models.BackupInfo{}, err
	}
	return models.BackupInfo{
		Key:       backup.Key,
		CreatedAt: backup.CreatedAt,
		Size:      backup.Record.Size(),
		Latest:    true,
	}, nil
}

func (c *localController) RestoreBackup(ctx context.Context, key string) (models.CaseRecord, error) {
	return c.app.services.BackupRotator.Restore(ctx, key)
}

func (c *localController) Close() error {
	return c.app.Close()
}
