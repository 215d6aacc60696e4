package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/case-sync/internal/service"
)

type backupWorker struct {
	rotator  service.BackupRotator
	interval time.Duration
	retain   int
}

// BackupWorker adapts the rotator's ticker loop to [Worker].
func BackupWorker(rotator service.BackupRotator, interval time.Duration, retain int) Worker {
	return &backupWorker{rotator: rotator, interval: interval, retain: retain}
}

func (b *backupWorker) Start(ctx context.Context) error {
	b.rotator.Start(ctx, b.interval, b.retain)
	return nil
}

func (b *backupWorker) Stop() {
	b.rotator.Stop()
}
