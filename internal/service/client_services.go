package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/case-sync/internal/adapter"
	"github.com/MKhiriev/case-sync/internal/config"
	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/store"
)

// ClientServices aggregates every service of the sync engine.
type ClientServices struct {
	Tracker       ChangeTracker
	Resolver      ConflictResolver
	Records       CaseRecordService
	Notifier      Notifier
	BackupRotator BackupRotator
	SyncService   SyncService
	Scheduler     SyncScheduler
	Connectivity  ConnectivityMonitor
}

// NewClientServices wires the services over the local storages and the
// remote gateway, then loads the persisted record and sync state.
func NewClientServices(ctx context.Context, storages *store.ClientStorages, gateway adapter.RemoteGateway, cfg *config.ClientConfig, log *logger.Logger) (*ClientServices, error) {
	tracker := NewChangeTracker()
	resolver := NewConflictResolver()
	notifier := NewNotifier(log)
	records := NewCaseRecordService(storages.CaseRecordRepository, storages.RecordMirror, tracker, resolver, log)
	syncSvc := NewClientSyncService(gateway, records, tracker, resolver, storages.SyncStateRepository, cfg.Sync, cfg.Remote.InfoPath, log)
	monitor := NewConnectivityMonitor(gateway, cfg.Sync.ProbeInterval, cfg.Remote.RequestTimeout, log)

	if err := records.Load(ctx); err != nil {
		return nil, fmt.Errorf("load case record: %w", err)
	}
	if err := syncSvc.Init(ctx); err != nil {
		return nil, fmt.Errorf("init sync state: %w", err)
	}

	return &ClientServices{
		Tracker:       tracker,
		Resolver:      resolver,
		Records:       records,
		Notifier:      notifier,
		BackupRotator: NewBackupRotator(storages.BackupRepository, records, notifier, log),
		SyncService:   syncSvc,
		Scheduler:     NewSyncScheduler(syncSvc, tracker, notifier, monitor, cfg.Sync, log),
		Connectivity:  monitor,
	}, nil
}
