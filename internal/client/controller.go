package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/case-sync/internal/config"
	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/models"
)

// OpenController prefers running commands in-process. When a long-running
// process already holds the store lock, commands go to its control API
// instead.
func OpenController(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (Controller, error) {
	app, err := NewApp(ctx, cfg, build, log)
	if err == nil {
		return newLocalController(app), nil
	}
	if !errors.Is(err, ErrAlreadyRunning) {
		return nil, err
	}
	if cfg.Server.HTTPAddress == "" {
		return nil, errors.Join(err, ErrControlAPIUnavailable)
	}

	log.Debug().Str("func", "OpenController").Str("address", cfg.Server.HTTPAddress).Msg("store locked, using control API")
	return NewAPIController(cfg.Server.HTTPAddress, cfg.Remote.RequestTimeout)
}
