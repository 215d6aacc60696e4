package http

import (
	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/service"
	"github.com/MKhiriev/case-sync/models"
)

// Handler serves the control API over the client services.
type Handler struct {
	services *service.ClientServices
	build    models.AppBuildInfo

	// backupRetain is passed to Rotate after an on-demand snapshot.
	backupRetain int

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, build models.AppBuildInfo, backupRetain int, logger *logger.Logger) *Handler {
	if backupRetain <= 0 {
		backupRetain = service.DefaultBackupRetain
	}
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		build:        build,
		backupRetain: backupRetain,
		logger:       logger,
	}
}
