package adapter

import (
	"fmt"

	"github.com/MKhiriev/case-sync/internal/config"
	"github.com/MKhiriev/case-sync/internal/logger"
)

// NewRemoteGateway selects the [RemoteGateway] implementation named by
// cfg.Kind.
func NewRemoteGateway(cfg config.ClientRemote, logger *logger.Logger) (RemoteGateway, error) {
	switch cfg.Kind {
	case config.RemoteKindGit, "":
		return NewGitGateway(cfg, NewExecRunner(), logger)
	case config.RemoteKindHTTP:
		return NewHTTPFileStoreGateway(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown remote kind %q", cfg.Kind)
	}
}
