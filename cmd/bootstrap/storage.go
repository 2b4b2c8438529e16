package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"pousada-api/internal/infra/storage"
	"pousada-api/internal/pkg/clock"
	"pousada-api/internal/pkg/config"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewFileStorage,
	),
)

// NewFileStorage selects the storage backend from configuration. The local
// backend is also returned concretely so the download endpoint can serve
// files from disk; it is nil when GCS is active.
func NewFileStorage(cfg config.Config, clk clock.Clock) (storage.FileStorage, *storage.LocalStorage, error) {
	switch cfg.Storage.Provider {
	case "local":
		local, err := storage.NewLocalStorage(cfg.Storage.LocalRoot, cfg.Server.BackendURL)
		if err != nil {
			return nil, nil, err
		}
		return local, local, nil
	case "gcs":
		gcs, err := storage.NewGCSStorage(context.Background(), cfg.Storage.GCSBucket, cfg.Storage.GCSCredentials, cfg.Storage.SignedURLExpiry, clk)
		if err != nil {
			return nil, nil, err
		}
		return gcs, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown file storage provider %q", cfg.Storage.Provider)
	}
}
