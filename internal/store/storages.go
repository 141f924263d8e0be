package store

import (
	"context"
	"io"

	"github.com/MKhiriev/org-atlas/internal/config"
	"github.com/MKhiriev/org-atlas/internal/logger"
)

// Storages aggregates every persistence backend used by the application.
type Storages struct {
	OverlayStore OverlayStore

	closers []io.Closer
}

// NewStorages assembles the overlay persistence chain from configuration.
//
// The remote backend leads the chain when both its URL and key are set;
// the local backend is SQLite when a DSN is configured and the JSON state
// file otherwise. There is always at least the local backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	var backends []OverlayStore
	if cfg.Remote.URL != "" && cfg.Remote.Key != "" {
		log.Info().Str("table", cfg.Remote.Table).Msg("remote state backend configured")
		backends = append(backends, NewRemoteStateStorage(cfg.Remote, log))
	}

	if cfg.State.SQLiteDSN != "" {
		sqliteStorage, err := NewSQLiteStateStorage(ctx, cfg.State.SQLiteDSN, log)
		if err != nil {
			return nil, err
		}
		storages.closers = append(storages.closers, sqliteStorage)
		backends = append(backends, sqliteStorage)
	} else {
		backends = append(backends, NewFileStateStorage(cfg.State.FilePath, log))
	}

	storages.OverlayStore = NewStateStorageChain(log, backends...)

	return storages, nil
}

// Close releases every backend resource (currently the SQLite handle).
func (s *Storages) Close() error {
	var err error
	for _, c := range s.closers {
		if closeErr := c.Close(); closeErr != nil {
			err = closeErr
		}
	}

	return err
}
