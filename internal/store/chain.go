package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/models"
)

// chainStateStorage orders multiple overlay backends into a primary-first
// fallback chain: reads take the first backend that yields a non-empty
// document, writes stop at the first backend that accepts them.
type chainStateStorage struct {
	backends []OverlayStore

	logger *logger.Logger
}

// NewStateStorageChain builds a fallback chain over the given backends in
// priority order.
func NewStateStorageChain(log *logger.Logger, backends ...OverlayStore) OverlayStore {
	return &chainStateStorage{
		backends: backends,
		logger:   log,
	}
}

// Load consults backends in order and returns the first non-empty document.
// Backend failures are logged and skipped; when every backend comes up
// empty the result is an empty document, never an error.
func (c *chainStateStorage) Load(ctx context.Context) (models.OverlayDocument, error) {
	for _, backend := range c.backends {
		doc, err := backend.Load(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Msg("state backend load failed, trying next")
			continue
		}
		if len(doc) == 0 {
			continue
		}

		return doc, nil
	}

	return models.OverlayDocument{}, nil
}

// Save attempts backends in order and stops at the first success. A
// successful primary save short-circuits the fallback entirely; only when
// every backend fails does the chain report an error.
func (c *chainStateStorage) Save(ctx context.Context, doc models.OverlayDocument) error {
	var errs error
	for _, backend := range c.backends {
		err := backend.Save(ctx, doc)
		if err == nil {
			return nil
		}

		c.logger.Warn().Err(err).Msg("state backend save failed, trying next")
		errs = errors.Join(errs, err)
	}

	return errors.Join(ErrAllBackendsFailed, errs)
}
