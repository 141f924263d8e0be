package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/models"
)

// fileStateStorage keeps the overlay document in a single JSON file. It is
// the terminal backend of the chain: loads never fail, they degrade to an
// empty document.
type fileStateStorage struct {
	path string

	logger *logger.Logger
}

// NewFileStateStorage constructs the JSON-file overlay backend writing to
// the given path.
func NewFileStateStorage(path string, log *logger.Logger) OverlayStore {
	return &fileStateStorage{
		path:   path,
		logger: log,
	}
}

// Load reads and parses the state file. A missing file or an unparseable
// payload both yield an empty document: losing the overlay must never keep
// the catalog from serving.
func (f *fileStateStorage) Load(_ context.Context) (models.OverlayDocument, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warn().Err(err).Str("path", f.path).Msg("error reading state file, starting with empty state")
		}
		return models.OverlayDocument{}, nil
	}

	var doc models.OverlayDocument
	if err = json.Unmarshal(data, &doc); err != nil {
		f.logger.Warn().Err(err).Str("path", f.path).Msg("error decoding state file, starting with empty state")
		return models.OverlayDocument{}, nil
	}
	if doc == nil {
		doc = models.OverlayDocument{}
	}

	return doc, nil
}

// Save overwrites the whole state file with the serialized document,
// creating the parent directory if needed.
func (f *fileStateStorage) Save(_ context.Context, doc models.OverlayDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state document: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state directory: %w", err)
		}
	}

	if err = os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	f.logger.Debug().Str("path", f.path).Msg("saved state to local file")
	return nil
}
