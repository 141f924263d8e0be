package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/org-atlas/internal/catalog"
	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/internal/store"
	"github.com/MKhiriev/org-atlas/models"
)

// organizationService owns the reconciled catalog state. A single mutex
// serializes the whole mutate-then-persist sequence of every update, so
// concurrent requests cannot produce lost overlay writes.
type organizationService struct {
	catalog      *catalog.Catalog
	overlayStore store.OverlayStore

	mu      sync.RWMutex
	overlay models.OverlayDocument
	byID    map[int64]*models.OrganizationRecord

	now func() time.Time

	logger *logger.Logger
}

// NewOrganizationService loads the persisted overlay document and applies
// it onto the freshly loaded catalog. Reconciliation happens exactly once,
// here, before the service is handed to any handler.
func NewOrganizationService(ctx context.Context, cat *catalog.Catalog, overlayStore store.OverlayStore, log *logger.Logger) OrganizationService {
	doc, err := overlayStore.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("error loading persisted state, starting empty")
		doc = models.OverlayDocument{}
	}
	if doc == nil {
		doc = models.OverlayDocument{}
	}

	s := &organizationService{
		catalog:      cat,
		overlayStore: overlayStore,
		overlay:      doc,
		byID:         make(map[int64]*models.OrganizationRecord, len(cat.All)),
		now:          time.Now,
		logger:       log,
	}

	for _, record := range cat.All {
		s.byID[record.ID] = record
	}
	s.applyOverlay()

	log.Info().
		Int("organizations", len(cat.All)).
		Int("with_location", len(cat.WithLocation)).
		Int("overlay_entries", len(doc)).
		Msg("catalog reconciled")

	return s
}

// applyOverlay merges the loaded overlay document into the in-memory
// records. Only fields present in an entry overwrite the record's
// defaults; absent fields leave them untouched.
func (s *organizationService) applyOverlay() {
	for _, record := range s.catalog.All {
		entry, ok := s.overlay[record.OverlayKey()]
		if !ok {
			continue
		}

		if entry.Status != nil {
			record.Status = *entry.Status
		}
		if entry.Notes != nil {
			record.Notes = *entry.Notes
		}
		if entry.NoteTaker != nil {
			record.NoteTaker = *entry.NoteTaker
		}
		if entry.NoteHistory != nil {
			record.NoteHistory = append([]models.NoteEntry(nil), entry.NoteHistory...)
		}
	}
}

func (s *organizationService) All() []*models.OrganizationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.All
}

func (s *organizationService) WithLocation() []*models.OrganizationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.WithLocation
}

func (s *organizationService) WithoutLocation() []*models.OrganizationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.WithoutLocation
}

func (s *organizationService) Overlay() models.OverlayDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overlay.Clone()
}

func (s *organizationService) Counties() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Counties(s.catalog.All)
}

// Update applies the delta to the record, appends a note history entry when
// non-empty note text is provided, merges the record's full overlay entry
// into the document, and persists the document synchronously. Persistence
// failure is logged and absorbed: the in-memory state stays authoritative
// for the rest of the process lifetime.
func (s *organizationService) Update(ctx context.Context, id int64, delta models.StatusUpdateRequest) (*models.OrganizationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok {
		return nil, ErrOrganizationNotFound
	}

	if delta.Status != nil {
		record.Status = *delta.Status
	}
	if delta.Notes != nil {
		record.Notes = *delta.Notes
	}
	if delta.NoteTaker != nil {
		record.NoteTaker = *delta.NoteTaker
	}

	// only non-empty note text produces a history entry
	if delta.Notes != nil && *delta.Notes != "" {
		noteTaker := ""
		if delta.NoteTaker != nil {
			noteTaker = *delta.NoteTaker
		}
		record.NoteHistory = append(record.NoteHistory, models.NewNoteEntry(noteTaker, *delta.Notes, s.now()))
	}

	s.mergeOverlayEntry(record)

	if err := s.overlayStore.Save(ctx, s.overlay.Clone()); err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Msg("state save failed, keeping update in memory only")
	}

	return record, nil
}

// mergeOverlayEntry writes the record's full current overlay values into
// the document under the record's key. The merge is per-id: other ids'
// entries are untouched.
func (s *organizationService) mergeOverlayEntry(record *models.OrganizationRecord) {
	status := record.Status
	notes := record.Notes
	noteTaker := record.NoteTaker

	entry := s.overlay[record.OverlayKey()]
	entry.Status = &status
	entry.Notes = &notes
	entry.NoteTaker = &noteTaker
	entry.NoteHistory = append([]models.NoteEntry(nil), record.NoteHistory...)

	s.overlay[record.OverlayKey()] = entry
}
