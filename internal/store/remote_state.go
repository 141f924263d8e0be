package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/org-atlas/internal/config"
	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/models"
)

// stateRowID is the fixed identifier of the single row holding the overlay
// document. The row is provisioned once during deployment; saves always
// update, never insert.
const stateRowID = 1

// remoteStateStorage persists the overlay document in a remote REST
// document store (a PostgREST-style endpoint). The whole document is kept
// as serialized text in one column of one fixed row.
type remoteStateStorage struct {
	client *resty.Client
	table  string

	logger *logger.Logger
}

// remoteStateRow mirrors the remote table row. StateData is kept raw
// because the stored payload may arrive either as a JSON object or as a
// double-encoded JSON string, depending on how the row was written.
type remoteStateRow struct {
	ID        int64           `json:"id,omitempty"`
	StateData json.RawMessage `json:"state_data,omitempty"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}

// NewRemoteStateStorage constructs the remote overlay backend from the
// remote store configuration. The API key rides on every request as both
// the apikey header and a bearer token.
func NewRemoteStateStorage(cfg config.Remote, log *logger.Logger) OverlayStore {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(timeout).
		SetHeader("apikey", cfg.Key).
		SetHeader("Authorization", "Bearer "+cfg.Key).
		SetHeader("Content-Type", "application/json")

	return &remoteStateStorage{
		client: cli,
		table:  cfg.Table,
		logger: log,
	}
}

// Load fetches the fixed state row and decodes its payload. Every failure
// mode (transport error, non-2xx, empty result, malformed payload) is an
// error so the chain falls through to the local backend.
func (r *remoteStateStorage) Load(ctx context.Context) (models.OverlayDocument, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("id", fmt.Sprintf("eq.%d", stateRowID)).
		Get("/rest/v1/" + r.table)
	if err != nil {
		return nil, fmt.Errorf("remote state load request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrRemoteStatus, resp.StatusCode())
	}

	var rows []remoteStateRow
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode remote state rows: %w", err)
	}
	if len(rows) == 0 || len(rows[0].StateData) == 0 {
		return nil, ErrRemoteEmptyState
	}

	doc, err := decodeStateData(rows[0].StateData)
	if err != nil {
		return nil, fmt.Errorf("decode remote state payload: %w", err)
	}

	r.logger.Debug().Int("entries", len(doc)).Msg("loaded state from remote store")
	return doc, nil
}

// Save serializes the document and updates the fixed row, stamping the
// update time. Success requires a 2xx answer.
func (r *remoteStateStorage) Save(ctx context.Context, doc models.OverlayDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state document: %w", err)
	}

	payload := map[string]string{
		"state_data": string(data),
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", fmt.Sprintf("eq.%d", stateRowID)).
		SetBody(payload).
		Patch("/rest/v1/" + r.table)
	if err != nil {
		return fmt.Errorf("remote state save request: %w", err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %d", ErrRemoteStatus, resp.StatusCode())
	}

	r.logger.Debug().Int("status", resp.StatusCode()).Msg("saved state to remote store")
	return nil
}

// decodeStateData handles both storage encodings of the state column:
// a plain JSON object, or that object serialized once more into a JSON
// string (the form the save path writes).
func decodeStateData(raw json.RawMessage) (models.OverlayDocument, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, `"`) {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, err
		}
		raw = json.RawMessage(text)
	}

	var doc models.OverlayDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = models.OverlayDocument{}
	}

	return doc, nil
}
