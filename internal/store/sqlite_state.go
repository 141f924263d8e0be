package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/migrations"
	"github.com/MKhiriev/org-atlas/models"
)

const stateTable = "overlay_state"

// sqliteStateStorage keeps the overlay document in a single-row SQLite
// table mirroring the remote store's layout. It replaces the JSON file as
// the local backend when a DSN is configured.
type sqliteStateStorage struct {
	db *sql.DB

	logger *logger.Logger
}

// NewSQLiteStateStorage opens (creating if necessary) the SQLite state
// database at dsn, applies migrations, and returns the backend.
func NewSQLiteStateStorage(ctx context.Context, dsn string, log *logger.Logger) (*sqliteStateStorage, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewSQLiteStateStorage").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteStateStorage").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteStateStorage").Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteStateStorage").Msg("connected to state database successfully")

	return &sqliteStateStorage{db: conn, logger: log}, nil
}

// Load reads the state row. Like the file backend this is a local terminal
// backend: absence or corruption degrades to an empty document.
func (s *sqliteStateStorage) Load(ctx context.Context) (models.OverlayDocument, error) {
	query, args, err := sq.Select("state_data").
		From(stateTable).
		Where(sq.Eq{"id": stateRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build state select: %w", err)
	}

	var data string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn().Err(err).Msg("error reading state row, starting with empty state")
		}
		return models.OverlayDocument{}, nil
	}

	var doc models.OverlayDocument
	if err = json.Unmarshal([]byte(data), &doc); err != nil {
		s.logger.Warn().Err(err).Msg("error decoding state row, starting with empty state")
		return models.OverlayDocument{}, nil
	}
	if doc == nil {
		doc = models.OverlayDocument{}
	}

	return doc, nil
}

// Save replaces the state row's payload and stamps the update time. The
// row itself is seeded by the migration, so this is always an update.
func (s *sqliteStateStorage) Save(ctx context.Context, doc models.OverlayDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state document: %w", err)
	}

	query, args, err := sq.Update(stateTable).
		Set("state_data", string(data)).
		Set("updated_at", time.Now().UTC().Format(time.RFC3339)).
		Where(sq.Eq{"id": stateRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build state update: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write state row: %w", err)
	}

	s.logger.Debug().Msg("saved state to sqlite")
	return nil
}

// Close releases the underlying database handle.
func (s *sqliteStateStorage) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
