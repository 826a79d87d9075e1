// Package artefactstore persists artefact metadata and raw payloads in
// SQLite. It is the metadata collaborator of the publication facade; the
// rendered files themselves live in the blob store.
package artefactstore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"listpub/internal/artefact"
	"listpub/internal/config"
	"listpub/internal/listtype"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped when the schema changes.
const schemaVersion = 1

// ErrNotFound marks lookups for artefacts that do not exist.
var ErrNotFound = errors.New("artefact not found")

// ErrSchemaMismatch indicates the database was created by an incompatible
// version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store manages artefact persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the artefact database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(filepath.Join(cfg.Paths.DataDir, "artefacts.db"))
}

// OpenPath opens the artefact database at an explicit path.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d", ErrSchemaMismatch, version, schemaVersion)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save inserts or replaces an artefact record with its raw payload.
func (s *Store) Save(ctx context.Context, meta artefact.Metadata, raw []byte) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO artefacts (
            id, list_type, language, sensitivity, provenance,
            content_date, display_from, display_to, location_id,
            payload, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            list_type = excluded.list_type,
            language = excluded.language,
            sensitivity = excluded.sensitivity,
            provenance = excluded.provenance,
            content_date = excluded.content_date,
            display_from = excluded.display_from,
            display_to = excluded.display_to,
            location_id = excluded.location_id,
            payload = excluded.payload,
            updated_at = excluded.updated_at`,
		meta.ID.String(),
		string(meta.ListType),
		string(meta.Language),
		string(meta.Sensitivity),
		meta.Provenance,
		formatTime(meta.ContentDate),
		formatTime(meta.DisplayFrom),
		formatTime(meta.DisplayTo),
		meta.LocationID,
		raw,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("save artefact %s: %w", meta.ID, err)
	}
	return nil
}

// Get returns the metadata record for an artefact.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (artefact.Metadata, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, list_type, language, sensitivity, provenance,
                content_date, display_from, display_to, location_id
         FROM artefacts WHERE id = ?`, id.String())
	return scanMetadata(row, id)
}

// Payload returns the raw listing payload for an artefact.
func (s *Store) Payload(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM artefacts WHERE id = ?", id.String()).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("artefact %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load payload %s: %w", id, err)
	}
	return raw, nil
}

// List returns every stored artefact's metadata, newest first.
func (s *Store) List(ctx context.Context) ([]artefact.Metadata, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, list_type, language, sensitivity, provenance,
                content_date, display_from, display_to, location_id
         FROM artefacts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list artefacts: %w", err)
	}
	defer rows.Close()

	var items []artefact.Metadata
	for rows.Next() {
		meta, err := scanMetadata(rows, uuid.Nil)
		if err != nil {
			return nil, err
		}
		items = append(items, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artefacts: %w", err)
	}
	return items, nil
}

// Delete removes an artefact record.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM artefacts WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete artefact %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete artefact %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("artefact %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMetadata(row rowScanner, id uuid.UUID) (artefact.Metadata, error) {
	var (
		rawID, listType, lang, sensitivity, provenance string
		contentDate, displayFrom, displayTo, location  string
	)
	err := row.Scan(&rawID, &listType, &lang, &sensitivity, &provenance,
		&contentDate, &displayFrom, &displayTo, &location)
	if errors.Is(err, sql.ErrNoRows) {
		return artefact.Metadata{}, fmt.Errorf("artefact %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return artefact.Metadata{}, fmt.Errorf("scan artefact: %w", err)
	}

	parsedID, err := uuid.Parse(rawID)
	if err != nil {
		return artefact.Metadata{}, fmt.Errorf("parse artefact id %q: %w", rawID, err)
	}
	lt, _ := listtype.Parse(listType)
	return artefact.Metadata{
		ID:          parsedID,
		ListType:    lt,
		Language:    artefact.ParseLanguage(lang),
		Sensitivity: artefact.ParseSensitivity(sensitivity),
		Provenance:  provenance,
		ContentDate: parseTime(contentDate),
		DisplayFrom: parseTime(displayFrom),
		DisplayTo:   parseTime(displayTo),
		LocationID:  location,
	}, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
