// Package store handles SQLite persistence of the save journal.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/moodcount/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the save journal.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS saves (
			id INTEGER PRIMARY KEY,
			saved_at TEXT NOT NULL,
			path TEXT NOT NULL,
			encoded TEXT NOT NULL,
			cursor INTEGER NOT NULL,
			length INTEGER NOT NULL,
			awesome INTEGER NOT NULL,
			good INTEGER NOT NULL,
			normal INTEGER NOT NULL,
			bad INTEGER NOT NULL,
			awful INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_saves_saved_at ON saves(saved_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// timeLayout keeps a fixed width so saved_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const saveColumns = `id, saved_at, path, encoded, cursor, length, awesome, good, normal, bad, awful`

// InsertSave records one write of the counter file.
func (s *Store) InsertSave(ctx context.Context, rec model.SaveRecord) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO saves (saved_at, path, encoded, cursor, length, awesome, good, normal, bad, awful)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SavedAt.UTC().Format(timeLayout),
		rec.Path,
		rec.Encoded,
		rec.Cursor,
		rec.Length,
		rec.Counts.Get(model.Awesome),
		rec.Counts.Get(model.Good),
		rec.Counts.Get(model.Normal),
		rec.Counts.Get(model.Bad),
		rec.Counts.Get(model.Awful),
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListSaves returns journal rows filtered by stats config, oldest first.
func (s *Store) ListSaves(ctx context.Context, cfg model.StatsConfig) ([]model.SaveRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "saved_at >= ?")
		args = append(args, cfg.Since.UTC().Format(timeLayout))
	}
	query := fmt.Sprintf(`SELECT %s
		FROM saves
		WHERE %s
		ORDER BY saved_at ASC, id ASC`, saveColumns, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var saves []model.SaveRecord
	for rows.Next() {
		rec, err := scanSave(rows)
		if err != nil {
			return nil, err
		}
		saves = append(saves, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(saves) > cfg.Last {
		saves = saves[len(saves)-cfg.Last:]
	}
	return saves, nil
}

// LatestSave returns the most recent journal row, if any.
func (s *Store) LatestSave(ctx context.Context) (model.SaveRecord, bool, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s
		FROM saves
		ORDER BY saved_at DESC, id DESC
		LIMIT 1`, saveColumns))
	rec, err := scanSave(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SaveRecord{}, false, nil
	}
	if err != nil {
		return model.SaveRecord{}, false, err
	}
	return rec, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSave(sc scanner) (model.SaveRecord, error) {
	var rec model.SaveRecord
	var savedAt string
	err := sc.Scan(
		&rec.ID,
		&savedAt,
		&rec.Path,
		&rec.Encoded,
		&rec.Cursor,
		&rec.Length,
		&rec.Counts[model.Awesome.Index()],
		&rec.Counts[model.Good.Index()],
		&rec.Counts[model.Normal.Index()],
		&rec.Counts[model.Bad.Index()],
		&rec.Counts[model.Awful.Index()],
	)
	if err != nil {
		return model.SaveRecord{}, err
	}
	parsed, err := time.Parse(timeLayout, savedAt)
	if err != nil {
		return model.SaveRecord{}, err
	}
	rec.SavedAt = parsed
	return rec, nil
}
