package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drakos74/census/internal/storage"
	_ "modernc.org/sqlite"
)

// FileName is the database file created in the output directory.
const FileName = "census.db"

// Store is a key/value storage on top of a sqlite table.
type Store struct {
	db    *sql.DB
	table string
}

// Open opens the database at the given path and prepares the table for the shard.
func Open(ctx context.Context, path string, shard string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{
		db:    db,
		table: shard,
	}
	if err := s.init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewShard opens one table per shard in the database at the given path.
func NewShard(ctx context.Context, path string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return Open(ctx, path, shard)
	}
}

func (s *Store) init(ctx context.Context) error {
	schema := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %q (
	dataset TEXT NOT NULL,
	run TEXT NOT NULL,
	label TEXT NOT NULL,
	value BLOB NOT NULL,
	PRIMARY KEY (dataset, run, label)
);`, s.table)
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("could not create table '%s': %w", s.table, err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Store(k storage.Key, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode '%s': %w", k.Path(), err)
	}
	_, err = s.db.Exec(
		fmt.Sprintf(`INSERT OR REPLACE INTO %q (dataset, run, label, value) VALUES (?, ?, ?, ?)`, s.table),
		k.Dataset, k.Run, k.Label, b,
	)
	if err != nil {
		return fmt.Errorf("could not store '%s': %w", k.Path(), err)
	}
	return nil
}

func (s *Store) Load(k storage.Key, value interface{}) error {
	var b []byte
	err := s.db.QueryRow(
		fmt.Sprintf(`SELECT value FROM %q WHERE dataset = ? AND run = ? AND label = ?`, s.table),
		k.Dataset, k.Run, k.Label,
	).Scan(&b)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("'%s': %w", k.Path(), storage.NotFoundErr)
	}
	if err != nil {
		return fmt.Errorf("could not load '%s': %s: %w", k.Path(), err.Error(), storage.CouldNotLoadErr)
	}
	if err := json.Unmarshal(b, value); err != nil {
		return fmt.Errorf("could not decode '%s': %s: %w", k.Path(), err.Error(), storage.CouldNotLoadErr)
	}
	return nil
}

// Runs returns the run ids stored for the dataset.
func (s *Store) Runs(ctx context.Context, dataset string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT DISTINCT run FROM %q WHERE dataset = ? ORDER BY run`, s.table),
		dataset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]string, 0)
	for rows.Next() {
		var run string
		if err := rows.Scan(&run); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
