package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/roach88/catalogue/internal/catalogue"
)

// execer is the part of *sql.DB and *sql.Tx that writes need.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// PutRecord inserts rec into the index.
// Uses ON CONFLICT(sku) DO NOTHING for idempotency - a SKU already indexed
// is left as is and false is returned.
func (s *Store) PutRecord(ctx context.Context, rec catalogue.Record) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("put record: begin: %w", err)
	}
	defer tx.Rollback()

	inserted, err := putRecord(ctx, tx, rec)
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("put record: commit: %w", err)
	}
	return inserted, nil
}

// Rebuild replaces the whole index with records, in order, in one
// transaction. Duplicate SKUs keep their first occurrence. Returns the number
// of rows indexed.
func (s *Store) Rebuild(ctx context.Context, records []catalogue.Record) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("rebuild: begin: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM record_styles", "DELETE FROM records"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("rebuild: clear: %w", err)
		}
	}

	n := 0
	for _, rec := range records {
		inserted, err := putRecord(ctx, tx, rec)
		if err != nil {
			return 0, fmt.Errorf("rebuild: %w", err)
		}
		if inserted {
			n++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("rebuild: commit: %w", err)
	}
	return n, nil
}

func putRecord(ctx context.Context, db execer, rec catalogue.Record) (bool, error) {
	recJSON, err := marshalRecord(rec)
	if err != nil {
		return false, fmt.Errorf("put record: %w", err)
	}
	hash, err := catalogue.ContentHash(rec)
	if err != nil {
		return false, fmt.Errorf("put record: %w", err)
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO records
		(sku, category_id, name, price, featured_rank, added_at, haystack, content_hash, record_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(sku) DO NOTHING
	`,
		rec.SKU,
		string(rec.CategoryID),
		rec.Name,
		rec.Price,
		rec.FeaturedRank,
		rec.AddedAt.String(),
		rec.Haystack(),
		hash,
		recJSON,
	)
	if err != nil {
		return false, fmt.Errorf("put record %s: %w", rec.SKU, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("put record %s: rows affected: %w", rec.SKU, err)
	}
	if n == 0 {
		return false, nil
	}

	for _, style := range rec.Style {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO record_styles (sku, style) VALUES (?, ?)
			ON CONFLICT DO NOTHING
		`, rec.SKU, style); err != nil {
			return false, fmt.Errorf("put style %s/%s: %w", rec.SKU, style, err)
		}
	}
	return true, nil
}

// BeginRun records the start of a generation run and returns its ID.
func (s *Store) BeginRun(ctx context.Context, mode string) (string, error) {
	id := s.ids.Generate()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, mode, started_at) VALUES (?, ?, ?)
	`, id, mode, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return id, nil
}

// FinishRun stamps the end of run id with its counts. runErr may be nil.
func (s *Store) FinishRun(ctx context.Context, id string, generated, failed int, runErr error) error {
	msg := ""
	if runErr != nil {
		msg = runErr.Error()
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, generated = ?, failed = ?, error = ?
		WHERE id = ?
	`, s.now().UTC().Format(time.RFC3339), generated, failed, msg, id)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish run %s: no such run", id)
	}
	return nil
}
