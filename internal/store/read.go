package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/query"
	"github.com/roach88/catalogue/internal/querysql"
)

// Records returns every indexed record in data file order.
//
// Returns an empty slice (not nil) when the index is empty.
func (s *Store) Records(ctx context.Context) ([]catalogue.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT record_json FROM records ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	return scanRecords(rows)
}

// Query returns the records visible under st, in the same order
// query.Visible would produce.
func (s *Store) Query(ctx context.Context, st query.State) ([]catalogue.Record, error) {
	stmt, params, err := querysql.Compile(st)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, stmt, params...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]catalogue.Record, error) {
	defer rows.Close()

	records := []catalogue.Record{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec, err := unmarshalRecord(data)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Count returns the number of indexed records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Hashes returns sku -> content hash for every indexed record.
func (s *Store) Hashes(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sku, content_hash FROM records ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query hashes: %w", err)
	}
	defer rows.Close()

	hashes := make(map[string]string)
	for rows.Next() {
		var sku, hash string
		if err := rows.Scan(&sku, &hash); err != nil {
			return nil, fmt.Errorf("scan hash: %w", err)
		}
		hashes[sku] = hash
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hashes: %w", err)
	}
	return hashes, nil
}

// Run is one recorded generation run.
type Run struct {
	ID         string     `json:"id"`
	Mode       string     `json:"mode"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	Generated  int        `json:"generated"`
	Failed     int        `json:"failed"`
	Error      string     `json:"error,omitempty"`
}

// Runs returns recorded runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, mode, started_at, finished_at, generated, failed, error
		FROM runs
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var (
			r        Run
			started  string
			finished sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Mode, &started, &finished, &r.Generated, &r.Failed, &r.Error); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("parse run start: %w", err)
		}
		if finished.Valid {
			t, err := time.Parse(time.RFC3339, finished.String)
			if err != nil {
				return nil, fmt.Errorf("parse run finish: %w", err)
			}
			r.FinishedAt = &t
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Drift compares the index against records from the data file. It returns
// SKUs that are missing from the index, SKUs whose content differs, and
// SKUs indexed but absent from records.
func (s *Store) Drift(ctx context.Context, records []catalogue.Record) (missing, changed, extra []string, err error) {
	hashes, err := s.Hashes(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		seen[rec.SKU] = true
		indexed, ok := hashes[rec.SKU]
		if !ok {
			missing = append(missing, rec.SKU)
			continue
		}
		hash, err := catalogue.ContentHash(rec)
		if err != nil {
			return nil, nil, nil, err
		}
		if hash != indexed {
			changed = append(changed, rec.SKU)
		}
	}
	for sku := range hashes {
		if !seen[sku] {
			extra = append(extra, sku)
		}
	}
	slices.Sort(extra)
	return missing, changed, extra, nil
}
