// Package headerdb stores pre-extracted SEGY trace headers in sqlite so the
// geometry resolver never has to touch the binary trace format itself.
package headerdb

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/geoseis/surveymap/internal/survey"
)

type DB struct {
	*sql.DB
}

// NewDB opens (or creates) a header store at the given path. Pass ":memory:"
// for an ephemeral store in tests.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS trace_headers (
			inline            BIGINT NOT NULL,
			crossline         BIGINT NOT NULL,
			cdp_x             DOUBLE NOT NULL,
			cdp_y             DOUBLE NOT NULL
		);
		CREATE TABLE IF NOT EXISTS survey_meta (
			id                INTEGER PRIMARY KEY CHECK (id = 1),
			sgs               DOUBLE NOT NULL DEFAULT 0,
			source_file       TEXT,
			imported_at       TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// LoadTable reads the full header table in rowid order, which preserves the
// native trace order of the import. Implements survey.Loader.
func (db *DB) LoadTable(ctx context.Context) (*survey.HeaderTable, error) {
	sgs, _, err := db.SurveyMeta(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read survey meta: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT inline, crossline, cdp_x, cdp_y FROM trace_headers ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trace headers: %w", err)
	}
	defer rows.Close()

	table := &survey.HeaderTable{SGS: sgs}
	for rows.Next() {
		var rec survey.TraceRecord
		if err := rows.Scan(&rec.Inline, &rec.Crossline, &rec.CDPX, &rec.CDPY); err != nil {
			return nil, err
		}
		table.Records = append(table.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}

// SurveyMeta returns the stored coordinate scalar and source filename.
// An uninitialised store reports a zero scalar, which downstream treats as
// identity.
func (db *DB) SurveyMeta(ctx context.Context) (sgs float64, sourceFile string, err error) {
	var src sql.NullString
	err = db.QueryRowContext(ctx,
		`SELECT sgs, source_file FROM survey_meta WHERE id = 1`).Scan(&sgs, &src)
	if err == sql.ErrNoRows {
		return 0, "", nil
	}
	if err != nil {
		return 0, "", err
	}
	return sgs, src.String, nil
}

// SetSurveyMeta records the coordinate scalar and source filename, replacing
// any previous values.
func (db *DB) SetSurveyMeta(ctx context.Context, sgs float64, sourceFile string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO survey_meta (id, sgs, source_file) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET sgs = excluded.sgs,
			source_file = excluded.source_file,
			imported_at = CURRENT_TIMESTAMP`,
		sgs, sourceFile)
	return err
}

// TraceCount returns the number of stored header rows.
func (db *DB) TraceCount(ctx context.Context) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trace_headers`).Scan(&n)
	return n, err
}
