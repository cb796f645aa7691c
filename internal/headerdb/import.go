package headerdb

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/geoseis/surveymap/internal/monitoring"
)

// ImportCSV loads trace headers from a CSV export with a header row of
// inline,crossline,cdp_x,cdp_y. Existing rows are replaced: an import always
// represents the whole survey, never an increment. Returns the number of rows
// imported.
func (db *DB) ImportCSV(ctx context.Context, r io.Reader, sgs float64, sourceFile string) (int, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read csv header: %w", err)
	}
	cols, err := headerColumns(header)
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trace_headers`); err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO trace_headers (inline, crossline, cdp_x, cdp_y) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read csv row %d: %w", count+1, err)
		}

		inline, err := strconv.ParseInt(record[cols.inline], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("row %d: bad inline %q: %w", count+1, record[cols.inline], err)
		}
		crossline, err := strconv.ParseInt(record[cols.crossline], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("row %d: bad crossline %q: %w", count+1, record[cols.crossline], err)
		}
		cdpX, err := strconv.ParseFloat(record[cols.cdpX], 64)
		if err != nil {
			return 0, fmt.Errorf("row %d: bad cdp_x %q: %w", count+1, record[cols.cdpX], err)
		}
		cdpY, err := strconv.ParseFloat(record[cols.cdpY], 64)
		if err != nil {
			return 0, fmt.Errorf("row %d: bad cdp_y %q: %w", count+1, record[cols.cdpY], err)
		}

		if _, err := stmt.ExecContext(ctx, inline, crossline, cdpX, cdpY); err != nil {
			return 0, err
		}
		count++
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO survey_meta (id, sgs, source_file) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET sgs = excluded.sgs,
			source_file = excluded.source_file,
			imported_at = CURRENT_TIMESTAMP`,
		sgs, sourceFile); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	monitoring.Logf("imported %d trace headers (sgs=%v) from %s", count, sgs, sourceFile)
	return count, nil
}

type columnIndexes struct {
	inline, crossline, cdpX, cdpY int
}

func headerColumns(header []string) (columnIndexes, error) {
	cols := columnIndexes{-1, -1, -1, -1}
	for i, name := range header {
		switch name {
		case "inline":
			cols.inline = i
		case "crossline":
			cols.crossline = i
		case "cdp_x":
			cols.cdpX = i
		case "cdp_y":
			cols.cdpY = i
		}
	}
	if cols.inline < 0 || cols.crossline < 0 || cols.cdpX < 0 || cols.cdpY < 0 {
		return cols, fmt.Errorf("csv header missing required columns, got %v", header)
	}
	return cols, nil
}
