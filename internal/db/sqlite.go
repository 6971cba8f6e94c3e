// Package db provides a read-only SQLite block source.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/dayline/internal/block"
	"github.com/javiermolinar/dayline/internal/dateutil"
)

// SQLite lists time blocks stored in a SQLite database.
type SQLite struct {
	db *sql.DB
}

// New opens the database and creates the blocks table if it is missing.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const selectBlocks = `
	SELECT id, title, block_date, start_time, end_time, color, completed, category
	FROM blocks
`

// ListBlocksByDateRange returns all blocks dated within the range (inclusive),
// ordered by date and start time.
func (s *SQLite) ListBlocksByDateRange(ctx context.Context, start, end time.Time) ([]block.TimeBlock, error) {
	query := selectBlocks + `
		WHERE block_date >= ? AND block_date <= ?
		ORDER BY block_date, start_time, id
	`

	rows, err := s.db.QueryContext(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("querying blocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	blocks := make([]block.TimeBlock, 0)
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning block: %w", err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocks: %w", err)
	}

	return blocks, nil
}

// DaySource returns a block.Source listing the blocks dated on day.
func (s *SQLite) DaySource(day time.Time) block.Source {
	day = dateutil.TruncateToDay(day)
	return block.SourceFunc(func(ctx context.Context) ([]block.TimeBlock, error) {
		return s.ListBlocksByDateRange(ctx, day, day)
	})
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBlock(sc scanner) (block.TimeBlock, error) {
	var (
		b          block.TimeBlock
		blockDate  string
		startClock string
		endClock   string
		color      sql.NullString
		category   sql.NullString
		completed  bool
	)

	if err := sc.Scan(&b.ID, &b.Title, &blockDate, &startClock, &endClock, &color, &completed, &category); err != nil {
		return b, err
	}

	date, err := parseDate(blockDate)
	if err != nil {
		return b, fmt.Errorf("parsing block date: %w", err)
	}
	if b.Start, err = atClock(date, startClock); err != nil {
		return b, fmt.Errorf("parsing start time: %w", err)
	}
	if b.End, err = atClock(date, endClock); err != nil {
		return b, fmt.Errorf("parsing end time: %w", err)
	}

	b.Category = block.ParseCategory(category.String)
	b.Color = color.String
	if b.Color == "" {
		b.Color = b.Category.DefaultColor()
	}
	b.Completed = completed
	return b, nil
}

// atClock returns date at the HH:MM wall-clock time.
func atClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z"; keep the calendar date.
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		if t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
