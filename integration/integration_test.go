package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/javiermolinar/dayline/internal/block"
	"github.com/javiermolinar/dayline/internal/db"
	"github.com/javiermolinar/dayline/internal/ics"
	"github.com/javiermolinar/dayline/internal/layout"
)

// openRepo creates a fresh database for each test with automatic cleanup.
// Rows are inserted through a second connection since the repository is
// read-only.
func openRepo(t *testing.T) (*db.SQLite, *sql.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open writer: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return repo, conn
}

// insertBlock is a helper to insert one row.
func insertBlock(t *testing.T, conn *sql.DB, id, title, date, start, end, category string) {
	t.Helper()
	_, err := conn.Exec(
		`INSERT INTO blocks (id, title, block_date, start_time, end_time, category) VALUES (?, ?, ?, ?, ?, ?)`,
		id, title, date, start, end, category)
	if err != nil {
		t.Fatalf("failed to insert block %s: %v", id, err)
	}
}

// mustParseDate parses a date string or fails the test.
func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", s, err)
	}
	return date
}

// assertNoLaneOverlap checks that blocks sharing a column never overlap.
func assertNoLaneOverlap(t *testing.T, ps []layout.Positioned) {
	t.Helper()
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			if ps[i].Column == ps[j].Column && layout.Overlaps(ps[i], ps[j]) {
				t.Errorf("%s and %s overlap in column %d", ps[i].ID, ps[j].ID, ps[i].Column)
			}
		}
	}
}

func TestSQLiteDayToLayout(t *testing.T) {
	repo, conn := openRepo(t)
	ctx := context.Background()

	insertBlock(t, conn, "a", "Planning", "2025-01-20", "09:00", "10:30", "work")
	insertBlock(t, conn, "b", "Sync", "2025-01-20", "09:30", "10:00", "meeting")
	insertBlock(t, conn, "c", "Review", "2025-01-20", "09:45", "11:00", "work")
	insertBlock(t, conn, "d", "Lunch", "2025-01-20", "12:00", "13:00", "food")
	insertBlock(t, conn, "e", "Next day", "2025-01-21", "09:00", "10:00", "work")

	blocks, err := repo.DaySource(mustParseDate(t, "2025-01-20")).Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(blocks))
	}

	g := layout.DefaultGrid()
	ps := layout.Layout(blocks, g)
	assertNoLaneOverlap(t, ps)

	columns := map[string]int{}
	for _, p := range ps {
		columns[p.ID] = p.Column
	}
	want := map[string]int{"a": 0, "b": 1, "c": 2, "d": 0}
	for id, col := range want {
		if columns[id] != col {
			t.Errorf("block %s: expected column %d, got %d", id, col, columns[id])
		}
	}

	gaps := layout.Gaps(ps, g, 60)
	if len(gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %+v", gaps)
	}
	if gaps[1].StartHour != 11 || gaps[1].EndHour != 12 {
		t.Errorf("expected 11-12 gap, got %+v", gaps[1])
	}
}

func TestICSRecurrenceToLayout(t *testing.T) {
	cal := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//dayline//integration//EN",
		"BEGIN:VEVENT",
		"UID:standup@example.com",
		"DTSTAMP:20250101T000000Z",
		"DTSTART:20250106T100000",
		"DTEND:20250106T101500",
		"RRULE:FREQ=WEEKLY;BYDAY=MO,WE,FR",
		"SUMMARY:Standup",
		"CATEGORIES:MEETING",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:planning@example.com",
		"DTSTAMP:20250101T000000Z",
		"DTSTART:20250108T093000",
		"DTEND:20250108T103000",
		"SUMMARY:Planning",
		"CATEGORIES:WORK",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")
	path := filepath.Join(t.TempDir(), "team.ics")
	if err := os.WriteFile(path, []byte(cal), 0o644); err != nil {
		t.Fatalf("failed to write calendar: %v", err)
	}

	tests := []struct {
		date    string
		titles  []string
		columns []int
	}{
		{date: "2025-01-06", titles: []string{"Standup"}, columns: []int{0}},
		{date: "2025-01-07", titles: nil},
		{date: "2025-01-08", titles: []string{"Planning", "Standup"}, columns: []int{0, 1}},
		{date: "2025-01-10", titles: []string{"Standup"}, columns: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			source := ics.FileSource{Path: path, Day: mustParseDate(t, tt.date)}
			blocks, err := source.Load(context.Background())
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			ps := layout.Layout(blocks, layout.DefaultGrid())
			if len(ps) != len(tt.titles) {
				t.Fatalf("expected %d blocks, got %d", len(tt.titles), len(ps))
			}
			for i, p := range ps {
				if p.Title != tt.titles[i] || p.Column != tt.columns[i] {
					t.Errorf("block %d: got %s col %d, want %s col %d", i, p.Title, p.Column, tt.titles[i], tt.columns[i])
				}
			}
			assertNoLaneOverlap(t, ps)
		})
	}
}

func TestFileSourceToLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.yaml")
	content := `
blocks:
  - id: "1"
    title: Focus
    start: "2025-01-06 08:00"
    end: "2025-01-06 08:10"
    category: work
  - id: "2"
    title: Coffee
    start: "2025-01-06 08:10"
    end: "2025-01-06 08:20"
    category: food
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	blocks, err := block.FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	ps := layout.Layout(blocks, layout.DefaultGrid())

	// Short blocks are drawn at the minimum height but lanes follow time,
	// so back-to-back blocks share a column even though their boxes overlap.
	for _, p := range ps {
		if p.Height != 50 {
			t.Errorf("%s: expected floored height 50, got %v", p.Title, p.Height)
		}
		if p.Column != 0 {
			t.Errorf("%s: expected column 0, got %d", p.Title, p.Column)
		}
	}
}
