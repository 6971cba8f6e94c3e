package integration

import (
	"context"
	"testing"
	"time"

	"github.com/javiermolinar/dayline/internal/dateutil"
	"github.com/javiermolinar/dayline/internal/layout"
)

func TestTodayRoundTripsThroughSQLite(t *testing.T) {
	repo, conn := openRepo(t)

	now := time.Now()
	t.Logf("Current time: %v", now)
	t.Logf("Current location: %v", now.Location())

	today := dateutil.TruncateToDay(now)
	insertBlock(t, conn, "t", "Today", today.Format("2006-01-02"), "10:00", "11:00", "work")

	blocks, err := repo.DaySource(now).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block for today, got %d", len(blocks))
	}

	b := blocks[0]
	t.Logf("Block start: %v (location: %v)", b.Start, b.Start.Location())
	if !dateutil.IsToday(b.Start, now) {
		t.Errorf("Block start %v is not today", b.Start)
	}
	if b.Start.Hour() != 10 || b.End.Hour() != 11 {
		t.Errorf("Expected wall-clock 10:00-11:00, got %s-%s", b.Start.Format("15:04"), b.End.Format("15:04"))
	}

	g := layout.DefaultGrid()
	ps := layout.Layout(blocks, g)
	if ps[0].Top != 210 {
		t.Errorf("Expected top 210, got %v", ps[0].Top)
	}

	at := time.Date(today.Year(), today.Month(), today.Day(), 10, 30, 0, 0, time.Local)
	if !g.IndicatorVisible(b.Start, at) {
		t.Errorf("Indicator should be visible at %v on the block's day", at)
	}
}
