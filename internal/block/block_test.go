package block

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{input: "fitness", want: CategoryFitness},
		{input: "personal", want: CategoryPersonal},
		{input: "food", want: CategoryFood},
		{input: "work", want: CategoryWork},
		{input: "meeting", want: CategoryMeeting},
		{input: " Meeting ", want: CategoryMeeting},
		{input: "", want: CategoryOther},
		{input: "gardening", want: CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseCategory(tt.input); got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategoryIcon(t *testing.T) {
	seen := make(map[string]Category)
	for _, c := range []Category{CategoryFitness, CategoryPersonal, CategoryFood, CategoryWork, CategoryMeeting} {
		icon := c.Icon()
		if icon == "" {
			t.Fatalf("%q has no icon", c)
		}
		if prev, ok := seen[icon]; ok && c != CategoryMeeting {
			t.Errorf("%q shares icon %q with %q", c, icon, prev)
		}
		seen[icon] = c
	}

	// Unknown categories use the meeting star.
	if got, want := Category("unknown").Icon(), CategoryMeeting.Icon(); got != want {
		t.Errorf("unknown icon = %q, want %q", got, want)
	}
	if got, want := CategoryOther.Icon(), CategoryMeeting.Icon(); got != want {
		t.Errorf("other icon = %q, want %q", got, want)
	}
}

func TestSample(t *testing.T) {
	blocks := Sample()
	if len(blocks) != 5 {
		t.Fatalf("len(Sample()) = %d, want 5", len(blocks))
	}

	ids := make(map[string]bool)
	for _, b := range blocks {
		if ids[b.ID] {
			t.Errorf("duplicate id %q", b.ID)
		}
		ids[b.ID] = true
		if !b.Start.Before(b.End) {
			t.Errorf("block %q: start %v not before end %v", b.ID, b.Start, b.End)
		}
	}

	if !blocks[0].Completed {
		t.Error("expected morning workout to be completed")
	}
	if got := blocks[3].Duration(); got != time.Hour {
		t.Errorf("project planning duration = %v, want 1h", got)
	}
}

func TestStatic_LoadReturnsCopy(t *testing.T) {
	src := Static(Sample())
	first, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	first[0].Title = "changed"

	second, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if second[0].Title != "Morning workout" {
		t.Errorf("source mutated through returned slice: %q", second[0].Title)
	}
}

func TestFileSource_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.toml")
	content := `
[[blocks]]
id = "a"
title = "Deep work"
start = "2025-01-06 09:00"
end = "2025-01-06 11:30"
color = "work"
category = "work"

[[blocks]]
title = "Lunch"
start = "2025-01-06T12:00"
end = "2025-01-06T12:45"
completed = true
category = "snack"
`
	writeFile(t, path, content)

	blocks, err := FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}

	want := time.Date(2025, 1, 6, 9, 0, 0, 0, time.Local)
	if !blocks[0].Start.Equal(want) {
		t.Errorf("start = %v, want %v", blocks[0].Start, want)
	}
	if blocks[0].Category != CategoryWork {
		t.Errorf("category = %q, want work", blocks[0].Category)
	}
	if blocks[1].ID != "file-2" {
		t.Errorf("generated id = %q, want file-2", blocks[1].ID)
	}
	if blocks[1].Category != CategoryOther {
		t.Errorf("unknown category = %q, want other", blocks[1].Category)
	}
	if !blocks[1].Completed {
		t.Error("expected completed block")
	}
}

func TestFileSource_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	content := `
blocks:
  - id: standup
    title: Standup meeting
    start: "2025-01-06 10:00"
    end: "2025-01-06 10:15"
    category: meeting
`
	writeFile(t, path, content)

	blocks, err := FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	if blocks[0].Title != "Standup meeting" {
		t.Errorf("title = %q", blocks[0].Title)
	}
	if blocks[0].Duration() != 15*time.Minute {
		t.Errorf("duration = %v, want 15m", blocks[0].Duration())
	}
	if blocks[0].Color != "meeting" {
		t.Errorf("color = %q, want category default meeting", blocks[0].Color)
	}
}

func TestCategoryDefaultColor(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryFitness, "workout"},
		{CategoryPersonal, "water"},
		{CategoryFood, "food"},
		{CategoryWork, "work"},
		{CategoryMeeting, "meeting"},
		{CategoryOther, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := tt.category.DefaultColor(); got != tt.want {
				t.Errorf("DefaultColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileSource_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "blocks.json")
		writeFile(t, path, "{}")
		_, err := FileSource{Path: path}.Load(context.Background())
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("got %v, want %v", err, ErrUnsupportedFormat)
		}
	})

	t.Run("missing time", func(t *testing.T) {
		path := filepath.Join(dir, "missing.toml")
		writeFile(t, path, "[[blocks]]\ntitle = \"x\"\nstart = \"2025-01-06 09:00\"\n")
		_, err := FileSource{Path: path}.Load(context.Background())
		if !errors.Is(err, ErrMissingTime) {
			t.Errorf("got %v, want %v", err, ErrMissingTime)
		}
	})

	t.Run("invalid time", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yml")
		writeFile(t, path, "blocks:\n  - start: tomorrow\n    end: later\n")
		_, err := FileSource{Path: path}.Load(context.Background())
		if !errors.Is(err, ErrInvalidTime) {
			t.Errorf("got %v, want %v", err, ErrInvalidTime)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := FileSource{Path: filepath.Join(dir, "nope.toml")}.Load(context.Background())
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("got %v, want not exist", err)
		}
	})
}

func TestParseTime_RFC3339(t *testing.T) {
	got, err := ParseTime("2025-01-06T09:00:00Z")
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	want := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
