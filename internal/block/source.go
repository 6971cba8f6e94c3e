package block

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Source errors.
var (
	ErrUnsupportedFormat = errors.New("block file must be .toml, .yaml or .yml")
	ErrMissingTime       = errors.New("block start and end must be set")
	ErrInvalidTime       = errors.New("block time must be YYYY-MM-DD HH:MM or RFC3339")
)

// Source supplies the blocks shown by the timeline.
type Source interface {
	// Load returns the current block list. Callers own the returned slice.
	Load(ctx context.Context) ([]TimeBlock, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]TimeBlock, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context) ([]TimeBlock, error) {
	return f(ctx)
}

// Static is a fixed in-memory block list.
type Static []TimeBlock

// Load returns a copy of the list.
func (s Static) Load(_ context.Context) ([]TimeBlock, error) {
	return slices.Clone([]TimeBlock(s)), nil
}

// FileSource reads blocks from a TOML or YAML file. The file is only read.
//
//	[[blocks]]
//	id = "1"
//	title = "Morning workout"
//	start = "2025-01-06 07:45"
//	end = "2025-01-06 08:15"
//	color = "workout"
//	category = "fitness"
type FileSource struct {
	Path string
}

type fileBlock struct {
	ID        string `toml:"id" yaml:"id"`
	Title     string `toml:"title" yaml:"title"`
	Start     string `toml:"start" yaml:"start"`
	End       string `toml:"end" yaml:"end"`
	Color     string `toml:"color" yaml:"color"`
	Completed bool   `toml:"completed" yaml:"completed"`
	Category  string `toml:"category" yaml:"category"`
}

type fileDoc struct {
	Blocks []fileBlock `toml:"blocks" yaml:"blocks"`
}

// Load parses the file and converts each entry into a TimeBlock.
func (s FileSource) Load(_ context.Context) ([]TimeBlock, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading block file: %w", err)
	}

	var doc fileDoc
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing block file: %w", err)
	}

	blocks := make([]TimeBlock, 0, len(doc.Blocks))
	for i, fb := range doc.Blocks {
		b, err := fb.toBlock(i)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func (fb fileBlock) toBlock(index int) (TimeBlock, error) {
	if fb.Start == "" || fb.End == "" {
		return TimeBlock{}, ErrMissingTime
	}
	start, err := ParseTime(fb.Start)
	if err != nil {
		return TimeBlock{}, fmt.Errorf("start: %w", err)
	}
	end, err := ParseTime(fb.End)
	if err != nil {
		return TimeBlock{}, fmt.Errorf("end: %w", err)
	}

	id := fb.ID
	if id == "" {
		id = fmt.Sprintf("file-%d", index+1)
	}

	category := ParseCategory(fb.Category)
	color := fb.Color
	if color == "" {
		color = category.DefaultColor()
	}

	return TimeBlock{
		ID:        id,
		Title:     fb.Title,
		Start:     start,
		End:       end,
		Color:     color,
		Completed: fb.Completed,
		Category:  category,
	}, nil
}

var timeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseTime parses a local wall-clock timestamp. RFC3339 values keep their
// offset and are converted to local time.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTime
}
