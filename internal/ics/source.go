package ics

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javiermolinar/dayline/internal/block"
	"github.com/javiermolinar/dayline/internal/dateutil"
)

// FileSource reads one day of blocks from a local .ics file.
type FileSource struct {
	Path string
	Day  time.Time // any time on the day to expand
	Log  *logrus.Entry
}

// Load parses the file and expands its events over Day.
func (s FileSource) Load(ctx context.Context) ([]block.TimeBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := entryOrDiscard(s.Log).WithField("path", s.Path)

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening calendar: %w", err)
	}
	defer f.Close()

	events, err := Parse(f, log)
	if err != nil {
		return nil, err
	}

	from := dateutil.TruncateToDay(s.Day)
	blocks, err := Expand(events, from, dateutil.AddDays(from, 1), log)
	if err != nil {
		return nil, err
	}
	log.WithField("blocks", len(blocks)).Debug("calendar expanded")
	return blocks, nil
}

var _ block.Source = FileSource{}
