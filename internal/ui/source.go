package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javiermolinar/dayline/internal/block"
	"github.com/javiermolinar/dayline/internal/config"
	"github.com/javiermolinar/dayline/internal/db"
	"github.com/javiermolinar/dayline/internal/ics"
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// openSource picks the block source for day: the --db, --ics and --file
// flags in that order, then the [source] config section, then the sample.
func (a *App) openSource(day time.Time) (block.Source, error) {
	kind, path := a.config.Source.Kind, a.config.Source.Path
	switch {
	case a.dbPath != "":
		kind, path = config.SourceSQLite, a.dbPath
	case a.ics != "":
		kind, path = config.SourceICS, a.ics
	case a.file != "":
		kind, path = config.SourceFile, a.file
	}

	log := a.log.WithField("source", kind)
	switch kind {
	case config.SourceSQLite:
		repo, err := db.New(path)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		a.closers = append(a.closers, repo.Close)
		return repo.DaySource(day), nil
	case config.SourceICS:
		return ics.FileSource{Path: path, Day: day, Log: log}, nil
	case config.SourceFile:
		return block.FileSource{Path: path}, nil
	case config.SourceSample, "":
		return block.Static(block.Sample()), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", kind)
	}
}
