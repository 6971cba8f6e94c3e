// Package ui implements the dayline command line.
package ui

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayline/internal/config"
	"github.com/javiermolinar/dayline/internal/dateutil"
	"github.com/javiermolinar/dayline/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	log    *logrus.Logger

	// Global flags
	debug  bool
	date   string
	file   string
	ics    string
	dbPath string

	closers []func() error
	now     func() time.Time
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg, log: newLogger(), now: time.Now}

	a.root = &cobra.Command{
		Use:   "dayline",
		Short: "A terminal day timeline for time blocks",
		Long: `dayline renders a day of time blocks against an hourly grid.

Overlapping blocks are placed side by side, free time is marked and a
live marker follows the current time. Blocks come from a TOML or YAML
file, an iCalendar file, a sqlite database or the built-in sample.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := a.selectedDay()
			if err != nil {
				return err
			}
			// Calendar warnings would corrupt the alternate screen.
			a.log.SetLevel(logrus.ErrorLevel)
			source, err := a.openSource(day)
			if err != nil {
				return err
			}
			return tui.RunWithDebug(source, a.config, a.debug, tui.WithSelectedDate(day))
		},
	}

	// Add global flags
	flags := a.root.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	flags.StringVar(&a.date, "date", "", "Day to show (YYYY-MM-DD, today, tomorrow, monday, next-friday...)")
	flags.StringVar(&a.file, "file", "", "Read blocks from a TOML or YAML file")
	flags.StringVar(&a.ics, "ics", "", "Read blocks from an iCalendar file")
	flags.StringVar(&a.dbPath, "db", "", "Read blocks from a sqlite database")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dayline %s (commit: %s)\n", Version, Commit)
		},
	}
}

// selectedDay parses the --date flag relative to now.
func (a *App) selectedDay() (time.Time, error) {
	day, err := dateutil.ParseRelativeDate(a.date, a.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("--date: %w", err)
	}
	return day, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases sources opened by the last command.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
