package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayline/internal/config"
	"github.com/javiermolinar/dayline/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var initFile bool
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration file path and the effective configuration
(file values plus DAYLINE_* environment overrides) as TOML.

With --init, write the defaults to the file when it does not exist yet.

Example:
  dayline config --init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.DefaultConfigPath()
			}
			return runConfig(cmd, a.config, path, initFile)
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Create the config file with default values if missing")
	cmd.Flags().StringVar(&path, "path", "", "Config file path (default "+config.DefaultConfigPath()+")")
	return cmd
}

// runConfig prints cfg, or the config loaded from path when path is not the
// file cfg came from.
func runConfig(cmd *cobra.Command, cfg *config.Config, path string, initFile bool) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config file: %s\n", path)

	_, statErr := os.Stat(path)
	missing := errors.Is(statErr, fs.ErrNotExist)
	switch {
	case missing && initFile:
		if err := config.Default().SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s with default values\n", path)
	case missing:
		fmt.Fprintln(out, "(not found, using defaults)")
	case statErr != nil:
		return fmt.Errorf("checking config: %w", statErr)
	}

	if path != config.DefaultConfigPath() || cfg == nil {
		loaded, err := config.LoadFrom(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprintf(out, "Themes: %s\n\n", strings.Join(theme.Available(), ", "))
	_, err = out.Write(data)
	return err
}
