// Package cli turns mazesolve's command-line arguments into a validated
// run configuration.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvmaze/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Values come from, in increasing priority: defaults, the -config file,
// explicitly set flags, and the positional MAZE_PATH.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
mazesolve - shortest path through a wall-code maze by breadth-first search.

Usage:
  mazesolve [options] [MAZE_PATH]

Arguments:
  MAZE_PATH
    Path to a maze file: rows cols, rows*cols walls codes, start goal.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Default()
	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	mazeFlag := flagSet.String("maze", "", "Path to the maze file.")
	mFlag := flagSet.String("m", "", "Path to the maze file (shorthand).")
	formatFlag := flagSet.String("format", defaults.Format, "Report format. Options: 'text' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	validateFlag := flagSet.Bool("validate", defaults.CheckSymmetry, "Check neighbor symmetry after loading.")
	showFlag := flagSet.Bool("show-maze", defaults.ShowMaze, "Draw the maze in text reports.")
	overlayFlag := flagSet.Bool("overlay", defaults.Overlay, "Mark the solution on the maze drawing.")
	detachedFlag := flagSet.Bool("detached", defaults.Detached, "Solve on a side table instead of the maze cells.")
	dumpFlag := flagSet.Bool("dump", defaults.Dump, "Dump the loaded maze structure for debugging.")
	maxCellsFlag := flagSet.Int("max-cells", defaults.MaxCells, "Largest rows*cols accepted; 0 disables the limit.")
	startFlag := flagSet.Int("start", defaults.Start, "Override the start cell; -1 keeps the file's.")
	goalFlag := flagSet.Int("goal", defaults.Goal, "Override the goal cell; -1 keeps the file's.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := defaults
	if *configFlag != "" {
		loaded, err := config.LoadFile(*configFlag, cfg)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
		slog.Debug("Configuration file loaded.", "path", *configFlag)
	}

	// Only flags the user actually set override the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "maze", "m":
			// handled below with the positional argument
		case "format":
			cfg.Format = strings.ToLower(*formatFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "validate":
			cfg.CheckSymmetry = *validateFlag
		case "show-maze":
			cfg.ShowMaze = *showFlag
		case "overlay":
			cfg.Overlay = *overlayFlag
		case "detached":
			cfg.Detached = *detachedFlag
		case "dump":
			cfg.Dump = *dumpFlag
		case "max-cells":
			cfg.MaxCells = *maxCellsFlag
		case "start":
			cfg.Start = *startFlag
		case "goal":
			cfg.Goal = *goalFlag
		}
	})

	if *mazeFlag != "" {
		cfg.Maze = *mazeFlag
	} else if *mFlag != "" {
		cfg.Maze = *mFlag
	} else if flagSet.NArg() > 0 {
		cfg.Maze = flagSet.Arg(0)
	}
	slog.Debug("Maze path determined.", "path", cfg.Maze)

	if cfg.Maze == "" {
		slog.Debug("No maze path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
