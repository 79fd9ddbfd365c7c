package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-logr/logr"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
)

// App encapsulates one run's configuration, output and logger.
type App struct {
	outW io.Writer
	log  logr.Logger
	cfg  *config.Config
}

// New returns an App that writes its report to outW and its logs to logW.
func New(outW, logW io.Writer, cfg *config.Config) *App {
	log := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	log.V(1).Info("Logger configured successfully.")

	return &App{
		outW: outW,
		log:  log,
		cfg:  cfg,
	}
}

// Run loads, optionally validates, and solves the configured maze, then
// writes the report. An unreachable goal is reported, not returned as an
// error.
func (a *App) Run(ctx context.Context) error {
	m := maze.New(
		maze.WithLogger(a.log.WithName("maze")),
		maze.WithMaxCells(a.cfg.MaxCells),
	)
	if err := m.LoadFile(a.cfg.Maze); err != nil {
		return fmt.Errorf("failed to load maze: %w", err)
	}
	if err := a.applyEndpoints(m); err != nil {
		return err
	}
	if a.cfg.Dump {
		spew.Fdump(a.outW, newDumpView(m))
	}

	var asym []error
	if a.cfg.CheckSymmetry {
		asym = a.checkSymmetry(m)
	}

	opts := []bfs.Option{bfs.WithContext(ctx)}
	if a.cfg.Detached {
		opts = append(opts, bfs.WithDetachedState())
	}
	res, err := bfs.Solve(m, opts...)
	if err != nil {
		return fmt.Errorf("failed to solve maze: %w", err)
	}
	a.log.Info("maze solved", "maze", a.cfg.Maze, "found", res.Found, "length", res.Len())

	rep := newReport(a.cfg.Maze, m, res, asym)
	if a.cfg.Format == "yaml" {
		return a.writeYAML(rep)
	}
	return a.writeText(m, res, rep)
}

// checkSymmetry validates m once and logs every asymmetric pair it finds.
// The result is non-nil so the report can tell a clean check from no check.
func (a *App) checkSymmetry(m *maze.Maze) []error {
	errs := multierr.Errors(m.Validate())
	for _, e := range errs {
		var ae *maze.AsymmetryError
		if errors.As(e, &ae) {
			a.log.Info("neighbor asymmetry", "maze", a.cfg.Maze, "from", ae.From, "to", ae.To)
		}
	}
	if errs == nil {
		errs = []error{}
	}
	return errs
}

// applyEndpoints moves start and goal when the configuration overrides them.
func (a *App) applyEndpoints(m *maze.Maze) error {
	if a.cfg.Start != maze.NoCell {
		if err := m.SetStart(a.cfg.Start); err != nil {
			return fmt.Errorf("failed to override start: %w", err)
		}
	}
	if a.cfg.Goal != maze.NoCell {
		if err := m.SetGoal(a.cfg.Goal); err != nil {
			return fmt.Errorf("failed to override goal: %w", err)
		}
	}
	return nil
}

func (a *App) writeYAML(rep Report) error {
	enc := yaml.NewEncoder(a.outW)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

func (a *App) writeText(m *maze.Maze, res *bfs.Result, rep Report) error {
	if a.cfg.ShowMaze {
		var err error
		if a.cfg.Overlay && res.Found {
			err = render.Overlay(a.outW, m, res.Path)
		} else {
			err = render.Maze(a.outW, m)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(a.outW)
	}
	if err := render.Solution(a.outW, m, res.Path); err != nil {
		return err
	}
	for _, d := range rep.Defects {
		fmt.Fprintf(a.outW, "defect: %s\n", d)
	}
	if rep.Consistent != nil {
		fmt.Fprintf(a.outW, "consistent: %t\n", *rep.Consistent)
		for _, s := range rep.Asymmetries {
			fmt.Fprintf(a.outW, "  %s\n", s)
		}
		fmt.Fprintf(a.outW, "loops: %d\nperfect: %t\n", rep.Loops, rep.Perfect)
	}
	return nil
}
