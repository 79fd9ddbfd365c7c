package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/multierr"

	"github.com/katalvlaran/lvmaze/maze"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds everything a single mazesolve run needs.
type Config struct {
	Maze          string `hcl:"maze,optional"`
	Format        string `hcl:"format,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	LogFormat     string `hcl:"log_format,optional"`
	CheckSymmetry bool   `hcl:"validate,optional"`
	ShowMaze      bool   `hcl:"show_maze,optional"`
	Overlay       bool   `hcl:"overlay,optional"`
	Detached      bool   `hcl:"detached,optional"`
	Dump          bool   `hcl:"dump,optional"`
	MaxCells      int    `hcl:"max_cells,optional"`
	// Start and Goal override the endpoints read from the maze file;
	// maze.NoCell keeps them.
	Start int `hcl:"start,optional"`
	Goal  int `hcl:"goal,optional"`
}

// Default returns the configuration used when neither a file nor a flag
// says otherwise.
func Default() Config {
	return Config{
		Format:    "text",
		LogLevel:  "info",
		LogFormat: "text",
		ShowMaze:  true,
		MaxCells:  maze.DefaultMaxCells,
		Start:     maze.NoCell,
		Goal:      maze.NoCell,
	}
}

// LoadFile decodes the HCL file at path on top of base. A relative maze
// path in the file is resolved against the file's directory.
func LoadFile(path string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(file, path, base)
}

// Decode parses src as HCL named filename and decodes it on top of base.
func Decode(src []byte, filename string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return decode(file, filename, base)
}

func decode(file *hcl.File, filename string, base Config) (Config, error) {
	cfg := base
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return base, fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}
	if cfg.Maze != base.Maze && cfg.Maze != "" && !filepath.IsAbs(cfg.Maze) {
		cfg.Maze = filepath.Join(filepath.Dir(filename), cfg.Maze)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.Maze == "" {
		err = multierr.Append(err, fmt.Errorf("%w: maze path is required", ErrInvalid))
	}
	switch c.Format {
	case "text", "yaml":
	default:
		err = multierr.Append(err, fmt.Errorf("%w: format must be 'text' or 'yaml', got %q", ErrInvalid, c.Format))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("%w: log_level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalid, c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("%w: log_format must be 'text' or 'json', got %q", ErrInvalid, c.LogFormat))
	}
	if c.MaxCells < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: max_cells must not be negative", ErrInvalid))
	}
	if c.Start < maze.NoCell || c.Goal < maze.NoCell {
		err = multierr.Append(err, fmt.Errorf("%w: start and goal must be cell indices or -1", ErrInvalid))
	}
	return err
}
