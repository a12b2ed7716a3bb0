// Package config loads waypath problem files.
//
// A problem file is YAML naming the graph file, the start, finish and
// waypoints, the optimizer parameters and the log settings:
//
//	graph: graph.json
//	start: A
//	finish: K
//	waypoints: [G, D]
//	optimizer:
//	  population_size: 100
//	  generations: 1000
//	  seed: 0
//	log:
//	  level: info
//	  format: text
//
// Keys left out keep their defaults and explicit zeros are kept as written.
// Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/genetic"
	"github.com/katalvlaran/waypath/route"
)

// Sentinel errors.
var (
	// ErrInvalidConfig wraps every decoding and validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNoGraph is returned by LoadGraph when the file names no graph.
	ErrNoGraph = errors.New("config: no graph file configured")
)

// File is a decoded problem file.
type File struct {
	// Graph is the path of the graph JSON file, relative to the problem file.
	Graph string `json:"graph" yaml:"graph"`

	Start     string   `json:"start" yaml:"start"`
	Finish    string   `json:"finish" yaml:"finish"`
	Waypoints []string `json:"waypoints" yaml:"waypoints"`

	Optimizer genetic.Config `json:"optimizer" yaml:"optimizer"`
	Log       Log            `json:"log" yaml:"log"`

	// dir is the directory relative paths resolve against.
	dir string
}

// Log selects the logrus level and formatter.
type Log struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default returns a File with default optimizer and log settings and no
// problem.
func Default() File {
	return File{
		Optimizer: genetic.DefaultConfig(),
		Log:       Log{Level: "info", Format: "text"},
		dir:       ".",
	}
}

// Load reads and validates the problem file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer fh.Close()

	return Parse(fh, filepath.Dir(path))
}

// Parse decodes a problem file from r. Relative graph paths resolve
// against dir. An empty document yields the defaults, which fail Validate
// because start and finish are required.
func Parse(r io.Reader, dir string) (*File, error) {
	f := Default()
	f.dir = dir

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks the problem, the optimizer parameters and the log settings.
func (f *File) Validate() error {
	if f.Start == "" || f.Finish == "" {
		return fmt.Errorf("%w: start and finish are required", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(f.Waypoints))
	for _, w := range f.Waypoints {
		if w == "" {
			return fmt.Errorf("%w: empty waypoint", ErrInvalidConfig)
		}
		if _, dup := seen[w]; dup {
			return fmt.Errorf("%w: waypoint %q listed twice", ErrInvalidConfig, w)
		}
		seen[w] = struct{}{}
	}
	if err := f.Optimizer.Validate(); err != nil {
		return fmt.Errorf("%w: optimizer: %w", ErrInvalidConfig, err)
	}
	if _, err := f.Log.level(); err != nil {
		return fmt.Errorf("%w: log: %v", ErrInvalidConfig, err)
	}
	if _, err := f.Log.formatter(); err != nil {
		return fmt.Errorf("%w: log: %v", ErrInvalidConfig, err)
	}

	return nil
}

// GraphPath returns the graph path resolved against the problem file's
// directory. Absolute paths are returned unchanged.
func (f *File) GraphPath() string {
	if f.Graph == "" || filepath.IsAbs(f.Graph) {
		return f.Graph
	}
	return filepath.Join(f.dir, f.Graph)
}

// LoadGraph reads the configured graph file.
func (f *File) LoadGraph() (*core.Graph, error) {
	path := f.GraphPath()
	if path == "" {
		return nil, ErrNoGraph
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open graph: %w", err)
	}
	defer fh.Close()

	g, err := core.ReadJSON(fh)
	if err != nil {
		return nil, fmt.Errorf("config: read graph %s: %w", path, err)
	}

	return g, nil
}

// Problem returns the route problem described by the file.
func (f *File) Problem() route.Problem {
	return route.Problem{
		Start:     f.Start,
		Finish:    f.Finish,
		Waypoints: append([]string(nil), f.Waypoints...),
	}
}

// Apply configures logger with the level and formatter.
func (l Log) Apply(logger *log.Logger) error {
	lvl, err := l.level()
	if err != nil {
		return err
	}
	fmtr, err := l.formatter()
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	logger.SetFormatter(fmtr)

	return nil
}

func (l Log) level() (log.Level, error) {
	if l.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(l.Level)
}

func (l Log) formatter() (log.Formatter, error) {
	switch strings.ToLower(l.Format) {
	case "", "text":
		return &log.TextFormatter{}, nil
	case "json":
		return &log.JSONFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown log format %q", l.Format)
}
