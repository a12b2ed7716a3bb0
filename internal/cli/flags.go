package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waypath/core"
)

// Output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func addOutputFlag(fs *pflag.FlagSet, dst *string) {
	fs.StringVarP(dst, "output", "o", formatJSON, "result format: json or yaml")
}

func addGraphFlag(fs *pflag.FlagSet, dst *string) {
	fs.StringVarP(dst, "graph", "g", "", "path to graph JSON file")
}

// readGraph loads a graph JSON file.
func readGraph(path string) (*core.Graph, error) {
	if path == "" {
		return nil, fmt.Errorf("--graph is required")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	g, err := core.ReadJSON(fh)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}

	return g, nil
}

// render writes v in the requested format.
func render(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("unknown output format %q", format)
}
