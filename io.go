// File: argsparser/io.go

package argsparser

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding used by Encode
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Encode writes the parsed values to w as a flat table of strings.
// Keys are written in sorted order, so output is deterministic.
func (a *Args) Encode(w io.Writer, format Format) error {
	values := a.Map()

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(values); err != nil {
			return fmt.Errorf("failed to encode arguments as toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(values); err != nil {
			return fmt.Errorf("failed to encode arguments as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml encoder: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(values); err != nil {
			return fmt.Errorf("failed to encode arguments as json: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
	return nil
}

// Dump writes the parsed values to w in TOML.
func (a *Args) Dump(w io.Writer) error {
	return a.Encode(w, FormatTOML)
}

// Debug returns every value along with where it came from.
func (a *Args) Debug() string {
	var b strings.Builder
	b.WriteString("Parsed arguments:\n")
	for _, name := range a.Names() {
		source := "default"
		if a.IsExplicit(name) {
			source = "cli"
		}
		fmt.Fprintf(&b, "  %s = %q (%s)\n", name, a.values[name], source)
	}
	return b.String()
}
