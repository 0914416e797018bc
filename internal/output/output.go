// Package output serializes command results to stdout.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ScanElement is one labeled element in the `scan` command's output.
type ScanElement struct {
	Label string  `yaml:"label" json:"label"`
	Role  string  `yaml:"role"  json:"role"`
	X     float64 `yaml:"x"     json:"x"`
	Y     float64 `yaml:"y"     json:"y"`
	W     float64 `yaml:"w"     json:"w"`
	H     float64 `yaml:"h"     json:"h"`
	CX    float64 `yaml:"cx"    json:"cx"`
	CY    float64 `yaml:"cy"    json:"cy"`
}

// ScanResult is the top-level output of the `scan` command.
type ScanResult struct {
	Cycle    string        `yaml:"cycle"    json:"cycle"`
	TS       int64         `yaml:"ts"       json:"ts"`
	Count    int           `yaml:"count"    json:"count"`
	Elements []ScanElement `yaml:"elements" json:"elements"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
