package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mibar/distinct/internal/values"
)

// OutputFormat represents the output format for normalized values.
type OutputFormat string

const (
	// FormatText prints one value per line.
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
	// FormatTOON is the TOON (Token-Oriented Object Notation) format.
	FormatTOON OutputFormat = "toon"
)

// Formatter writes a normalized sequence in one output format.
type Formatter interface {
	FormatValues(w io.Writer, kind values.Kind, vals []any) error
}

// NewFormatter returns the Formatter for name. pretty only affects JSON.
func NewFormatter(name string, pretty bool) (Formatter, error) {
	switch OutputFormat(strings.ToLower(name)) {
	case FormatText:
		return &TextFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{Indent: pretty}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatTOON:
		return &ToonFormatter{}, nil
	}
	return nil, fmt.Errorf("invalid output format: %q (expected \"text\", \"json\", \"yaml\" or \"toon\")", name)
}

// document is the structured shape shared by the JSON and YAML formats.
type document struct {
	Type   values.Kind `json:"type" yaml:"type"`
	Count  int         `json:"count" yaml:"count"`
	Values []any       `json:"values" yaml:"values"`
}

func newDocument(kind values.Kind, vals []any) document {
	if vals == nil {
		vals = []any{}
	}
	return document{Type: kind, Count: len(vals), Values: vals}
}

type TextFormatter struct{}

func (f *TextFormatter) FormatValues(w io.Writer, _ values.Kind, vals []any) error {
	for _, v := range vals {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
