package cli

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mibar/distinct/internal/values"
)

type YAMLFormatter struct{}

func (f *YAMLFormatter) FormatValues(w io.Writer, kind values.Kind, vals []any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(kind, vals)); err != nil {
		return err
	}
	return enc.Close()
}
