package cli

import (
	"fmt"
	"io"

	toon "github.com/toon-format/toon-go"

	"github.com/mibar/distinct/internal/values"
)

// ToonFormatter renders values as a single-column TOON table:
// type: <kind> followed by values[N]{value}: and one indented row per value.
type ToonFormatter struct{}

func (f *ToonFormatter) FormatValues(w io.Writer, kind values.Kind, vals []any) error {
	if len(vals) == 0 {
		_, err := fmt.Fprintf(w, "type: %s\nvalues[0]{value}:\n", kind)
		return err
	}

	rows := make([]toon.Object, len(vals))
	for i, v := range vals {
		rows[i] = toon.NewObject(toon.Field{Key: "value", Value: v})
	}
	doc := toon.NewObject(
		toon.Field{Key: "type", Value: string(kind)},
		toon.Field{Key: "values", Value: rows},
	)
	result, err := toon.MarshalString(doc)
	if err != nil {
		return fmt.Errorf("toon marshal error: %w", err)
	}
	_, err = fmt.Fprintln(w, result)
	return err
}
