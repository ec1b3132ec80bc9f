package cli

import (
	"encoding/json"
	"io"

	"github.com/mibar/distinct/internal/values"
)

type JSONFormatter struct {
	Indent bool
}

// FormatValues writes {"type":...,"count":N,"values":[...]} followed by a newline.
func (f *JSONFormatter) FormatValues(w io.Writer, kind values.Kind, vals []any) error {
	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(newDocument(kind, vals))
}
