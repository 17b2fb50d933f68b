package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// FieldFormatter prints one dotted-path value per report. Scalars are
// printed bare; maps and lists as compact JSON. With several reports each
// line is prefixed by its source.
type FieldFormatter struct {
	Path string
}

// Format resolves Path against every report.
func (f *FieldFormatter) Format(w io.Writer, reports []Report) error {
	for _, r := range reports {
		v, ok := r.Result.Lookup(f.Path)
		if !ok {
			return fmt.Errorf("unknown field %q", f.Path)
		}
		s, err := scalar(v)
		if err != nil {
			return err
		}
		if len(reports) > 1 {
			s = r.Source + ": " + s
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func scalar(v any) (string, error) {
	switch v.(type) {
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode field: %w", err)
		}
		return string(data), nil
	default:
		return fmt.Sprint(v), nil
	}
}
