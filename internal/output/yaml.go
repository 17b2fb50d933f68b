package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes YAML with the same shape as JSONFormatter.
type YAMLFormatter struct{}

// Format encodes reports as YAML.
func (f *YAMLFormatter) Format(w io.Writer, reports []Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	var v any = reports
	if len(reports) == 1 {
		v = reports[0].Result
	} else if reports == nil {
		v = []Report{}
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
