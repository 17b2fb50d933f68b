package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes pretty-printed JSON. A single report is written as
// the bare analysis result; several become an array of source/result pairs.
type JSONFormatter struct{}

// Format encodes reports as JSON.
func (f *JSONFormatter) Format(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0].Result)
	}
	if reports == nil {
		reports = []Report{}
	}
	return enc.Encode(reports)
}
