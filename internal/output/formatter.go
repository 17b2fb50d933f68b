// Package output renders analysis results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/hemingway/internal/model"
)

// Report is one analyzed document.
type Report struct {
	Source string               `json:"source" yaml:"source"`
	Result model.AnalysisResult `json:"result" yaml:"result"`
}

// Formatter writes reports to w.
type Formatter interface {
	Format(w io.Writer, reports []Report) error
}

// Formats lists the accepted --format values.
var Formats = []string{"text", "json", "yaml"}

// New returns the formatter for a format name. A non-empty field selects a
// single value from every report instead of the whole result.
func New(format, field string, color bool) (Formatter, error) {
	if field != "" {
		return &FieldFormatter{Path: field}, nil
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return &TextFormatter{Color: color}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "yaml", "yml":
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected text, json or yaml)", format)
	}
}
