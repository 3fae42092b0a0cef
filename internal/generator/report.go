package generator

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format determines how summaries are printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Status is the outcome for one generated file.
type Status string

const (
	StatusWritten   Status = "written"
	StatusUnchanged Status = "unchanged"
	StatusStale     Status = "stale"
)

type FileResult struct {
	Path    string `json:"path"`
	Target  string `json:"target"`
	Methods int    `json:"methods"`
	Status  Status `json:"status"`
}

// Summary aggregates outcomes across one generator run.
type Summary struct {
	Total     int          `json:"total"`
	Written   int          `json:"written"`
	Unchanged int          `json:"unchanged"`
	Stale     int          `json:"stale"`
	Methods   int          `json:"methods"`
	Files     []FileResult `json:"files,omitempty"`
}

// Add records one file result into the summary.
func (s *Summary) Add(result FileResult) {
	s.Total++
	s.Methods += result.Methods
	s.Files = append(s.Files, result)

	switch result.Status {
	case StatusWritten:
		s.Written++
	case StatusUnchanged:
		s.Unchanged++
	case StatusStale:
		s.Stale++
	}
}

// HasStale reports whether a check run found outdated files.
func (s Summary) HasStale() bool {
	return s.Stale > 0
}

// Write prints the summary in the requested format.
func (s Summary) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s)
	case FormatText, "":
		writef := func(format string, args ...any) error {
			_, err := fmt.Fprintf(w, format, args...)
			return err
		}

		lines := []struct {
			format string
			args   []any
		}{
			{"Generation summary\n", nil},
			{"  files: %d\n", []any{s.Total}},
			{"  methods: %d\n", []any{s.Methods}},
			{"  written: %d\n", []any{s.Written}},
			{"  unchanged: %d\n", []any{s.Unchanged}},
			{"  stale: %d\n", []any{s.Stale}},
		}
		for _, line := range lines {
			if err := writef(line.format, line.args...); err != nil {
				return err
			}
		}

		if s.Stale == 0 {
			return nil
		}

		if err := writef("\nStale files (run go generate ./...):\n"); err != nil {
			return err
		}
		for _, f := range s.Files {
			if f.Status != StatusStale {
				continue
			}
			if err := writef("  - %s\n", f.Path); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}
