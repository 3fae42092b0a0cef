package generator

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Write puts files under dir. Files whose content is already current are
// left alone. In check mode nothing is written and outdated or missing
// files are reported as stale.
func Write(files []File, dir string, check bool) (Summary, error) {
	var summary Summary

	if !check {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return summary, fmt.Errorf("create output directory: %w", err)
		}
	}

	for _, f := range files {
		filename := filepath.Join(dir, f.Name)
		result := FileResult{Path: filename, Target: f.Target, Methods: f.Methods}

		status, err := writeFile(filename, f.Content, check)
		if err != nil {
			return summary, err
		}
		result.Status = status
		summary.Add(result)
	}

	return summary, nil
}

func writeFile(filename string, content []byte, check bool) (Status, error) {
	current, err := os.ReadFile(filename)
	switch {
	case err == nil && bytes.Equal(current, content):
		return StatusUnchanged, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("read output file: %w", err)
	case check:
		return StatusStale, nil
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return StatusWritten, nil
}
