package tokenreg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// DefaultReportFile is where the CLI persists findings.
const DefaultReportFile = "validation_errors.txt"

// WriteReport writes one finding per line in the order given.
func WriteReport(w io.Writer, findings []error) error {
	for _, f := range findings {
		if _, err := fmt.Fprintln(w, f.Error()); err != nil {
			return err
		}
	}

	return nil
}

// WriteReportFile persists findings to path, replacing any previous report.
func WriteReportFile(path string, findings []error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	if err := WriteReport(f, findings); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return f.Close()
}

// WriteSummary writes the number of findings of each kind, ordered by kind.
func WriteSummary(w io.Writer, summary map[Kind]int) error {
	kinds := make([]Kind, 0, len(summary))
	for k := range summary {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)

	for _, k := range kinds {
		if _, err := fmt.Fprintf(w, "%s: %d\n", k, summary[k]); err != nil {
			return err
		}
	}

	return nil
}
