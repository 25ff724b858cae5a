package cli

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/kalendarz/internal/export"
)

// runSummary contains what the user is told after a successful export
type runSummary struct {
	Year       string
	Path       string
	Dir        string
	CreatedDir bool
	EventCount int
	Format     export.Format
	Variant    export.Variant
}

// writeSummary prints the result of an export as human-readable text
func writeSummary(w io.Writer, s *runSummary) {
	if s.CreatedDir {
		fmt.Fprintf(w, "Created output directory: %s\n", s.Dir)
	}

	if s.EventCount == 0 {
		fmt.Fprintf(w, "No events found for %s; wrote an empty calendar.\n", s.Year)
	}

	fmt.Fprintf(w, "Success! Wrote %d events (%s, %s) to %s\n", s.EventCount, s.Variant, s.Format, s.Path)
}
