package editor

import (
	"github.com/jonathan/cv-builder/internal/sections"
	"github.com/jonathan/cv-builder/internal/types"
)

// MoveSection moves the section with the given id by delta positions in display order
// and renumbers every section's Order to 0..n-1. Unknown ids still get renumbered.
func MoveSection(registry []types.Section, id string, delta int) []types.Section {
	sorted := sections.Sorted(registry)

	from := -1
	for i, s := range sorted {
		if s.ID == id {
			from = i
			break
		}
	}
	if from >= 0 && delta != 0 {
		to := clamp(from+delta, 0, len(sorted)-1)
		moved := sorted[from]
		sorted = append(sorted[:from], sorted[from+1:]...)
		sorted = append(sorted[:to], append([]types.Section{moved}, sorted[to:]...)...)
	}

	for i := range sorted {
		sorted[i].Order = i
	}
	return sorted
}
