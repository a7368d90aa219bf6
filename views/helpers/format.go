package helpers

import (
	"fmt"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
)

const toggleBase = "toggle-btn px-3 py-2 rounded-md border text-sm transition-colors"

// ToggleClass composes the class list for a tone/platform toggle button
// in its initial server-rendered state. The script flips the
// active/inactive classes afterwards.
func ToggleClass(active bool) string {
	if active {
		return twmerge.Merge(toggleBase, "toggle-btn-active border-purple-500 bg-purple-600 text-white")
	}
	return twmerge.Merge(toggleBase, "toggle-btn-inactive border-zinc-700 bg-zinc-900 text-zinc-300")
}

// FormatCharLimit renders a platform's character limit hint.
func FormatCharLimit(limit int) string {
	return fmt.Sprintf("%d chars", limit)
}
