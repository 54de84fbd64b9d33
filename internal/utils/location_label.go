package utils

import "strings"

// LocationLabel extracts the coarse area label from a device's free-text
// location, e.g. "Sales Floor - Aisle 4" -> "Sales Floor". Best-effort:
// any stable extraction works, this one takes the segment before the
// first " - " separator.
func LocationLabel(raw string) string {
	label := strings.TrimSpace(raw)
	if idx := strings.Index(label, " - "); idx >= 0 {
		label = label[:idx]
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return "Unlabeled"
	}
	return label
}
