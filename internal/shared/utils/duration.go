package utils

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders a duration as a compact "XdYhZm" string.
// Leading zero-valued units are omitted and the duration is floored to
// whole minutes. Durations that round down to zero render as "< 1m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	totalMinutes := int64(d / time.Minute)
	if totalMinutes == 0 {
		return "< 1m"
	}

	days := totalMinutes / (24 * 60)
	hours := (totalMinutes % (24 * 60)) / 60
	minutes := totalMinutes % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", minutes))

	return strings.Join(parts, "")
}
