package ui

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatSize renders a byte count for humans (e.g. "1.2 MB")
func FormatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}

// FormatAge renders a timestamp relative to now (e.g. "3 days ago")
func FormatAge(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

// Truncate shortens s to maxLen runes, ending with "..." when cut
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
