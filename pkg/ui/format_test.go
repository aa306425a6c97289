package ui

import (
	"testing"
	"time"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1500, "1.5 kB"},
		{2_000_000, "2.0 MB"},
		{-1, "0 B"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.size); got != tt.expected {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.expected)
		}
	}
}

func TestFormatAge(t *testing.T) {
	if got := FormatAge(time.Time{}); got != "-" {
		t.Errorf("FormatAge(zero) = %q, want \"-\"", got)
	}
	if got := FormatAge(time.Now().Add(-3 * time.Hour)); got != "3 hours ago" {
		t.Errorf("FormatAge(3h ago) = %q, want \"3 hours ago\"", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short.png", 20, "short.png"},
		{"a-very-long-file-name.png", 10, "a-very-..."},
		{"abcdef", 3, "abc"},
		{"ünïcödé.png", 6, "ünï..."},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxLen); got != tt.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
		}
	}
}
