package handlers

import (
	"strings"
	"testing"
)

func TestCaptionFileName(t *testing.T) {
	tests := []struct {
		caption string
		want    string
	}{
		{"", ""},
		{"   ", ""},
		{"holiday video", "holiday_video"},
		{"  first line\nsecond line", "first_line"},
		{strings.Repeat("a", 100), strings.Repeat("a", 64)},
	}
	for _, tt := range tests {
		if got := captionFileName(tt.caption); got != tt.want {
			t.Errorf("captionFileName(%q) = %q, want %q", tt.caption, got, tt.want)
		}
	}
}
