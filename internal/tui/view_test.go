package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typeracer/internal/race"
)

func TestRenderStatsLineFormats(t *testing.T) {
	stats := race.Stats{
		WPM:      72.4,
		Accuracy: 97.8,
		Progress: 50,
		Elapsed:  12400 * time.Millisecond,
	}
	out := renderStatsLine(stats, true)
	if !containsAll(out, []string{"72.4", "97.8%", "12.4s", "50%"}) {
		t.Fatalf("stats line missing expected segments: %s", out)
	}
}

func TestRenderStatsLineBeforeStart(t *testing.T) {
	out := renderStatsLine(race.Stats{}, false)
	if !containsAll(out, []string{"---", "0.0s", "0%"}) {
		t.Fatalf("unexpected idle stats line: %s", out)
	}
}

func TestRatingTiers(t *testing.T) {
	tests := []struct {
		wpm  float64
		want string
	}{
		{120, "LEGENDARY"},
		{85, "BLAZING FAST"},
		{65, "IMPRESSIVE"},
		{45, "SOLID"},
		{30, "KEEP PRACTICING"},
		{10, "WARMING UP"},
	}
	for _, tt := range tests {
		if got := ratingFor(tt.wpm); !strings.Contains(got, tt.want) {
			t.Fatalf("rating for %.0f WPM: expected %q in %q", tt.wpm, tt.want, got)
		}
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
