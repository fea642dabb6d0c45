package ui

import (
	"testing"

	"github.com/depeter/jellyreel/internal/constants"
	"github.com/depeter/jellyreel/internal/jellyfin"
)

func testItems() []jellyfin.MediaItem {
	return []jellyfin.MediaItem{
		{ID: "m1", Name: "Alpha", Type: "Movie", Year: 2021, PrimaryAspect: 0.67, RuntimeTicks: 95 * constants.TicksPerMinute},
		{ID: "s1", Name: "Beta", Type: "Series", CommunityRating: 7.8},
	}
}

func TestItemMeta(t *testing.T) {
	items := testItems()
	if got, want := itemMeta(items[0]), "2021  ·  Movie  ·  1h 35m"; got != want {
		t.Errorf("itemMeta = %q, want %q", got, want)
	}
	if got, want := itemMeta(items[1]), "Series  ·  ★ 7.8"; got != want {
		t.Errorf("itemMeta = %q, want %q", got, want)
	}
	if got := itemMeta(jellyfin.MediaItem{}); got != "" {
		t.Errorf("itemMeta(empty) = %q, want empty", got)
	}
}

func TestWrapLines(t *testing.T) {
	// One unit per byte.
	measure := func(s string) float64 { return float64(len(s)) }

	tests := []struct {
		name     string
		txt      string
		width    float64
		maxLines int
		want     []string
	}{
		{"empty", "   ", 10, 0, nil},
		{"fits", "one two", 10, 0, []string{"one two"}},
		{"wraps", "one two three four", 9, 0, []string{"one two", "three", "four"}},
		{"truncates", "one two three four", 9, 2, []string{"one two", "three…"}},
		{"exact line count", "one two three", 9, 2, []string{"one two", "three"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLines(tt.txt, tt.width, tt.maxLines, measure)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapLines = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEllipsizeDropsWords(t *testing.T) {
	measure := func(s string) float64 { return float64(len([]rune(s))) }
	if got, want := ellipsize("one two three", 8, measure), "one two…"; got != want {
		t.Errorf("ellipsize = %q, want %q", got, want)
	}
}
