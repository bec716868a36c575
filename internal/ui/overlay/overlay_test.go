package overlay

import (
	"strings"
	"testing"
)

func TestNewCanvasIsBlank(t *testing.T) {
	c := NewCanvas(4, 2)
	want := "    \n    "
	if got := c.String(); got != want {
		t.Errorf("empty canvas = %q, want %q", got, want)
	}
	if c.Width() != 4 || c.Height() != 2 {
		t.Errorf("dimensions = %dx%d, want 4x2", c.Width(), c.Height())
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name  string
		block string
		x, y  int
		want  []string
	}{
		{
			name:  "inside bounds",
			block: "ab\ncd",
			x:     1,
			y:     0,
			want:  []string{".ab...", ".cd...", "......"},
		},
		{
			name:  "clipped left",
			block: "abc",
			x:     -1,
			y:     1,
			want:  []string{"......", "bc....", "......"},
		},
		{
			name:  "clipped right",
			block: "abcd",
			x:     4,
			y:     0,
			want:  []string{"....ab", "......", "......"},
		},
		{
			name:  "clipped top and bottom",
			block: "ab\ncd\nef\ngh",
			x:     0,
			y:     -1,
			want:  []string{"cd....", "ef....", "gh...."},
		},
		{
			name:  "fully outside is a no-op",
			block: "ab",
			x:     9,
			y:     0,
			want:  []string{"......", "......", "......"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(6, 3)
			// Fill with dots so replacement is visible.
			c.Place(strings.Repeat(strings.Repeat(".", 6)+"\n", 2)+strings.Repeat(".", 6), 0, 0)
			c.Place(tt.block, tt.x, tt.y)
			got := strings.Split(c.String(), "\n")
			for i, line := range got {
				if line != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, line, tt.want[i])
				}
			}
		})
	}
}

func TestPlaceLaterWins(t *testing.T) {
	c := NewCanvas(5, 1)
	c.Place("aaaa", 0, 0)
	c.Place("bb", 1, 0)
	if got := c.String(); got != "abba " {
		t.Errorf("overlap = %q, want %q", got, "abba ")
	}
}

func TestPlaceStyledBlockKeepsText(t *testing.T) {
	c := NewCanvas(8, 1)
	styled := "\x1b[31mred\x1b[0m"
	c.Place(styled, 2, 0)
	if !strings.Contains(c.String(), "red") {
		t.Errorf("styled place lost text: %q", c.String())
	}
}
