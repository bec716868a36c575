// Package overlay provides an ANSI-aware canvas for compositing blocks of
// styled text at arbitrary positions. Cards are placed back to front, so a
// later Place call paints over earlier ones where they overlap.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size grid of styled text lines.
type Canvas struct {
	width int
	lines []string
}

// NewCanvas creates an empty canvas of the given dimensions.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return &Canvas{width: width, lines: lines}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height()
}

func (c *Canvas) height() int {
	return len(c.lines)
}

// Place draws block with its top-left corner at (x, y), replacing whatever is
// underneath. Rows and columns outside the canvas are clipped. The block's
// ANSI styling is preserved; the styling of clipped base content is preserved
// via ANSI-aware cutting.
func (c *Canvas) Place(block string, x, y int) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(c.lines) {
			continue
		}
		c.lines[row] = c.placeLine(c.lines[row], line, x)
	}
}

// placeLine splices line into base at column x, clipping to canvas bounds.
func (c *Canvas) placeLine(base, line string, x int) string {
	w := ansi.StringWidth(line)
	if w == 0 {
		return base
	}

	// Clip the block line against the left edge.
	if x < 0 {
		if x+w <= 0 {
			return base
		}
		line = ansi.Cut(line, -x, w)
		w += x
		x = 0
	}
	if x >= c.width {
		return base
	}

	// Clip against the right edge.
	if x+w > c.width {
		line = ansi.Cut(line, 0, c.width-x)
		w = c.width - x
	}

	left := ansi.Cut(base, 0, x)
	leftWidth := ansi.StringWidth(left)
	if leftWidth < x {
		left += strings.Repeat(" ", x-leftWidth)
	}

	right := ""
	if x+w < c.width {
		right = ansi.Cut(base, x+w, c.width)
	}

	return left + line + right
}

// String renders the canvas as newline-joined rows.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}
