package cardrow

import (
	"math"

	"github.com/llehouerou/cardrow/internal/ui"
)

// Layout tuning constants, in terminal cells (columns/rows) except rotation,
// which stays in degrees and is mapped to glyph alignment at render time.
const (
	// curveAmpMin/Max bound the arc depth in rows.
	curveAmpMin = 2.0
	curveAmpMax = 5.0

	// rotAmpMin/Max bound the tilt of the outermost cards in degrees.
	rotAmpMin = 6.0
	rotAmpMax = 10.0

	// pushRadius is the horizontal distance in columns within which siblings
	// are displaced away from the drag pointer.
	pushRadius = 24.0

	// maxPush is the sibling displacement in columns at distance zero.
	maxPush = 5.0

	// minOverlap/maxOverlap bound the negative gap between adjacent cards.
	minOverlap = -(ui.CardWidth / 2)
	maxOverlap = -2

	// overlapRelax is how much the overlap eases while a drag is active.
	overlapRelax = 2

	// activationDistance is the pointer travel in cells required before an
	// armed press becomes a drag, so plain clicks are not hijacked.
	activationDistance = 2

	// keyboardLift raises a keyboard-dragged card above the flattened row.
	keyboardLift = 2
)

// normalizedPos maps index i of n to t in [-1, 1]. A single card maps to 0.
func normalizedPos(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return (float64(i)/float64(n-1))*2 - 1
}

// curveAmplitude returns the arc depth in rows for a row of n cards,
// clamped so the arc neither flattens nor exaggerates at extreme counts.
func curveAmplitude(n int) float64 {
	return min(max(float64(n)*0.5, curveAmpMin), curveAmpMax)
}

// rotationAmplitude returns the outermost tilt in degrees, shrinking slightly
// as the row grows.
func rotationAmplitude(n int) float64 {
	return min(max(12-0.4*float64(n), rotAmpMin), rotAmpMax)
}

// CurveOffset returns the vertical offset in rows for card i of n.
// Negative values raise the card, so the row reads as an arch.
func CurveOffset(i, n int) float64 {
	t := normalizedPos(i, n)
	return -(1 - t*t) * curveAmplitude(n)
}

// Rotation returns the tilt in degrees for card i of n. Negative tilts lean
// left, positive lean right; the center of the row is upright.
func Rotation(i, n int) float64 {
	return normalizedPos(i, n) * rotationAmplitude(n)
}

// PushInfluence returns the ease-out-cubic falloff for a sibling at the given
// absolute distance from the pointer: 1 at distance 0, 0 at or beyond radius,
// monotonically non-increasing in between.
func PushInfluence(dist, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	norm := min(math.Abs(dist)/radius, 1)
	return 1 - norm*norm*norm
}

// PushOffset returns the signed horizontal displacement for a sibling whose
// center sits at center while the drag pointer is at pointerX. The sibling is
// pushed away from the pointer.
func PushOffset(center, pointerX float64) float64 {
	delta := center - pointerX
	mag := maxPush * PushInfluence(delta, pushRadius)
	if delta < 0 {
		return -mag
	}
	return mag
}

// Overlap returns the negative leading gap between adjacent cards for a row
// of n cards in rowWidth columns. The gap responds to available width but is
// clamped to a fixed band, and relaxes slightly while a drag is active.
func Overlap(rowWidth, n int, dragging bool) int {
	if n <= 1 {
		return 0
	}
	avail := rowWidth - 2*ui.RowMargin
	raw := (avail - n*ui.CardWidth) / (n - 1)
	overlap := min(max(raw, minOverlap), maxOverlap)
	if dragging {
		overlap = min(overlap+overlapRelax, -1)
	}
	return overlap
}

// SlotXs returns the left edge of each card slot, centered in rowWidth.
func SlotXs(rowWidth, n int, dragging bool) []int {
	if n == 0 {
		return nil
	}
	overlap := Overlap(rowWidth, n, dragging)
	stride := ui.CardWidth + overlap
	total := ui.CardWidth + (n-1)*stride
	left := max((rowWidth-total)/2, ui.RowMargin)

	xs := make([]int, n)
	for i := range n {
		xs[i] = left + i*stride
	}
	return xs
}

// SlotCenters returns the horizontal center of each card slot.
func SlotCenters(rowWidth, n int, dragging bool) []int {
	xs := SlotXs(rowWidth, n, dragging)
	for i := range xs {
		xs[i] += ui.CardWidth / 2
	}
	return xs
}

// NearestSlot returns the index of the slot whose center is closest to x.
// Ties resolve to the lower index. Returns -1 for an empty slot list.
func NearestSlot(x int, centers []int) int {
	best := -1
	bestDist := math.MaxInt
	for i, c := range centers {
		d := c - x
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
