package engine

import "math"

// Geometric tolerance in mm, matching the precision parts are measured at.
const eps = 0.001

// freeRegion is an axis-aligned empty rectangle inside one panel instance,
// relative to the usable (post-trim) origin.
type freeRegion struct {
	x, y, w, h float64
}

func (r freeRegion) area() float64 {
	return r.w * r.h
}

// regionTracker owns the disjoint free rectangles of a single panel instance.
// Regions are kept in creation order: a placement consumes one region and
// appends its residual strips at the end.
type regionTracker struct {
	regions []freeRegion
}

func newRegionTracker(width, height float64) regionTracker {
	return regionTracker{regions: []freeRegion{{0, 0, width, height}}}
}

// fits reports whether a w x h piece fits inside region r.
func fits(w, h float64, r freeRegion) bool {
	return w <= r.w+eps && h <= r.h+eps
}

// splitRemainder computes the residual strips left in r after seating a
// w x h piece at the region origin. The consumed region splits into a
// right-hand strip and a bottom strip; whichever of the two is larger keeps
// its full extent along the region edge so that one big residual survives.
// Degenerate strips are discarded.
func splitRemainder(r freeRegion, w, h float64) []freeRegion {
	right := freeRegion{x: r.x + w, y: r.y, w: r.w - w, h: h}
	bottom := freeRegion{x: r.x, y: r.y + h, w: r.w, h: r.h - h}

	if right.area() > bottom.area() {
		// Right strip wins: extend it over the full region height and give
		// the bottom strip only the width under the piece.
		right.h = r.h
		bottom.w = w
	}

	var strips []freeRegion
	if right.w > eps && right.h > eps {
		strips = append(strips, right)
	}
	if bottom.w > eps && bottom.h > eps {
		strips = append(strips, bottom)
	}
	return strips
}

// shapeScore rates the residuals a w x h placement in r would leave: the
// smallest dimension among the resulting strips, or +Inf for an exact fit.
// Higher scores avoid creating slivers.
func shapeScore(r freeRegion, w, h float64) float64 {
	strips := splitRemainder(r, w, h)
	score := math.Inf(1)
	for _, s := range strips {
		if d := math.Min(s.w, s.h); d < score {
			score = d
		}
	}
	return score
}

// place consumes the region at index idx with a w x h piece and stores the
// residual strips.
func (t *regionTracker) place(idx int, w, h float64) {
	r := t.regions[idx]
	strips := splitRemainder(r, w, h)
	t.regions = append(t.regions[:idx], t.regions[idx+1:]...)
	t.regions = append(t.regions, strips...)
}
