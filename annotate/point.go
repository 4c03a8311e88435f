package annotate

import "math"

// ClickPoint is one recorded pixel coordinate on the displayed image.
type ClickPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Near reports whether q falls inside the square neighborhood of p.
// The comparison is strict and per axis: a point exactly tolerance away
// on either axis is not a neighbor.
func (p ClickPoint) Near(q ClickPoint, tolerance float64) bool {
	return math.Abs(p.X-q.X) < tolerance && math.Abs(p.Y-q.Y) < tolerance
}

// AddIfNew appends candidate to points unless an existing point already lies
// within tolerance on both axes. The scan is in order and the first match
// wins; no distance minimization is attempted.
func AddIfNew(points []ClickPoint, candidate ClickPoint, tolerance float64) ([]ClickPoint, bool) {
	for _, p := range points {
		if p.Near(candidate, tolerance) {
			return points, false
		}
	}
	return append(points, candidate), true
}
