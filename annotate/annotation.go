package annotate

// Annotation is a finalized record tying a location (and optional side) and a
// pressure value to a clicked point. Ids are assigned from a strictly
// increasing per-session counter and are never reused after deletion.
// There is no update-in-place: correcting an annotation means delete and
// re-create.
type Annotation struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Location string  `json:"location"`
	Side     string  `json:"side,omitempty"`
	Value    string  `json:"value"`
}

// At reports whether the annotation belongs to the given click point under
// the square-neighborhood rule. The association is recomputed, never stored.
func (a Annotation) At(p ClickPoint, tolerance float64) bool {
	return ClickPoint{X: a.X, Y: a.Y}.Near(p, tolerance)
}
