package annotate

// IsAnnotated reports whether some annotation lies within tolerance of p on
// both axes.
func IsAnnotated(p ClickPoint, annotations []Annotation, tolerance float64) bool {
	for _, a := range annotations {
		if a.At(p, tolerance) {
			return true
		}
	}
	return false
}

// Partition splits points into those that already carry an annotation and
// those still waiting for one. It is pure and recomputed on every
// state-changing event; there is no cached partition. A point whose
// annotation is deleted simply shows up as pending again on the next call.
func Partition(points []ClickPoint, annotations []Annotation, tolerance float64) (annotated, pending []ClickPoint) {
	for _, p := range points {
		if IsAnnotated(p, annotations, tolerance) {
			annotated = append(annotated, p)
		} else {
			pending = append(pending, p)
		}
	}
	return annotated, pending
}
