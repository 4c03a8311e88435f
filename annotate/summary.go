package annotate

// SummaryRow is one row of the exportable summary: a (possibly side-prefixed)
// location and its pressure value.
type SummaryRow struct {
	Location string `json:"location"`
	Value    string `json:"value"`
}

// Project builds the tabular view of an annotation sequence: annotations at
// excluded locations are dropped, a non-sentinel side is merged into the
// location label, and the input order is preserved. Both the table image and
// the spreadsheet export consume this same sequence.
func Project(annotations []Annotation, vocab Vocabulary) []SummaryRow {
	rows := make([]SummaryRow, 0, len(annotations))
	for _, a := range annotations {
		if vocab.ExcludedFromSummary(a.Location) {
			continue
		}
		location := a.Location
		if a.Side != "" && a.Side != SelectSentinel {
			location = a.Side + " " + a.Location
		}
		rows = append(rows, SummaryRow{Location: location, Value: a.Value})
	}
	return rows
}
