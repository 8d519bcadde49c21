package entities

// Report summarizes one compiler run.
type Report struct {
	Languages    []string
	RowsRead     int
	RowsSkipped  int
	MissingCells int
	Written      []string
	Failed       map[string]error // keyed by language
}

// OK reports whether every language document was written.
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}
