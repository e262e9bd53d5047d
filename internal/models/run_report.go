package models

// RunReport accounts for every input line of one aggregation run:
// LinesRead == records aggregated + RecordsFiltered + sum(RecordsSkipped).
type RunReport struct {
	RunID           string           `json:"runId"`
	LinesRead       int64            `json:"linesRead"`
	RecordsFiltered int64            `json:"recordsFiltered"`
	RecordsSkipped  map[string]int64 `json:"recordsSkipped"` // by error code
	Groups          int              `json:"groups"`
}

func NewRunReport(runID string) *RunReport {
	return &RunReport{RunID: runID, RecordsSkipped: make(map[string]int64)}
}

// RecordsAggregated is the number of lines that contributed to some group.
func (r *RunReport) RecordsAggregated() int64 {
	n := r.LinesRead - r.RecordsFiltered
	for _, skipped := range r.RecordsSkipped {
		n -= skipped
	}
	return n
}
