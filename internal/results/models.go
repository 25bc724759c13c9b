package results

import (
	"time"

	"podsight/internal/analysis"
)

// Record is one persisted analysis run.
type Record struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Source    string          `json:"source"`
	CreatedAt time.Time       `json:"created_at"`
	Payload   analysis.Result `json:"payload"`
}

// Label builds the timestamped identifier used for a run persisted at the
// given time.
func Label(createdAt time.Time) string {
	return "analysis_" + createdAt.UTC().Format("20060102_150405")
}
