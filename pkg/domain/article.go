package domain

import "time"

// Status is the lifecycle flag of an article record in the external database.
// Transitions are linear: Not Started -> Processing -> Completed. A record that
// fails during processing keeps its status and is retried on a future run.
type Status string

// record statuses, stored verbatim in the "AI Processing" select property
const (
	StatusNotStarted Status = "Not Started"
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
)

// Candidate is a normalized article produced by a collector before registration.
type Candidate struct {
	Title     string
	URL       string
	Summary   string // plain text, HTML stripped
	Published time.Time
	Source    string // clean domain of the originating feed or story
	Score     int    // aggregator score, zero for RSS
	Comments  int    // aggregator comment count, zero for RSS
}

// Record is an article row read back from the external database.
type Record struct {
	ID     string
	Title  string
	URL    string
	Status Status
}

// Analysis holds the three generated documents written back to a record
// on the Processing -> Completed transition. Each field is markdown with
// fixed section headers.
type Analysis struct {
	Summary  string // Background, Overview, Mechanism, Market Impact, Outlook
	Outline  string // Background, Problems, Solutions, Conclusion
	Insights string // Insights, Open Questions
}

// Complete reports whether all three documents are present.
func (a Analysis) Complete() bool {
	return a.Summary != "" && a.Outline != "" && a.Insights != ""
}
