// Package stems provides a client for a hosted stem-separation service.
package stems

// JobState represents the current state of a separation job.
type JobState string

const (
	StateQueued     JobState = "queued"
	StateProcessing JobState = "processing"
	StateDone       JobState = "done"
	StateFailed     JobState = "failed"
)

// Terminal reports whether the job will not change state again.
func (s JobState) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// Job is the service-side record of a submitted separation.
type Job struct {
	ID       string            `json:"id"`
	State    JobState          `json:"state"`
	Progress float64           `json:"progress"`
	Error    string            `json:"error,omitempty"`
	Stems    map[string]string `json:"stems,omitempty"` // stem kind to download URL
}

// Known stem kinds produced by the separation service.
var StemKinds = []string{"drums", "bass", "vocals", "other"}
