package runs

import "time"

// Status is the stage a podcast run is in.
type Status string

const (
	StatusPending      Status = "pending"
	StatusResearching  Status = "researching"
	StatusScripting    Status = "scripting"
	StatusParsing      Status = "parsing"
	StatusRevising     Status = "revising"
	StatusSynthesizing Status = "synthesizing"
	StatusMixing       Status = "mixing"
	StatusPublishing   Status = "publishing"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
)

var allStatuses = []Status{
	StatusPending,
	StatusResearching,
	StatusScripting,
	StatusParsing,
	StatusRevising,
	StatusSynthesizing,
	StatusMixing,
	StatusPublishing,
	StatusCompleted,
	StatusFailed,
}

// ParseStatus converts a stored value into a known status.
func ParseStatus(value string) (Status, bool) {
	for _, status := range allStatuses {
		if string(status) == value {
			return status, true
		}
	}
	return "", false
}

// IsTerminal reports whether the run has finished, successfully or not.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Run is the retrievable record of one podcast generation.
type Run struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Status    Status    `json:"status"`
	Artifact  string    `json:"artifact,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
