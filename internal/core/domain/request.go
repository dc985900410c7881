package domain

import "time"

// RequestState is the lifecycle state of an analysis request.
type RequestState string

const (
	// StatePending means the request is waiting for its scrape result.
	StatePending RequestState = "pending"

	// StateCompleted means a score report was produced. Terminal.
	StateCompleted RequestState = "completed"

	// StateError means the request failed with a reason. Terminal.
	StateError RequestState = "error"
)

// Request tracks one scrape-and-analyze submission from pending to a
// terminal state. It is created on submission and mutated only by the
// analyzer service; retention is the caller's concern.
type Request struct {
	// RequestID is unique, caller-issued or generated at submission.
	RequestID string `json:"requestId"`

	// SourceURL is the listing URL to analyze.
	SourceURL string `json:"sourceUrl"`

	// ContactAddress is where the result is delivered. Opaque here.
	ContactAddress string `json:"contactAddress"`

	// State is pending, completed or error.
	State RequestState `json:"state"`

	// ScoreReport is present iff State is completed.
	ScoreReport *ScoreReport `json:"scoreReport,omitempty"`

	// FailureReason is present iff State is error.
	FailureReason string `json:"failureReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsTerminal reports whether the request has reached a final state.
func (r *Request) IsTerminal() bool {
	return r.State == StateCompleted || r.State == StateError
}
