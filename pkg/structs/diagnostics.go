package structs

// Diagnostics are projections of the job collection that need a dispatcher's attention.
type Diagnostics struct {
	// PendingConfirmation are assigned jobs that no technician has accepted yet
	PendingConfirmation []*Job `json:"pending_confirmation"`

	// Overdue jobs have an estimated completion in the past but aren't complete
	Overdue []*Job `json:"overdue"`

	// Stuck jobs are unfinished & haven't been updated in a while
	Stuck []*Job `json:"stuck"`
}

// ClientError is a diagnostic record of something that went wrong client side
// (or in the location reporter) that we don't otherwise act on.
type ClientError struct {
	ID      string `json:"id"`
	Error   string `json:"error"`
	Stack   string `json:"stack"`
	UserID  string `json:"user_id"`
	Context string `json:"context"`

	CreatedAt int64 `json:"created_at"`
}

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient, one-shot message to a user about their last action.
type Notification struct {
	UserID   string   `json:"user_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	At       int64    `json:"at"`
}
