package structs

import (
	"sort"
)

// ChangeType tags what a ChangeLogEntry records.
//
// Field edits use the field name (ie. "closing_notes") as their type.
type ChangeType string

const (
	ChangeStatus       ChangeType = "status"
	ChangeReassignment ChangeType = "reassignment"
	ChangeCancellation ChangeType = "cancellation"

	ChangeStartLocation       ChangeType = "start_location"
	ChangeMaterialsNeeded     ChangeType = "materials_needed"
	ChangeEstimatedCompletion ChangeType = "estimated_completion"
	ChangeClosingNotes        ChangeType = "closing_notes"
)

// LogName names one of the two append-only logs kept per job.
type LogName string

const (
	LogChanges LogName = "changes"
	LogAudit   LogName = "audit"
)

func ToLogName(s string) LogName {
	switch s {
	case "changes":
		return LogChanges
	case "audit":
		return LogAudit
	default:
		return ""
	}
}

// ChangeLogEntry is one immutable record of a single field mutation on a job.
//
// The same entry (same ID) is written to both the changes & audit logs.
type ChangeLogEntry struct {
	// ID is unique per entry & doubles as the idempotency key when the entry is written.
	ID string `json:"id"`

	// JobID is the job this change was made to
	JobID string `json:"job_id"`

	Type     ChangeType `json:"type"`
	OldValue string     `json:"old_value"`
	NewValue string     `json:"new_value"`

	// ChangedBy is the ID of the acting user
	ChangedBy string `json:"changed_by"`

	// ChangedAt is the time of the change unix time in seconds
	ChangedAt int64 `json:"changed_at"`
}

// SortNewestFirst orders entries by ChangedAt descending, which is the order
// readers are expected to present them in.
func SortNewestFirst(in []*ChangeLogEntry) {
	sort.SliceStable(in, func(i, j int) bool {
		return in[i].ChangedAt > in[j].ChangedAt
	})
}
