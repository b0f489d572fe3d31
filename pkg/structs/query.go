package structs

const (
	queryLimitDefault = 1000
	queryLimitMax     = 10000
)

type Query struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`

	// Filters
	JobIDs     []string `json:"job_ids,omitempty"`
	Statuses   []Status `json:"statuses,omitempty"`
	AssignedTo []string `json:"assigned_to,omitempty"`

	// Unix seconds, 0 means unset
	UpdatedBefore int64 `json:"updated_before,omitempty"`
	UpdatedAfter  int64 `json:"updated_after,omitempty"`
}

func (q *Query) Sanitize() {
	if q.Limit <= 0 {
		q.Limit = queryLimitDefault
	}
	if q.Limit > queryLimitMax {
		q.Limit = queryLimitMax
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if len(q.JobIDs) == 0 {
		q.JobIDs = nil
	}
	if len(q.Statuses) == 0 {
		q.Statuses = nil
	}
	if len(q.AssignedTo) == 0 {
		q.AssignedTo = nil
	}
	if q.UpdatedBefore < 0 {
		q.UpdatedBefore = 0
	}
	if q.UpdatedAfter < 0 {
		q.UpdatedAfter = 0
	}
}

// UserQuery filters users.
type UserQuery struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`

	UserIDs  []string     `json:"user_ids,omitempty"`
	Roles    []Role       `json:"roles,omitempty"`
	Statuses []UserStatus `json:"statuses,omitempty"`
}

func (q *UserQuery) Sanitize() {
	if q.Limit <= 0 {
		q.Limit = queryLimitDefault
	}
	if q.Limit > queryLimitMax {
		q.Limit = queryLimitMax
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if len(q.UserIDs) == 0 {
		q.UserIDs = nil
	}
	if len(q.Roles) == 0 {
		q.Roles = nil
	}
	if len(q.Statuses) == 0 {
		q.Statuses = nil
	}
}
