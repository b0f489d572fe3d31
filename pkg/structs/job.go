package structs

// JobSpec are fields that can be set when a job is created
type JobSpec struct {
	// Title is a short human readable summary, ie. "Fix AC"
	Title string `json:"title"`

	// Description of the work to be done
	Description string `json:"description"`

	// AssignedTo is the user ID of the technician doing the work.
	//
	// Required.
	AssignedTo string `json:"assigned_to"`

	// Optional free text fields
	StartLocation       string `json:"start_location"`
	MaterialsNeeded     string `json:"materials_needed"`
	EstimatedCompletion string `json:"estimated_completion"`
	ClosingNotes        string `json:"closing_notes"`
}

// Job represents one unit of dispatched field work.
type Job struct {
	// JobSpec are fields that can be set when a job is created
	JobSpec `json:",inline"`

	// ID is a unique identifier for this job
	ID string `json:"id"`

	// Status is the current status of this job
	Status Status `json:"status"`

	// ETag is used when updating a job for optimistic locking
	ETag string `json:"etag"`

	// CreatedBy is the ID of the user that created this job
	CreatedBy string `json:"created_by"`

	// CreatedAt is the time this job was created unix time in seconds
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the time this job was last updated unix time in seconds
	UpdatedAt int64 `json:"updated_at"`

	// UpdatedBy is the ID of the user that last updated this job
	UpdatedBy string `json:"updated_by"`

	// ConfirmedAt is set when the assigned technician accepts the job (unix seconds).
	// Nil until then.
	ConfirmedAt *int64 `json:"confirmed_at"`

	// ConfirmedBy is the ID of the technician that accepted the job.
	ConfirmedBy *string `json:"confirmed_by"`
}

// Ref returns an ObjectRef pinning this job at its current version.
func (j *Job) Ref() *ObjectRef {
	return NewObjectRef(j.ID, j.ETag).Job()
}

// JobUpdate is a partial update to a job. Nil fields are left untouched.
type JobUpdate struct {
	Status              *Status
	AssignedTo          *string
	StartLocation       *string
	MaterialsNeeded     *string
	EstimatedCompletion *string
	ClosingNotes        *string
	ConfirmedAt         *int64
	ConfirmedBy         *string

	// always set
	UpdatedBy string
	UpdatedAt int64
}

// Apply copies the set fields of the update onto the given job.
func (u *JobUpdate) Apply(j *Job) {
	if u.Status != nil {
		j.Status = *u.Status
	}
	if u.AssignedTo != nil {
		j.AssignedTo = *u.AssignedTo
	}
	if u.StartLocation != nil {
		j.StartLocation = *u.StartLocation
	}
	if u.MaterialsNeeded != nil {
		j.MaterialsNeeded = *u.MaterialsNeeded
	}
	if u.EstimatedCompletion != nil {
		j.EstimatedCompletion = *u.EstimatedCompletion
	}
	if u.ClosingNotes != nil {
		j.ClosingNotes = *u.ClosingNotes
	}
	if u.ConfirmedAt != nil {
		j.ConfirmedAt = u.ConfirmedAt
	}
	if u.ConfirmedBy != nil {
		j.ConfirmedBy = u.ConfirmedBy
	}
	j.UpdatedBy = u.UpdatedBy
	j.UpdatedAt = u.UpdatedAt
}
