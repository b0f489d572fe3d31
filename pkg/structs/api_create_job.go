package structs

// CreateJobRequest is an outline to create a new job.
type CreateJobRequest struct {
	JobSpec `json:",inline"`
}

// StatusRequest moves a job to a new status.
type StatusRequest struct {
	ETag   string `json:"etag"`
	Status Status `json:"status"`
}

// ReassignRequest hands a job to a different technician.
type ReassignRequest struct {
	ETag       string `json:"etag"`
	AssignedTo string `json:"assigned_to"`
}

// EditFieldsRequest sets a subset of a job's free text fields. Nil fields are left alone.
type EditFieldsRequest struct {
	ETag                string  `json:"etag"`
	StartLocation       *string `json:"start_location,omitempty"`
	MaterialsNeeded     *string `json:"materials_needed,omitempty"`
	EstimatedCompletion *string `json:"estimated_completion,omitempty"`
	ClosingNotes        *string `json:"closing_notes,omitempty"`
}

// ETagRequest carries only the expected version (accept, cancel).
type ETagRequest struct {
	ETag string `json:"etag"`
}

// ImportFormat is the encoding of a bulk import document.
type ImportFormat string

const (
	ImportJSON ImportFormat = "json"
	ImportCSV  ImportFormat = "csv"
)

func ToImportFormat(s string) ImportFormat {
	switch s {
	case "json":
		return ImportJSON
	case "csv":
		return ImportCSV
	default:
		return ""
	}
}

// ImportResult summarises a bulk import. Errors read "Row N: reason" with N starting at 1.
type ImportResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
	Jobs    []*Job   `json:"jobs,omitempty"`
}
