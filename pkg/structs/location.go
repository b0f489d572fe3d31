package structs

// LocationSample is one GPS fix reported while a job is trackable.
type LocationSample struct {
	ID    string `json:"id"`
	JobID string `json:"job_id"`

	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Accuracy  float64 `json:"accuracy"`

	// RecordedAt is the time the sample was stored unix time in seconds
	RecordedAt int64 `json:"recorded_at"`

	// ReportedBy is the ID of the technician whose device sent the fix
	ReportedBy string `json:"reported_by"`
}

// Fix is a single reading from a device location service.
type Fix struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Accuracy  float64 `json:"accuracy"`

	// Timestamp as reported by the device, unix time in seconds
	Timestamp int64 `json:"timestamp"`

	// Err is set (and the other fields ignored) when the device failed to get a fix
	Err string `json:"error,omitempty"`
}
