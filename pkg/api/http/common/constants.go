package common

import (
	"net/url"
	"strings"
)

const (
	// HEADER_USER carries the ID of the acting user, set by the identity provider
	// in front of the API
	HEADER_USER = "X-Fortitrack-User"

	// API_JOBS is used to get or create jobs
	API_JOBS = "/api/v1/jobs"

	// API_IMPORT is used to create jobs in bulk from a json or csv document
	API_IMPORT = "/api/v1/jobs/import"

	// API_ACCEPT is used by a technician to accept a job
	API_ACCEPT = "/api/v1/jobs/{id}/accept"

	// API_STATUS is used to move a job to a new status
	API_STATUS = "/api/v1/jobs/{id}/status"

	// API_ASSIGNEE is used to reassign a job
	API_ASSIGNEE = "/api/v1/jobs/{id}/assignee"

	// API_CANCEL is used to cancel a job
	API_CANCEL = "/api/v1/jobs/{id}/cancel"

	// API_FIELDS is used to edit a job's free text fields
	API_FIELDS = "/api/v1/jobs/{id}/fields"

	// API_JOB_LOG is used to read a job's changes or audit log
	API_JOB_LOG = "/api/v1/jobs/{id}/{log:changes|audit}"

	// API_LOCATIONS is used to get the latest location of jobs
	API_LOCATIONS = "/api/v1/locations"

	// API_DIAGNOSTICS is used to get jobs needing attention
	API_DIAGNOSTICS = "/api/v1/diagnostics"

	// API_USERS is used to get users
	API_USERS = "/api/v1/users"

	// API_TECHNICIANS is used to get active technicians
	API_TECHNICIANS = "/api/v1/technicians"

	// API_USER_ROLE is used to change a user's role
	API_USER_ROLE = "/api/v1/users/{id}/role"

	// API_USER_STATUS is used to (de)activate a user
	API_USER_STATUS = "/api/v1/users/{id}/status"

	// API_CLIENT_ERRORS is used to report client side errors
	API_CLIENT_ERRORS = "/api/v1/client-errors"
)

// Path fills in the {id} of a route.
func Path(route, id string) string {
	return strings.Replace(route, "{id}", url.PathEscape(id), 1)
}

// JobLogPath returns the route to one of a job's logs.
func JobLogPath(id, log string) string {
	return strings.Replace(Path(API_JOB_LOG, id), "{log:changes|audit}", log, 1)
}
