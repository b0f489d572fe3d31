package api

import (
	"context"
	"time"

	"github.com/voidshard/fortitrack/pkg/structs"
)

// API represents the functions FortiTrack servers should expose.
//
// Every call, bar Identify & ReportClientError, is made on behalf of an acting user.
type API interface {
	// Implemented in fortitrack/internal/core.Service

	Identify(ctx context.Context, userID string) (*structs.User, error)

	CreateJob(ctx context.Context, actor *structs.User, req *structs.CreateJobRequest) (*structs.Job, error)
	ImportJobs(ctx context.Context, actor *structs.User, format structs.ImportFormat, data []byte) (*structs.ImportResult, error)

	AcceptJob(ctx context.Context, actor *structs.User, ref *structs.ObjectRef) (*structs.Job, error)
	ChangeStatus(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, status structs.Status) (*structs.Job, error)
	Reassign(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, technicianID string) (*structs.Job, error)
	Cancel(ctx context.Context, actor *structs.User, ref *structs.ObjectRef) (*structs.Job, error)
	EditFields(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, req *structs.EditFieldsRequest) (*structs.Job, error)

	Jobs(ctx context.Context, actor *structs.User, q *structs.Query) ([]*structs.Job, error)
	JobLog(ctx context.Context, actor *structs.User, log structs.LogName, jobID string) ([]*structs.ChangeLogEntry, error)
	LatestLocations(ctx context.Context, actor *structs.User, jobIDs []string) ([]*structs.LocationSample, error)
	Diagnostics(ctx context.Context, actor *structs.User, now time.Time) (*structs.Diagnostics, error)

	Users(ctx context.Context, actor *structs.User, q *structs.UserQuery) ([]*structs.User, error)
	Technicians(ctx context.Context, actor *structs.User) ([]*structs.User, error)
	SetUserRole(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, role structs.Role) (*structs.User, error)
	SetUserStatus(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, status structs.UserStatus) (*structs.User, error)

	ReportClientError(ctx context.Context, actor *structs.User, in *structs.ClientError) (*structs.ClientError, error)
}

type Server interface {
	ServeForever(api API) error
	Close() error
}
