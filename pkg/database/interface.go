package database

import (
	"context"

	"github.com/voidshard/fortitrack/pkg/database/changes"
	"github.com/voidshard/fortitrack/pkg/structs"
)

// Database is the job record store.
//
// Updates are guarded by etags; Update / Set funcs return the number of rows altered so
// callers can tell a stale etag (0) from success (1).
type Database interface {
	InsertJob(ctx context.Context, j *structs.Job) error
	UpdateJob(ctx context.Context, ref *structs.ObjectRef, newTag string, u *structs.JobUpdate) (int64, error)
	Jobs(ctx context.Context, q *structs.Query) ([]*structs.Job, error)

	// InsertChanges writes each entry to both the changes & audit logs in one transaction.
	// Entries whose ID already exists are ignored, so a failed call can be retried as-is.
	InsertChanges(ctx context.Context, in []*structs.ChangeLogEntry) error
	JobLog(ctx context.Context, log structs.LogName, jobID string) ([]*structs.ChangeLogEntry, error)

	InsertLocation(ctx context.Context, in *structs.LocationSample) error
	LatestLocations(ctx context.Context, jobIDs []string) ([]*structs.LocationSample, error)

	InsertUser(ctx context.Context, u *structs.User) error
	SetUserRole(ctx context.Context, ref *structs.ObjectRef, newTag string, role structs.Role) (int64, error)
	SetUserStatus(ctx context.Context, ref *structs.ObjectRef, newTag string, status structs.UserStatus) (int64, error)
	Users(ctx context.Context, q *structs.UserQuery) ([]*structs.User, error)

	InsertClientError(ctx context.Context, e *structs.ClientError) error

	// Subscribe returns a stream of changes to jobs.
	Subscribe(ctx context.Context) (changes.Stream, error)

	Close() error
}
