package changes

// Stream types live apart from pkg/database so the generated database mock can
// import them.

import (
	"github.com/voidshard/fortitrack/pkg/structs"
)

// Change is a single realtime update to a stored object.
//
// Old is nil when the object was created, New is nil if it was deleted.
// Jobs carry only their id, status, assignee, etag and updated_at; anything
// else has to be read from the database.
type Change struct {
	Kind structs.Kind
	Old  interface{}
	New  interface{}
}

// Stream pushes changes as they're committed. Next blocks until a change arrives,
// returns nil, nil once the stream is closed.
type Stream interface {
	Next() (*Change, error)
	Close() error
}
