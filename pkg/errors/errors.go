package errors

import (
	"fmt"
)

var (
	ErrNoAssignee        = fmt.Errorf("no technician assigned")
	ErrNoTitle           = fmt.Errorf("no title specified")
	ErrNotFound          = fmt.Errorf("not found")
	ErrETagMismatch      = fmt.Errorf("etag mismatch")
	ErrMaxExceeded       = fmt.Errorf("max length exceeded")
	ErrInvalidState      = fmt.Errorf("invalid state")
	ErrInvalidTransition = fmt.Errorf("invalid transition")
	ErrInvalidArg        = fmt.Errorf("invalid arg")
	ErrNotSupported      = fmt.Errorf("not supported")
	ErrForbidden         = fmt.Errorf("forbidden")
	ErrUnauthenticated   = fmt.Errorf("unauthenticated")
)
