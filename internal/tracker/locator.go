package tracker

import (
	"github.com/voidshard/fortitrack/pkg/structs"
)

// Locator is a device location service.
type Locator interface {
	// Watch calls fn with every fix for the user's device until the returned
	// stop func is called.
	Watch(userID string, fn func(*structs.Fix)) (func() error, error)
}
