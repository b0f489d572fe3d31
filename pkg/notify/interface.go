package notify

import (
	"context"

	"github.com/voidshard/fortitrack/pkg/structs"
)

// Notifier delivers one-shot feedback to a user about the outcome of their action.
//
// Delivery is best effort; nothing is stored or retried.
type Notifier interface {
	Notify(ctx context.Context, userID string, n *structs.Notification) error
	Close() error
}
