package api

import (
	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/internal/core"
	"github.com/voidshard/fortitrack/pkg/database"
	"github.com/voidshard/fortitrack/pkg/notify"
	"github.com/voidshard/fortitrack/pkg/queue"
	"github.com/voidshard/fortitrack/pkg/structs"
)

// NewAPI returns the job service. A nil notifier logs notifications instead of
// delivering them.
func NewAPI(db database.Database, qu queue.Queue, nt notify.Notifier, log logrus.FieldLogger, opts *structs.Options) (*core.Service, error) {
	return core.NewService(db, qu, nt, log, opts)
}
