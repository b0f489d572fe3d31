package core

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/pkg/queue"
	"github.com/voidshard/fortitrack/pkg/structs"
)

// Register sets the queue up to retry failed change log writes. Call before Run.
func (s *Service) Register() error {
	return s.qu.Register(TaskAuditRetry, s.audit.handleRetry)
}

// Run processes queued work until Close is called.
func (s *Service) Run() error {
	return s.qu.Run()
}

// handleRetry writes entries that previously failed to be recorded.
func (a *AuditLog) handleRetry(work []*queue.Meta) error {
	for _, m := range work {
		entries := []*structs.ChangeLogEntry{}
		err := json.Unmarshal(m.Payload, &entries)
		if err != nil {
			// retrying won't fix a bad payload
			a.log.WithError(err).WithField("task_id", m.ID).Error("dropping unreadable change log retry")
			continue
		}

		err = a.db.InsertChanges(context.Background(), entries)
		if err != nil {
			a.log.WithError(err).WithFields(logrus.Fields{"task_id": m.ID, "retried": m.Retried}).Warn("change log retry failed")
			return err
		}
	}
	return nil
}
