package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/internal/utils"
	"github.com/voidshard/fortitrack/pkg/database"
	"github.com/voidshard/fortitrack/pkg/queue"
	"github.com/voidshard/fortitrack/pkg/structs"
)

// TaskAuditRetry is the queue task that retries failed change log writes.
const TaskAuditRetry = "fortitrack:audit:retry"

// AuditLog appends entries to a job's changes & audit logs.
//
// Both logs are written in one database transaction. If that fails the entries are handed
// to the queue & retried by a worker; entry IDs make the retry safe to repeat.
type AuditLog struct {
	db  database.Database
	qu  queue.Queue
	log logrus.FieldLogger
}

func NewAuditLog(db database.Database, qu queue.Queue, log logrus.FieldLogger) *AuditLog {
	return &AuditLog{db: db, qu: qu, log: log}
}

// Record appends one entry (to each log) stamped with the current time.
func (a *AuditLog) Record(ctx context.Context, jobID string, kind structs.ChangeType, oldValue, newValue, actorID string) (*structs.ChangeLogEntry, error) {
	e := newEntry(jobID, kind, oldValue, newValue, actorID)
	return e, a.RecordAll(ctx, []*structs.ChangeLogEntry{e})
}

// RecordAll appends the given entries as one unit.
//
// Returns an error only if the entries could neither be written nor queued for retry.
func (a *AuditLog) RecordAll(ctx context.Context, entries []*structs.ChangeLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	err := a.db.InsertChanges(ctx, entries)
	if err == nil {
		return nil
	}

	fields := logrus.Fields{"job_id": entries[0].JobID, "entries": len(entries)}
	if a.qu == nil {
		return err
	}
	a.log.WithError(err).WithFields(fields).Warn("failed to write change log, queueing retry")

	payload, merr := json.Marshal(entries)
	if merr != nil {
		return fmt.Errorf("%w (encoding retry: %v)", err, merr)
	}
	_, qerr := a.qu.Enqueue(TaskAuditRetry, entries[0].ID, payload)
	if qerr != nil {
		return fmt.Errorf("%w (queueing retry: %v)", err, qerr)
	}
	return nil
}

// newEntry builds a log entry with a fresh ID stamped now.
func newEntry(jobID string, kind structs.ChangeType, oldValue, newValue, actorID string) *structs.ChangeLogEntry {
	return &structs.ChangeLogEntry{
		ID:        utils.NewRandomID(),
		JobID:     jobID,
		Type:      kind,
		OldValue:  oldValue,
		NewValue:  newValue,
		ChangedBy: actorID,
		ChangedAt: timeNow(),
	}
}
