package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/pkg/structs"
)

// Log "delivers" notifications by logging them. Used when no redis is configured.
type Log struct {
	log logrus.FieldLogger
}

func NewLog(log logrus.FieldLogger) *Log {
	return &Log{log: log}
}

func (l *Log) Notify(ctx context.Context, userID string, n *structs.Notification) error {
	entry := l.log.WithFields(logrus.Fields{
		"user":     userID,
		"severity": n.Severity,
	})
	if n.Severity == structs.SeverityError {
		entry.Warn(n.Message)
	} else {
		entry.Info(n.Message)
	}
	return nil
}

func (l *Log) Close() error {
	return nil
}
