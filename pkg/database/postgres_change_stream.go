package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voidshard/fortitrack/pkg/database/changes"
	"github.com/voidshard/fortitrack/pkg/structs"
)

type pgChangeStream struct {
	ctx    context.Context
	conn   *pgxpool.Conn
	closed bool
}

// pgNotifyMaxPayload is the size postgres refuses NOTIFY payloads at. Going
// over it fails the write that fired the trigger.
const pgNotifyMaxPayload = 8000

type pgRawPayload struct {
	Table string `json:"table"`
}

type pgJobPayload struct {
	Old *pgJobNotice `json:"old"`
	New *pgJobNotice `json:"new"`
}

// pgJobNotice is what the trigger sends of a job row; free text columns are left out
// so a payload always fits in pgNotifyMaxPayload.
type pgJobNotice struct {
	ID         string         `json:"id"`
	Status     structs.Status `json:"status"`
	AssignedTo string         `json:"assigned_to"`
	ETag       string         `json:"etag"`
	UpdatedAt  int64          `json:"updated_at"`
}

func (n *pgJobNotice) job() *structs.Job {
	return &structs.Job{
		JobSpec:   structs.JobSpec{AssignedTo: n.AssignedTo},
		ID:        n.ID,
		Status:    n.Status,
		ETag:      n.ETag,
		UpdatedAt: n.UpdatedAt,
	}
}

func (p *pgChangeStream) Next() (*changes.Change, error) {
	if p.closed {
		return nil, nil
	}

	notification, err := p.conn.Conn().WaitForNotification(p.ctx)
	if err != nil {
		return nil, err
	}

	return decodePayload([]byte(notification.Payload))
}

func (p *pgChangeStream) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.conn.Release()
	return nil
}

// decodePayload turns a notification sent by our trigger into a Change
func decodePayload(data []byte) (*changes.Change, error) {
	payload := pgRawPayload{}
	err := json.Unmarshal(data, &payload)
	if err != nil {
		return nil, err
	}

	switch payload.Table {
	case tableJobs:
		jp := pgJobPayload{}
		err = json.Unmarshal(data, &jp)
		if err != nil {
			return nil, err
		}
		// untyped nils so callers can check Old == nil / New == nil
		ch := &changes.Change{Kind: structs.KindJob}
		if jp.Old != nil {
			ch.Old = jp.Old.job()
		}
		if jp.New != nil {
			ch.New = jp.New.job()
		}
		return ch, nil
	}

	return nil, fmt.Errorf("unknown kind for table %s", payload.Table)
}
