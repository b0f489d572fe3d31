package database

import (
	"encoding/json"
	"io/fs"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/fortitrack/pkg/database/migrations"
	"github.com/voidshard/fortitrack/pkg/structs"
)

func TestDecodePayload(t *testing.T) {
	cases := []struct {
		Name      string
		Payload   string
		ExpectOld *structs.Job
		ExpectNew *structs.Job
		ExpectErr bool
	}{
		{
			Name:    "Insert",
			Payload: `{"table": "jobs", "old": null, "new": {"id": "j1", "status": "assigned", "assigned_to": "tech-42", "etag": "e1", "updated_at": 100}}`,
			ExpectNew: &structs.Job{
				JobSpec:   structs.JobSpec{AssignedTo: "tech-42"},
				ID:        "j1",
				Status:    structs.ASSIGNED,
				ETag:      "e1",
				UpdatedAt: 100,
			},
		},
		{
			Name:      "Update",
			Payload:   `{"table": "jobs", "old": {"id": "j1", "status": "assigned", "assigned_to": "tech-42", "etag": "e1", "updated_at": 100}, "new": {"id": "j1", "status": "enroute", "assigned_to": "tech-42", "etag": "e2", "updated_at": 160}}`,
			ExpectOld: &structs.Job{JobSpec: structs.JobSpec{AssignedTo: "tech-42"}, ID: "j1", Status: structs.ASSIGNED, ETag: "e1", UpdatedAt: 100},
			ExpectNew: &structs.Job{JobSpec: structs.JobSpec{AssignedTo: "tech-42"}, ID: "j1", Status: structs.ENROUTE, ETag: "e2", UpdatedAt: 160},
		},
		{
			Name:      "Delete",
			Payload:   `{"table": "jobs", "old": {"id": "j1", "status": "cancelled", "assigned_to": "tech-42", "etag": "e3", "updated_at": 200}, "new": null}`,
			ExpectOld: &structs.Job{JobSpec: structs.JobSpec{AssignedTo: "tech-42"}, ID: "j1", Status: structs.CANCELLED, ETag: "e3", UpdatedAt: 200},
		},
		{
			Name:      "UnknownTable",
			Payload:   `{"table": "users", "old": null, "new": {}}`,
			ExpectErr: true,
		},
		{
			Name:      "BadJson",
			Payload:   `{"table": `,
			ExpectErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			ch, err := decodePayload([]byte(c.Payload))
			if c.ExpectErr {
				assert.Error(t, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, structs.KindJob, ch.Kind)

			if c.ExpectOld == nil {
				assert.Nil(t, ch.Old)
			} else {
				assert.Equal(t, c.ExpectOld, ch.Old)
			}
			if c.ExpectNew == nil {
				assert.Nil(t, ch.New)
			} else {
				assert.Equal(t, c.ExpectNew, ch.New)
			}
		})
	}
}

func TestJobNoticeFitsNotifyPayload(t *testing.T) {
	// widest values the jobs columns allow
	widest := &pgJobNotice{
		ID:         strings.Repeat("i", 36),
		Status:     structs.Status(strings.Repeat("s", 32)),
		AssignedTo: strings.Repeat("a", 128),
		ETag:       strings.Repeat("e", 36),
		UpdatedAt:  -9223372036854775808,
	}

	data, err := json.Marshal(map[string]interface{}{"table": tableJobs, "old": widest, "new": widest})

	assert.Nil(t, err)
	assert.Less(t, len(data), pgNotifyMaxPayload)
}

func TestLatestMigrationSendsNoWholeRows(t *testing.T) {
	names, err := fs.Glob(migrations.FS, "*.up.sql")
	assert.Nil(t, err)
	sort.Strings(names)

	found := ""
	for _, name := range names {
		data, err := fs.ReadFile(migrations.FS, name)
		assert.Nil(t, err)
		if strings.Contains(string(data), "FUNCTION fortitrack_notify_change") {
			found = string(data)
		}
	}

	assert.NotEmpty(t, found)
	assert.NotContains(t, found, "row_to_json")
}
