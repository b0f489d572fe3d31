package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/fortitrack/pkg/structs"
)

func init() {
	timeNow = func() int64 { return 1000 }
}

func TestToJobSqlArgs(t *testing.T) {
	at := int64(150)
	by := "tech-42"
	in := &structs.Job{
		JobSpec: structs.JobSpec{
			Title:               "Fix AC",
			Description:         "unit 4 blowing warm air",
			AssignedTo:          "tech-42",
			StartLocation:       "depot",
			MaterialsNeeded:     "capacitor",
			EstimatedCompletion: "2025-06-01T17:00:00Z",
			ClosingNotes:        "",
		},
		ID:          "id",
		Status:      structs.ASSIGNED,
		ETag:        "etag",
		CreatedBy:   "disp-7",
		CreatedAt:   100,
		UpdatedBy:   "disp-7",
		UpdatedAt:   200,
		ConfirmedAt: &at,
		ConfirmedBy: &by,
	}

	qstr, result := toJobSqlArgs(2, in)

	assert.Equal(t, "($2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)", qstr)
	assert.Equal(t, []interface{}{
		in.ID,
		in.Title,
		in.Description,
		in.AssignedTo,
		in.StartLocation,
		in.MaterialsNeeded,
		in.EstimatedCompletion,
		in.ClosingNotes,
		in.Status,
		in.ETag,
		in.CreatedBy,
		in.CreatedAt,
		in.UpdatedBy,
		in.UpdatedAt,
		in.ConfirmedAt,
		in.ConfirmedBy,
	}, result)
}

func TestToJobSqlArgsSetsTimes(t *testing.T) {
	in := &structs.Job{ID: "id"}

	toJobSqlArgs(1, in)

	assert.Equal(t, int64(1000), in.CreatedAt)
	assert.Equal(t, int64(1000), in.UpdatedAt)
}

func TestToChangeSqlArgs(t *testing.T) {
	in := &structs.ChangeLogEntry{
		ID:        "id",
		JobID:     "job",
		Type:      structs.ChangeStatus,
		OldValue:  "assigned",
		NewValue:  "enroute",
		ChangedBy: "tech-42",
		ChangedAt: 300,
	}

	qstr, result := toChangeSqlArgs(8, in)

	assert.Equal(t, "($8, $9, $10, $11, $12, $13, $14)", qstr)
	assert.Equal(t, []interface{}{
		in.ID,
		in.JobID,
		in.Type,
		in.OldValue,
		in.NewValue,
		in.ChangedBy,
		in.ChangedAt,
	}, result)
}

func TestToLocationSqlArgs(t *testing.T) {
	in := &structs.LocationSample{
		ID:         "id",
		JobID:      "job",
		Latitude:   51.5,
		Longitude:  -0.12,
		Accuracy:   8,
		ReportedBy: "tech-42",
	}

	qstr, result := toLocationSqlArgs(1, in)

	assert.Equal(t, "($1, $2, $3, $4, $5, $6, $7)", qstr)
	assert.Equal(t, []interface{}{
		in.ID,
		in.JobID,
		in.Latitude,
		in.Longitude,
		in.Accuracy,
		int64(1000),
		in.ReportedBy,
	}, result)
}

func TestToUserSqlArgs(t *testing.T) {
	in := &structs.User{
		ID:          "tech-42",
		Email:       "tech@example.com",
		DisplayName: "Tech",
		Role:        structs.RoleTechnician,
		Status:      structs.UserActive,
		ETag:        "etag",
		CreatedAt:   10,
		UpdatedAt:   20,
	}

	qstr, result := toUserSqlArgs(1, in)

	assert.Equal(t, "($1, $2, $3, $4, $5, $6, $7, $8)", qstr)
	assert.Equal(t, []interface{}{
		in.ID,
		in.Email,
		in.DisplayName,
		in.Role,
		in.Status,
		in.ETag,
		in.CreatedAt,
		in.UpdatedAt,
	}, result)
}

func TestToJobUpdateSql(t *testing.T) {
	status := structs.ENROUTE
	at := int64(500)
	by := "tech-42"
	notes := "done"

	cases := []struct {
		Name       string
		Update     *structs.JobUpdate
		ExpectSql  string
		ExpectArgs []interface{}
	}{
		{
			Name:      "OnlyMeta",
			Update:    &structs.JobUpdate{UpdatedBy: "disp-7", UpdatedAt: 400},
			ExpectSql: "UPDATE jobs SET etag=$1, updated_by=$2, updated_at=$3 WHERE id=$4 AND etag=$5;",
			ExpectArgs: []interface{}{
				"newtag", "disp-7", int64(400), "job", "oldtag",
			},
		},
		{
			Name: "Accept",
			Update: &structs.JobUpdate{
				Status:      &status,
				ConfirmedAt: &at,
				ConfirmedBy: &by,
				UpdatedBy:   by,
				UpdatedAt:   at,
			},
			ExpectSql: "UPDATE jobs SET status=$1, confirmed_at=$2, confirmed_by=$3, etag=$4, updated_by=$5, updated_at=$6 WHERE id=$7 AND etag=$8;",
			ExpectArgs: []interface{}{
				status, at, by, "newtag", by, at, "job", "oldtag",
			},
		},
		{
			Name:      "DefaultsUpdatedAt",
			Update:    &structs.JobUpdate{ClosingNotes: &notes, UpdatedBy: by},
			ExpectSql: "UPDATE jobs SET closing_notes=$1, etag=$2, updated_by=$3, updated_at=$4 WHERE id=$5 AND etag=$6;",
			ExpectArgs: []interface{}{
				notes, "newtag", by, int64(1000), "job", "oldtag",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			qstr, args := toJobUpdateSql(structs.NewObjectRef("job", "oldtag").Job(), "newtag", c.Update)
			assert.Equal(t, c.ExpectSql, qstr)
			assert.Equal(t, c.ExpectArgs, args)
		})
	}
}

func TestToSqlQuery(t *testing.T) {
	cases := []struct {
		Name       string
		In         map[string][]string
		Before     int64
		After      int64
		ExpectSql  string
		ExpectArgs []interface{}
	}{
		{
			Name:       "Nothing",
			ExpectSql:  "",
			ExpectArgs: []interface{}{},
		},
		{
			Name:       "EmptyListsIgnored",
			In:         map[string][]string{"id": nil, "status": {}},
			ExpectSql:  "",
			ExpectArgs: []interface{}{},
		},
		{
			Name:       "SortedFields",
			In:         map[string][]string{"status": {"enroute"}, "assigned_to": {"a", "b"}},
			ExpectSql:  "WHERE assigned_to IN ($1, $2) AND status IN ($3)",
			ExpectArgs: []interface{}{"a", "b", "enroute"},
		},
		{
			Name:       "Times",
			In:         map[string][]string{"id": {"x"}},
			Before:     50,
			After:      10,
			ExpectSql:  "WHERE id IN ($1) AND updated_at < $2 AND updated_at > $3",
			ExpectArgs: []interface{}{"x", int64(50), int64(10)},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			qstr, args := toSqlQuery(c.In, c.Before, c.After)
			assert.Equal(t, c.ExpectSql, qstr)
			assert.Equal(t, c.ExpectArgs, args)
		})
	}
}

func TestLogTable(t *testing.T) {
	table, err := logTable(structs.LogChanges)
	assert.Nil(t, err)
	assert.Equal(t, tableChanges, table)

	table, err = logTable(structs.LogAudit)
	assert.Nil(t, err)
	assert.Equal(t, tableAudit, table)

	_, err = logTable("other")
	assert.Error(t, err)
}

func TestToJobLogSql(t *testing.T) {
	assert.Equal(t,
		"SELECT id, job_id, type, old_value, new_value, changed_by, changed_at FROM job_changes WHERE job_id=$1 ORDER BY changed_at DESC, seq DESC;",
		toJobLogSql(tableChanges),
	)
}

func TestStatusToStrings(t *testing.T) {
	cases := []struct {
		Name   string
		In     []structs.Status
		Expect []string
	}{
		{
			Name:   "Empty",
			In:     []structs.Status{},
			Expect: nil,
		},
		{
			Name:   "Nil",
			In:     nil,
			Expect: nil,
		},
		{
			Name: "All",
			In:   structs.AllStatuses(),
			Expect: []string{
				"assigned",
				"enroute",
				"arrived",
				"job_started",
				"job_completed",
				"cancelled",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			out := statusToStrings(c.In)
			assert.Equal(t, c.Expect, out)
		})
	}
}
