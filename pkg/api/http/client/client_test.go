package client

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voidshard/fortitrack/internal/mocks/pkg/api_mock"
	"github.com/voidshard/fortitrack/pkg/api/http/server"
	ie "github.com/voidshard/fortitrack/pkg/errors"
	"github.com/voidshard/fortitrack/pkg/structs"
)

const testJobID = "0a3e36b4-69b0-4c0b-9b5e-2b5a8e3cf0a1"

var dispatcher = &structs.User{ID: "disp-7", Role: structs.RoleDispatcher, Status: structs.UserActive}

func newTestClient(t *testing.T) (*Client, *api_mock.MockAPI) {
	ctrl := gomock.NewController(t)
	svc := api_mock.NewMockAPI(ctrl)
	logger, _ := test.NewNullLogger()

	ts := httptest.NewServer(server.NewServer(":0", "", false, logger).Handler(svc))
	t.Cleanup(ts.Close)

	c, err := New(ts.URL, dispatcher.ID)
	assert.Nil(t, err)

	svc.EXPECT().Identify(gomock.Any(), dispatcher.ID).Return(dispatcher, nil).AnyTimes()
	return c, svc
}

func TestClientCreateJob(t *testing.T) {
	c, svc := newTestClient(t)
	in := &structs.CreateJobRequest{JobSpec: structs.JobSpec{Title: "Fix AC", AssignedTo: "tech-42"}}
	created := &structs.Job{JobSpec: in.JobSpec, ID: testJobID, Status: structs.ASSIGNED, ETag: "e1"}

	svc.EXPECT().CreateJob(gomock.Any(), dispatcher, in).Return(created, nil)

	out, err := c.CreateJob(in)

	assert.Nil(t, err)
	assert.Equal(t, created, out)
}

func TestClientChangeStatusConflict(t *testing.T) {
	c, svc := newTestClient(t)
	ref := structs.NewObjectRef(testJobID, "old").Job()

	svc.EXPECT().ChangeStatus(gomock.Any(), dispatcher, ref, structs.ARRIVED).Return(nil, ie.ErrETagMismatch)

	_, err := c.ChangeStatus(ref, structs.ARRIVED)

	assert.ErrorIs(t, err, ie.ErrETagMismatch)
}

func TestClientImportJobs(t *testing.T) {
	cases := []struct {
		Name      string
		Result    *structs.ImportResult
		SvcErr    error
		ExpectErr error
	}{
		{"Partial", &structs.ImportResult{Success: 2, Failed: 1, Errors: []string{"Row 2: no technician assigned"}}, nil, nil},
		{"Unreadable", &structs.ImportResult{Errors: []string{"Invalid JSON: input must be a JSON array"}}, ie.ErrInvalidArg, ie.ErrInvalidArg},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			cl, svc := newTestClient(t)
			data := []byte(`{"title": "Fix AC"}`)
			svc.EXPECT().ImportJobs(gomock.Any(), dispatcher, structs.ImportJSON, data).Return(c.Result, c.SvcErr)

			out, err := cl.ImportJobs(structs.ImportJSON, data)

			if c.ExpectErr != nil {
				assert.ErrorIs(t, err, c.ExpectErr)
			} else {
				assert.Nil(t, err)
			}
			assert.Equal(t, c.Result, out)
		})
	}
}

func TestClientJobs(t *testing.T) {
	c, svc := newTestClient(t)

	svc.EXPECT().Jobs(gomock.Any(), dispatcher, &structs.Query{
		Limit:      50,
		Statuses:   []structs.Status{structs.ENROUTE},
		AssignedTo: []string{"tech-42"},
	}).Return([]*structs.Job{{ID: testJobID}}, nil)

	out, err := c.Jobs(&structs.Query{Limit: 50, Statuses: []structs.Status{structs.ENROUTE}, AssignedTo: []string{"tech-42"}})

	assert.Nil(t, err)
	assert.Equal(t, []*structs.Job{{ID: testJobID}}, out)
}

func TestSetQueryString(t *testing.T) {
	u := &url.URL{Path: "/api/v1/jobs"}

	setQueryString(u, &structs.Query{
		Offset:       5,
		JobIDs:       []string{testJobID},
		Statuses:     []structs.Status{structs.ARRIVED},
		UpdatedAfter: 10,
	})

	assert.Equal(t, url.Values{
		"limit":         []string{"1000"},
		"offset":        []string{"5"},
		"job_ids":       []string{testJobID},
		"statuses":      []string{"arrived"},
		"updated_after": []string{"10"},
	}, u.Query())
}
