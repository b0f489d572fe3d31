package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voidshard/fortitrack/internal/mocks/pkg/api_mock"
	"github.com/voidshard/fortitrack/pkg/api/http/common"
	ie "github.com/voidshard/fortitrack/pkg/errors"
	"github.com/voidshard/fortitrack/pkg/structs"
)

const testJobID = "0a3e36b4-69b0-4c0b-9b5e-2b5a8e3cf0a1"

var (
	dispatcher = &structs.User{ID: "disp-7", Role: structs.RoleDispatcher, Status: structs.UserActive}
	tech       = &structs.User{ID: "tech-42", Role: structs.RoleTechnician, Status: structs.UserActive}
)

func newTestHandler(t *testing.T) (http.Handler, *api_mock.MockAPI) {
	ctrl := gomock.NewController(t)
	svc := api_mock.NewMockAPI(ctrl)
	logger, _ := test.NewNullLogger()
	return NewServer(":0", "", true, logger).Handler(svc), svc
}

func do(h http.Handler, method, path string, user *structs.User, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if user != nil {
		r.Header.Set(common.HEADER_USER, user.ID)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)

	w := do(h, http.MethodGet, "/healthz", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}

func TestIdentity(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().Identify(gomock.Any(), "ghost").Return(nil, fmt.Errorf("%w unknown user ghost", ie.ErrUnauthenticated))

	w := do(h, http.MethodGet, common.API_JOBS, &structs.User{ID: "ghost"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateJob(t *testing.T) {
	h, svc := newTestHandler(t)

	expect := &structs.CreateJobRequest{JobSpec: structs.JobSpec{Title: "Fix AC", Description: "Unit blowing warm", AssignedTo: "tech-42"}}
	created := &structs.Job{JobSpec: expect.JobSpec, ID: testJobID, Status: structs.ASSIGNED, ETag: "e1"}

	svc.EXPECT().Identify(gomock.Any(), dispatcher.ID).Return(dispatcher, nil)
	svc.EXPECT().CreateJob(gomock.Any(), dispatcher, expect).Return(created, nil)

	w := do(h, http.MethodPost, common.API_JOBS, dispatcher, `{"title": "Fix AC", "description": "Unit blowing warm", "assigned_to": "tech-42"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	result := &structs.Job{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), result))
	assert.Equal(t, created, result)
}

func TestGetJobs(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().Identify(gomock.Any(), tech.ID).Return(tech, nil)
	svc.EXPECT().Jobs(gomock.Any(), tech, &structs.Query{Limit: 1000, Statuses: []structs.Status{structs.ENROUTE}}).Return([]*structs.Job{{ID: testJobID}}, nil)

	w := do(h, http.MethodGet, common.API_JOBS+"?statuses=enroute", tech, "")

	assert.Equal(t, http.StatusOK, w.Code)
	result := []*structs.Job{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, len(result))
}

func TestJobOps(t *testing.T) {
	ref := structs.NewObjectRef(testJobID, "e1").Job()
	out := &structs.Job{ID: testJobID, ETag: "e2"}

	cases := []struct {
		Name   string
		Route  string
		Body   string
		Expect func(svc *api_mock.MockAPI) *gomock.Call
	}{
		{"Accept", common.API_ACCEPT, `{"etag": "e1"}`, func(svc *api_mock.MockAPI) *gomock.Call {
			return svc.EXPECT().AcceptJob(gomock.Any(), tech, ref)
		}},
		{"Status", common.API_STATUS, `{"etag": "e1", "status": "arrived"}`, func(svc *api_mock.MockAPI) *gomock.Call {
			return svc.EXPECT().ChangeStatus(gomock.Any(), tech, ref, structs.ARRIVED)
		}},
		{"Reassign", common.API_ASSIGNEE, `{"etag": "e1", "assigned_to": "tech-9"}`, func(svc *api_mock.MockAPI) *gomock.Call {
			return svc.EXPECT().Reassign(gomock.Any(), tech, ref, "tech-9")
		}},
		{"Cancel", common.API_CANCEL, `{"etag": "e1"}`, func(svc *api_mock.MockAPI) *gomock.Call {
			return svc.EXPECT().Cancel(gomock.Any(), tech, ref)
		}},
		{"Fields", common.API_FIELDS, `{"etag": "e1", "closing_notes": "done"}`, func(svc *api_mock.MockAPI) *gomock.Call {
			notes := "done"
			return svc.EXPECT().EditFields(gomock.Any(), tech, ref, &structs.EditFieldsRequest{ETag: "e1", ClosingNotes: &notes})
		}},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.EXPECT().Identify(gomock.Any(), tech.ID).Return(tech, nil)
			c.Expect(svc).Return(out, nil)

			w := do(h, http.MethodPatch, common.Path(c.Route, testJobID), tech, c.Body)

			assert.Equal(t, http.StatusOK, w.Code)
			result := &structs.Job{}
			assert.Nil(t, json.Unmarshal(w.Body.Bytes(), result))
			assert.Equal(t, out, result)
		})
	}
}

func TestJobOpErrors(t *testing.T) {
	cases := []struct {
		Name   string
		ID     string
		Body   string
		SvcErr error
		Expect int
	}{
		{"BadID", "job-1", `{"etag": "e1"}`, nil, http.StatusBadRequest},
		{"BadBody", testJobID, `{"etag": 1}`, nil, http.StatusBadRequest},
		{"Conflict", testJobID, `{"etag": "e1"}`, ie.ErrETagMismatch, http.StatusConflict},
		{"Forbidden", testJobID, `{"etag": "e1"}`, ie.ErrForbidden, http.StatusForbidden},
		{"NotFound", testJobID, `{"etag": "e1"}`, ie.ErrNotFound, http.StatusNotFound},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.EXPECT().Identify(gomock.Any(), dispatcher.ID).Return(dispatcher, nil)
			if c.SvcErr != nil {
				svc.EXPECT().Cancel(gomock.Any(), dispatcher, gomock.Any()).Return(nil, c.SvcErr)
			}

			w := do(h, http.MethodPatch, common.Path(common.API_CANCEL, c.ID), dispatcher, c.Body)

			assert.Equal(t, c.Expect, w.Code)
		})
	}
}

func TestJobLog(t *testing.T) {
	h, svc := newTestHandler(t)

	entries := []*structs.ChangeLogEntry{{ID: "c2", ChangedAt: 2}, {ID: "c1", ChangedAt: 1}}
	svc.EXPECT().Identify(gomock.Any(), dispatcher.ID).Return(dispatcher, nil)
	svc.EXPECT().JobLog(gomock.Any(), dispatcher, structs.LogAudit, testJobID).Return(entries, nil)

	w := do(h, http.MethodGet, common.JobLogPath(testJobID, "audit"), dispatcher, "")

	assert.Equal(t, http.StatusOK, w.Code)
	result := []*structs.ChangeLogEntry{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, entries, result)
}

func TestImportJobs(t *testing.T) {
	csv := "title,assignedTo\nFix AC,tech-42\n"

	cases := []struct {
		Name   string
		Path   string
		Result *structs.ImportResult
		SvcErr error
		Expect int
	}{
		{"Imported", common.API_IMPORT + "?format=csv", &structs.ImportResult{Success: 1, Errors: []string{}}, nil, http.StatusOK},
		{"Unreadable", common.API_IMPORT + "?format=csv", &structs.ImportResult{Errors: []string{"Invalid CSV: x"}}, ie.ErrInvalidArg, http.StatusBadRequest},
		{"Forbidden", common.API_IMPORT + "?format=csv", nil, ie.ErrForbidden, http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.EXPECT().Identify(gomock.Any(), dispatcher.ID).Return(dispatcher, nil)
			svc.EXPECT().ImportJobs(gomock.Any(), dispatcher, structs.ImportCSV, []byte(csv)).Return(c.Result, c.SvcErr)

			w := do(h, http.MethodPost, c.Path, dispatcher, csv)

			assert.Equal(t, c.Expect, w.Code)
			if c.Result != nil {
				result := &structs.ImportResult{}
				assert.Nil(t, json.Unmarshal(w.Body.Bytes(), result))
				assert.Equal(t, c.Result, result)
			}
		})
	}
}

func TestImportJobsSizeLimit(t *testing.T) {
	defer func(was int64) { maxImportSize = was }(maxImportSize)
	maxImportSize = 32

	row := "Fix AC,tech-42\n"
	fits := "title,assignedTo\n" + row // 32 bytes

	cases := []struct {
		Name   string
		Body   string
		Expect int
	}{
		{"AtLimit", fits, http.StatusOK},
		{"OverLimit", fits + row, http.StatusRequestEntityTooLarge},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.EXPECT().Identify(gomock.Any(), dispatcher.ID).Return(dispatcher, nil)
			if c.Expect == http.StatusOK {
				// the whole document reaches the service, never a prefix of it
				svc.EXPECT().ImportJobs(gomock.Any(), dispatcher, structs.ImportCSV, []byte(c.Body)).Return(&structs.ImportResult{Success: 1, Errors: []string{}}, nil)
			}

			w := do(h, http.MethodPost, common.API_IMPORT+"?format=csv", dispatcher, c.Body)

			assert.Equal(t, c.Expect, w.Code)
		})
	}
}

func TestImportJobsNoFormat(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Identify(gomock.Any(), dispatcher.ID).Return(dispatcher, nil)

	w := do(h, http.MethodPost, common.API_IMPORT, dispatcher, "[]")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetUserRole(t *testing.T) {
	h, svc := newTestHandler(t)
	admin := &structs.User{ID: "admin-1", Role: structs.RoleAdmin, Status: structs.UserActive}
	updated := &structs.User{ID: tech.ID, Role: structs.RoleDispatcher, ETag: "u2"}

	svc.EXPECT().Identify(gomock.Any(), admin.ID).Return(admin, nil)
	svc.EXPECT().SetUserRole(gomock.Any(), admin, structs.NewObjectRef(tech.ID, "u1").User(), structs.RoleDispatcher).Return(updated, nil)

	w := do(h, http.MethodPatch, common.Path(common.API_USER_ROLE, tech.ID), admin, `{"etag": "u1", "role": "dispatcher"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportClientErrorAnonymous(t *testing.T) {
	h, svc := newTestHandler(t)

	in := &structs.ClientError{Error: "boom", Context: "map"}
	svc.EXPECT().ReportClientError(gomock.Any(), nil, in).Return(&structs.ClientError{ID: "x", Error: "boom", UserID: "unknown"}, nil)

	w := do(h, http.MethodPost, common.API_CLIENT_ERRORS, nil, `{"error": "boom", "context": "map"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLocationsBadID(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Identify(gomock.Any(), dispatcher.ID).Return(dispatcher, nil)

	w := do(h, http.MethodGet, common.API_LOCATIONS+"?job_ids=nope", dispatcher, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
