package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	ie "github.com/voidshard/fortitrack/pkg/errors"
	"github.com/voidshard/fortitrack/pkg/structs"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		Name   string
		Given  error
		Expect int
	}{
		{"Nil", nil, http.StatusOK},
		{"NoAssignee", ie.ErrNoAssignee, http.StatusBadRequest},
		{"WrappedTransition", fmt.Errorf("%w enroute -> assigned", ie.ErrInvalidTransition), http.StatusBadRequest},
		{"Unauthenticated", ie.ErrUnauthenticated, http.StatusUnauthorized},
		{"Forbidden", fmt.Errorf("%w not yours", ie.ErrForbidden), http.StatusForbidden},
		{"NotFound", ie.ErrNotFound, http.StatusNotFound},
		{"ETagMismatch", ie.ErrETagMismatch, http.StatusConflict},
		{"Unknown", fmt.Errorf("db down"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, mapError(c.Given))
		})
	}
}

func TestUnmarshalQuery(t *testing.T) {
	id := "0a3e36b4-69b0-4c0b-9b5e-2b5a8e3cf0a1"

	cases := []struct {
		Name      string
		Given     string
		Expect    *structs.Query
		ExpectErr bool
	}{
		{"Empty", "", &structs.Query{Limit: 1000}, false},
		{
			"Everything",
			"?limit=10&offset=20&job_ids=" + id + "&statuses=enroute&statuses=ARRIVED&assigned_to=tech-42&updated_after=5&updated_before=9",
			&structs.Query{
				Limit:         10,
				Offset:        20,
				JobIDs:        []string{id},
				Statuses:      []structs.Status{structs.ENROUTE, structs.ARRIVED},
				AssignedTo:    []string{"tech-42"},
				UpdatedAfter:  5,
				UpdatedBefore: 9,
			},
			false,
		},
		{"BadLimit", "?limit=ten", nil, true},
		{"BadJobID", "?job_ids=job-1", nil, true},
		{"BadStatus", "?statuses=declined", nil, true},
		{"BadUpdated", "?updated_after=yesterday", nil, true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/jobs"+c.Given, nil)
			q := &structs.Query{}

			err := unmarshalQuery(w, r, q)

			if c.ExpectErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, w.Code)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, c.Expect, q)
		})
	}
}

func TestUnmarshalUserQuery(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/users?roles=technician&statuses=active&user_ids=tech-42", nil)
	q := &structs.UserQuery{}

	err := unmarshalUserQuery(w, r, q)

	assert.Nil(t, err)
	assert.Equal(t, &structs.UserQuery{
		Limit:    1000,
		UserIDs:  []string{"tech-42"},
		Roles:    []structs.Role{structs.RoleTechnician},
		Statuses: []structs.UserStatus{structs.UserActive},
	}, q)

	r = httptest.NewRequest(http.MethodGet, "/api/v1/users?roles=owner", nil)
	err = unmarshalUserQuery(httptest.NewRecorder(), r, &structs.UserQuery{})
	assert.Error(t, err)
}

func TestUnmarshalJson(t *testing.T) {
	cases := []struct {
		Name      string
		Body      string
		ExpectErr bool
	}{
		{"Valid", `{"etag": "abc", "status": "enroute"}`, false},
		{"UnknownField", `{"etag": "abc", "colour": "red"}`, true},
		{"NotJson", `etag=abc`, true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(c.Body))
			out := &structs.StatusRequest{}

			err := unmarshalJson(w, r, out)

			if c.ExpectErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, w.Code)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, &structs.StatusRequest{ETag: "abc", Status: structs.ENROUTE}, out)
			}
		})
	}
}

func TestImportFormat(t *testing.T) {
	cases := []struct {
		Name        string
		Query       string
		ContentType string
		Expect      structs.ImportFormat
	}{
		{"QueryJson", "?format=json", "text/csv", structs.ImportJSON},
		{"QueryCsv", "?format=csv", "", structs.ImportCSV},
		{"QueryUnknown", "?format=xml", "application/json", ""},
		{"ContentTypeCsv", "", "text/csv; charset=utf-8", structs.ImportCSV},
		{"ContentTypeJson", "", "application/json", structs.ImportJSON},
		{"Neither", "", "", ""},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/import"+c.Query, nil)
			r.Header.Set("Content-Type", c.ContentType)
			assert.Equal(t, c.Expect, importFormat(r))
		})
	}
}
