package client

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/voidshard/fortitrack/pkg/api/http/common"
	"github.com/voidshard/fortitrack/pkg/structs"
)

// Client talks to a FortiTrack API server as the given user.
type Client struct {
	url  *url.URL
	user string
	http *http.Client
}

func New(address, userID string) (*Client, error) {
	u, err := url.Parse(address)
	return &Client{url: u, user: userID, http: &http.Client{}}, err
}

func (c *Client) CreateJob(in *structs.CreateJobRequest) (*structs.Job, error) {
	var out structs.Job
	return &out, c.genericPost(c.addr(common.API_JOBS), in, &out)
}

// ImportJobs sends a raw json or csv document. An unreadable document returns
// both an error & a result saying why.
func (c *Client) ImportJobs(format structs.ImportFormat, data []byte) (*structs.ImportResult, error) {
	addr := c.addr(common.API_IMPORT)
	addr.RawQuery = url.Values{"format": []string{string(format)}}.Encode()

	var out structs.ImportResult
	err := c.rawPost(addr, contentType(format), data, &out)
	if err != nil && out.Errors == nil {
		return nil, err
	}
	return &out, err
}

func (c *Client) AcceptJob(ref *structs.ObjectRef) (*structs.Job, error) {
	var out structs.Job
	return &out, c.genericPatch(c.addr(common.Path(common.API_ACCEPT, ref.ID)), &structs.ETagRequest{ETag: ref.ETag}, &out)
}

func (c *Client) ChangeStatus(ref *structs.ObjectRef, status structs.Status) (*structs.Job, error) {
	var out structs.Job
	in := &structs.StatusRequest{ETag: ref.ETag, Status: status}
	return &out, c.genericPatch(c.addr(common.Path(common.API_STATUS, ref.ID)), in, &out)
}

func (c *Client) Reassign(ref *structs.ObjectRef, technicianID string) (*structs.Job, error) {
	var out structs.Job
	in := &structs.ReassignRequest{ETag: ref.ETag, AssignedTo: technicianID}
	return &out, c.genericPatch(c.addr(common.Path(common.API_ASSIGNEE, ref.ID)), in, &out)
}

func (c *Client) Cancel(ref *structs.ObjectRef) (*structs.Job, error) {
	var out structs.Job
	return &out, c.genericPatch(c.addr(common.Path(common.API_CANCEL, ref.ID)), &structs.ETagRequest{ETag: ref.ETag}, &out)
}

func (c *Client) EditFields(ref *structs.ObjectRef, in *structs.EditFieldsRequest) (*structs.Job, error) {
	var out structs.Job
	in.ETag = ref.ETag
	return &out, c.genericPatch(c.addr(common.Path(common.API_FIELDS, ref.ID)), in, &out)
}

func (c *Client) Jobs(q *structs.Query) ([]*structs.Job, error) {
	addr := c.addr(common.API_JOBS)
	setQueryString(addr, q)
	var out []*structs.Job
	return out, c.genericGet(addr, &out)
}

func (c *Client) JobLog(log structs.LogName, jobID string) ([]*structs.ChangeLogEntry, error) {
	var out []*structs.ChangeLogEntry
	return out, c.genericGet(c.addr(common.JobLogPath(jobID, string(log))), &out)
}

func (c *Client) LatestLocations(jobIDs []string) ([]*structs.LocationSample, error) {
	addr := c.addr(common.API_LOCATIONS)
	addr.RawQuery = url.Values{"job_ids": jobIDs}.Encode()
	var out []*structs.LocationSample
	return out, c.genericGet(addr, &out)
}

func (c *Client) Diagnostics() (*structs.Diagnostics, error) {
	var out structs.Diagnostics
	return &out, c.genericGet(c.addr(common.API_DIAGNOSTICS), &out)
}

func (c *Client) Users(q *structs.UserQuery) ([]*structs.User, error) {
	addr := c.addr(common.API_USERS)
	q.Sanitize()
	values := url.Values{}
	values.Set("limit", strconv.Itoa(q.Limit))
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.UserIDs != nil {
		values["user_ids"] = q.UserIDs
	}
	for _, r := range q.Roles {
		values.Add("roles", string(r))
	}
	for _, s := range q.Statuses {
		values.Add("statuses", string(s))
	}
	addr.RawQuery = values.Encode()

	var out []*structs.User
	return out, c.genericGet(addr, &out)
}

func (c *Client) Technicians() ([]*structs.User, error) {
	var out []*structs.User
	return out, c.genericGet(c.addr(common.API_TECHNICIANS), &out)
}

func (c *Client) SetUserRole(ref *structs.ObjectRef, role structs.Role) (*structs.User, error) {
	var out structs.User
	in := &structs.RoleRequest{ETag: ref.ETag, Role: role}
	return &out, c.genericPatch(c.addr(common.Path(common.API_USER_ROLE, ref.ID)), in, &out)
}

func (c *Client) SetUserStatus(ref *structs.ObjectRef, status structs.UserStatus) (*structs.User, error) {
	var out structs.User
	in := &structs.UserStatusRequest{ETag: ref.ETag, Status: status}
	return &out, c.genericPatch(c.addr(common.Path(common.API_USER_STATUS, ref.ID)), in, &out)
}

func (c *Client) ReportClientError(in *structs.ClientError) (*structs.ClientError, error) {
	var out structs.ClientError
	return &out, c.genericPost(c.addr(common.API_CLIENT_ERRORS), in, &out)
}

func (c *Client) addr(path string) *url.URL {
	return &url.URL{Scheme: c.url.Scheme, Host: c.url.Host, Path: path}
}

func contentType(format structs.ImportFormat) string {
	if format == structs.ImportCSV {
		return "text/csv"
	}
	return "application/json"
}
