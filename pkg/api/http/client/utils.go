package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/voidshard/fortitrack/pkg/api/http/common"
	ie "github.com/voidshard/fortitrack/pkg/errors"
	"github.com/voidshard/fortitrack/pkg/structs"
)

// statusErrors turns error codes back into the errors the server mapped them from
var statusErrors = map[int]error{
	http.StatusBadRequest:   ie.ErrInvalidArg,
	http.StatusUnauthorized: ie.ErrUnauthenticated,
	http.StatusForbidden:    ie.ErrForbidden,
	http.StatusNotFound:     ie.ErrNotFound,
	http.StatusConflict:     ie.ErrETagMismatch,

	http.StatusRequestEntityTooLarge: ie.ErrMaxExceeded,
}

// genericPost is a helper to POST data to a given URL and unmarshal the response
func (c *Client) genericPost(addr *url.URL, in interface{}, out interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.rawPost(addr, "application/json", data, out)
}

// rawPost POSTs data as is
func (c *Client) rawPost(addr *url.URL, contentType string, data []byte, out interface{}) error {
	req, err := http.NewRequest(http.MethodPost, addr.String(), bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, out)
}

// genericPatch is a helper to PATCH data to a given URL and unmarshal the response
func (c *Client) genericPatch(addr *url.URL, in interface{}, out interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPatch, addr.String(), bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// genericGet is a helper to GET data from a given URL and unmarshal the response.
// Implies the Query string is already set, if needed.
func (c *Client) genericGet(addr *url.URL, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, addr.String(), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// do sends the request as our user. On an error status the body is decoded into
// out if it's json (import results), and an error returned.
func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set(common.HEADER_USER, c.user)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	} else if resp.Body == nil {
		if resp.StatusCode >= 400 {
			return statusError(resp.StatusCode, nil)
		}
		return nil
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 { // some error code, assume message is error message
		if resp.Header.Get("Content-Type") == "application/json" {
			json.Unmarshal(body, out)
		}
		return statusError(resp.StatusCode, body)
	}

	return json.Unmarshal(body, out)
}

func statusError(code int, body []byte) error {
	known, ok := statusErrors[code]
	if ok {
		return fmt.Errorf("%w (status code %d) %s", known, code, bytes.TrimSpace(body))
	}
	return fmt.Errorf("bad status code %d, returned %s", code, bytes.TrimSpace(body))
}

// setQueryString sets the query string of a URL based on the given query object.
func setQueryString(u *url.URL, q *structs.Query) {
	q.Sanitize()
	values := u.Query()

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.JobIDs != nil {
		values["job_ids"] = q.JobIDs
	}
	if q.AssignedTo != nil {
		values["assigned_to"] = q.AssignedTo
	}
	if q.Statuses != nil {
		ss := []string{}
		for _, s := range q.Statuses {
			ss = append(ss, string(s))
		}
		values["statuses"] = ss
	}
	if q.UpdatedBefore > 0 {
		values.Set("updated_before", strconv.FormatInt(q.UpdatedBefore, 10))
	}
	if q.UpdatedAfter > 0 {
		values.Set("updated_after", strconv.FormatInt(q.UpdatedAfter, 10))
	}

	u.RawQuery = values.Encode()
}
