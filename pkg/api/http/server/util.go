package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/voidshard/fortitrack/internal/utils"
	ie "github.com/voidshard/fortitrack/pkg/errors"
	"github.com/voidshard/fortitrack/pkg/structs"
)

var (
	errmap map[int][]error = map[int][]error{
		http.StatusBadRequest: []error{
			ie.ErrNoAssignee,
			ie.ErrNoTitle,
			ie.ErrMaxExceeded,
			ie.ErrInvalidState,
			ie.ErrInvalidTransition,
			ie.ErrInvalidArg,
			ie.ErrNotSupported,
		},
		http.StatusUnauthorized: []error{
			ie.ErrUnauthenticated,
		},
		http.StatusForbidden: []error{
			ie.ErrForbidden,
		},
		http.StatusNotFound: []error{
			ie.ErrNotFound,
		},
		http.StatusConflict: []error{
			ie.ErrETagMismatch,
		},
	}

	// errResponded means an error has already been written to the client
	errResponded = fmt.Errorf("responded")
)

// mapError returns the http status code for a given error from FortiTrack, or
// http.StatusInternalServerError if the error is not recognised.
func mapError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for code, errs := range errmap {
		for _, e := range errs {
			if errors.Is(err, e) {
				return code
			}
		}
	}
	return http.StatusInternalServerError
}

func writeJson(w http.ResponseWriter, code int, obj interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(obj)
}

// jobID reads & checks the {id} route var. Writes an error to the client if
// the ID is bad.
func jobID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if !utils.IsValidID(id) {
		http.Error(w, "bad job id", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func importFormat(r *http.Request) structs.ImportFormat {
	if r.URL.Query().Has("format") {
		return structs.ToImportFormat(r.URL.Query().Get("format"))
	}
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/json":
		return structs.ImportJSON
	case "text/csv":
		return structs.ImportCSV
	}
	return ""
}

func parseInt(w http.ResponseWriter, values map[string][]string, name string, out *int) error {
	v, ok := values[name]
	if !ok || len(v) == 0 {
		return nil
	}
	i, err := strconv.Atoi(v[0])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return fmt.Errorf("bad %s: %v", name, err)
	}
	*out = i
	return nil
}

func unmarshalQuery(w http.ResponseWriter, r *http.Request, out *structs.Query) error {
	q := r.URL.Query()

	err := parseInt(w, q, "limit", &out.Limit)
	if err != nil {
		return err
	}
	err = parseInt(w, q, "offset", &out.Offset)
	if err != nil {
		return err
	}

	for _, name := range []string{"updated_before", "updated_after"} {
		if !q.Has(name) {
			continue
		}
		v, err := strconv.ParseInt(q.Get(name), 10, 64)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return fmt.Errorf("bad %s: %v", name, err)
		}
		if name == "updated_before" {
			out.UpdatedBefore = v
		} else {
			out.UpdatedAfter = v
		}
	}

	if q.Has("job_ids") {
		out.JobIDs = q["job_ids"]
		for _, id := range out.JobIDs {
			if !utils.IsValidID(id) {
				http.Error(w, "bad job id", http.StatusBadRequest)
				return fmt.Errorf("bad job id: %v", id)
			}
		}
	}
	if q.Has("assigned_to") {
		out.AssignedTo = q["assigned_to"]
	}
	if q.Has("statuses") {
		out.Statuses = []structs.Status{}
		for _, s := range q["statuses"] {
			st := structs.ToStatus(s)
			if st == "" {
				http.Error(w, "bad status", http.StatusBadRequest)
				return fmt.Errorf("bad status: %v", s)
			}
			out.Statuses = append(out.Statuses, st)
		}
	}

	out.Sanitize()
	return nil
}

func unmarshalUserQuery(w http.ResponseWriter, r *http.Request, out *structs.UserQuery) error {
	q := r.URL.Query()

	err := parseInt(w, q, "limit", &out.Limit)
	if err != nil {
		return err
	}
	err = parseInt(w, q, "offset", &out.Offset)
	if err != nil {
		return err
	}

	if q.Has("user_ids") {
		out.UserIDs = q["user_ids"]
	}
	if q.Has("roles") {
		out.Roles = []structs.Role{}
		for _, s := range q["roles"] {
			role := structs.ToRole(s)
			if role == "" {
				http.Error(w, "bad role", http.StatusBadRequest)
				return fmt.Errorf("bad role: %v", s)
			}
			out.Roles = append(out.Roles, role)
		}
	}
	if q.Has("statuses") {
		out.Statuses = []structs.UserStatus{}
		for _, s := range q["statuses"] {
			st := structs.ToUserStatus(s)
			if st == "" {
				http.Error(w, "bad status", http.StatusBadRequest)
				return fmt.Errorf("bad status: %v", s)
			}
			out.Statuses = append(out.Statuses, st)
		}
	}

	out.Sanitize()
	return nil
}

// unmarshalJson reads the body of a request and attempts to unmarshal it into the given object.
// This function write an error to the writer if an error occurs, and returns the error.
func unmarshalJson(w http.ResponseWriter, r *http.Request, obj interface{}) error {
	if r.Body == nil {
		http.Error(w, "No body", http.StatusBadRequest)
		return fmt.Errorf("no body")
	}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields() // catch unwanted fields

	err := d.Decode(obj)
	if err != nil {
		// bad JSON or unrecognized json field
		http.Error(w, err.Error(), http.StatusBadRequest)
		return fmt.Errorf("bad json: %v", err)
	}

	return nil
}
