package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/voidshard/fortitrack/pkg/structs"
)

func (s *Server) Users(w http.ResponseWriter, r *http.Request) {
	q := &structs.UserQuery{}
	err := unmarshalUserQuery(w, r, q)
	if err != nil {
		return
	}

	users, err := s.svc.Users(r.Context(), actor(r), q)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusOK, users)
}

func (s *Server) Technicians(w http.ResponseWriter, r *http.Request) {
	users, err := s.svc.Technicians(r.Context(), actor(r))
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusOK, users)
}

func (s *Server) SetUserRole(w http.ResponseWriter, r *http.Request) {
	req := &structs.RoleRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	ref := structs.NewObjectRef(mux.Vars(r)["id"], req.ETag).User()
	u, err := s.svc.SetUserRole(r.Context(), actor(r), ref, req.Role)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusOK, u)
}

func (s *Server) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	req := &structs.UserStatusRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	ref := structs.NewObjectRef(mux.Vars(r)["id"], req.ETag).User()
	u, err := s.svc.SetUserStatus(r.Context(), actor(r), ref, req.Status)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusOK, u)
}

// ReportClientError accepts reports from anyone, signed in or not.
func (s *Server) ReportClientError(w http.ResponseWriter, r *http.Request) {
	in := &structs.ClientError{}
	err := unmarshalJson(w, r, in)
	if err != nil {
		return
	}

	out, err := s.svc.ReportClientError(r.Context(), actor(r), in)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusCreated, out)
}
