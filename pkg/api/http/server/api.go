package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/internal/utils"
	"github.com/voidshard/fortitrack/pkg/api"
	"github.com/voidshard/fortitrack/pkg/api/http/common"
	"github.com/voidshard/fortitrack/pkg/structs"
)

const (
	wait = 30 * time.Second
)

// maxImportSize is the largest import document we'll read
var maxImportSize int64 = 10 << 20

type Server struct {
	addr       string
	static     string
	debug      bool
	svc        api.API
	log        logrus.FieldLogger
	exit       chan os.Signal
	httpserver *http.Server
}

// Handler returns the routes served for the given API.
func (s *Server) Handler(svc api.API) http.Handler {
	s.svc = svc

	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)

	// literal routes are registered before their {id} siblings
	router.HandleFunc(common.API_IMPORT, s.ImportJobs).Methods(http.MethodPost)
	router.HandleFunc(common.API_JOBS, s.Jobs).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc(common.API_ACCEPT, s.JobOp(s.accept)).Methods(http.MethodPatch)
	router.HandleFunc(common.API_STATUS, s.JobOp(s.changeStatus)).Methods(http.MethodPatch)
	router.HandleFunc(common.API_ASSIGNEE, s.JobOp(s.reassign)).Methods(http.MethodPatch)
	router.HandleFunc(common.API_CANCEL, s.JobOp(s.cancel)).Methods(http.MethodPatch)
	router.HandleFunc(common.API_FIELDS, s.JobOp(s.editFields)).Methods(http.MethodPatch)
	router.HandleFunc(common.API_JOB_LOG, s.JobLog).Methods(http.MethodGet)
	router.HandleFunc(common.API_LOCATIONS, s.Locations).Methods(http.MethodGet)
	router.HandleFunc(common.API_DIAGNOSTICS, s.Diagnostics).Methods(http.MethodGet)

	router.HandleFunc(common.API_USERS, s.Users).Methods(http.MethodGet)
	router.HandleFunc(common.API_TECHNICIANS, s.Technicians).Methods(http.MethodGet)
	router.HandleFunc(common.API_USER_ROLE, s.SetUserRole).Methods(http.MethodPatch)
	router.HandleFunc(common.API_USER_STATUS, s.SetUserStatus).Methods(http.MethodPatch)
	router.HandleFunc(common.API_CLIENT_ERRORS, s.ReportClientError).Methods(http.MethodPost)

	if s.static != "" {
		s.log.WithField("dir", s.static).Info("serving static files")
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.static)))
	}

	if s.debug {
		s.log.Debug("debug enabled, adding per-request logging middleware")
		router.Use(loggingMiddleware(s.log))
	}
	router.Use(identityMiddleware(s.svc))

	return router
}

func (s *Server) ServeForever(svc api.API) error {
	s.httpserver = &http.Server{
		Handler:      s.Handler(svc),
		Addr:         s.addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		s.log.WithField("addr", s.httpserver.Addr).Info("listening")
		if err := s.httpserver.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Error("server stopped")
		}
	}()

	signal.Notify(s.exit, os.Interrupt)
	<-s.exit

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	return s.httpserver.Shutdown(ctx)
}

func (s *Server) Jobs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getJobs(w, r)
	case http.MethodPost:
		s.createJob(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) createJob(w http.ResponseWriter, r *http.Request) {
	cjr := &structs.CreateJobRequest{}
	err := unmarshalJson(w, r, cjr)
	if err != nil {
		return
	}

	resp, err := s.svc.CreateJob(r.Context(), actor(r), cjr)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusCreated, resp)
}

func (s *Server) getJobs(w http.ResponseWriter, r *http.Request) {
	q := &structs.Query{}
	err := unmarshalQuery(w, r, q)
	if err != nil {
		return
	}

	items, err := s.svc.Jobs(r.Context(), actor(r), q)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	if s.debug {
		s.log.WithFields(logrus.Fields{"url": r.URL.String(), "items": len(items)}).Debug("returned jobs")
	}

	writeJson(w, http.StatusOK, items)
}

// ImportJobs reads a raw json or csv document. The format comes from ?format=,
// falling back to the Content-Type.
func (s *Server) ImportJobs(w http.ResponseWriter, r *http.Request) {
	format := importFormat(r)
	if format == "" {
		http.Error(w, "format must be json or csv", http.StatusBadRequest)
		return
	}
	if r.Body == nil {
		http.Error(w, "No body", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportSize))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, fmt.Sprintf("import documents are limited to %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.svc.ImportJobs(r.Context(), actor(r), format, data)
	if err != nil && result == nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	// if the document couldn't be read the result says why
	writeJson(w, mapError(err), result)
}

// JobOp wraps an operation on a single job named by the {id} route var.
func (s *Server) JobOp(fn func(w http.ResponseWriter, r *http.Request, id string) (*structs.Job, error)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := jobID(w, r)
		if !ok {
			return
		}

		job, err := fn(w, r, id)
		if err == errResponded {
			return
		} else if err != nil {
			http.Error(w, err.Error(), mapError(err))
			return
		}

		writeJson(w, http.StatusOK, job)
	}
}

func (s *Server) accept(w http.ResponseWriter, r *http.Request, id string) (*structs.Job, error) {
	req := &structs.ETagRequest{}
	if unmarshalJson(w, r, req) != nil {
		return nil, errResponded
	}
	return s.svc.AcceptJob(r.Context(), actor(r), structs.NewObjectRef(id, req.ETag).Job())
}

func (s *Server) changeStatus(w http.ResponseWriter, r *http.Request, id string) (*structs.Job, error) {
	req := &structs.StatusRequest{}
	if unmarshalJson(w, r, req) != nil {
		return nil, errResponded
	}
	return s.svc.ChangeStatus(r.Context(), actor(r), structs.NewObjectRef(id, req.ETag).Job(), req.Status)
}

func (s *Server) reassign(w http.ResponseWriter, r *http.Request, id string) (*structs.Job, error) {
	req := &structs.ReassignRequest{}
	if unmarshalJson(w, r, req) != nil {
		return nil, errResponded
	}
	return s.svc.Reassign(r.Context(), actor(r), structs.NewObjectRef(id, req.ETag).Job(), req.AssignedTo)
}

func (s *Server) cancel(w http.ResponseWriter, r *http.Request, id string) (*structs.Job, error) {
	req := &structs.ETagRequest{}
	if unmarshalJson(w, r, req) != nil {
		return nil, errResponded
	}
	return s.svc.Cancel(r.Context(), actor(r), structs.NewObjectRef(id, req.ETag).Job())
}

func (s *Server) editFields(w http.ResponseWriter, r *http.Request, id string) (*structs.Job, error) {
	req := &structs.EditFieldsRequest{}
	if unmarshalJson(w, r, req) != nil {
		return nil, errResponded
	}
	return s.svc.EditFields(r.Context(), actor(r), structs.NewObjectRef(id, req.ETag).Job(), req)
}

func (s *Server) JobLog(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(w, r)
	if !ok {
		return
	}

	entries, err := s.svc.JobLog(r.Context(), actor(r), structs.ToLogName(mux.Vars(r)["log"]), id)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusOK, entries)
}

func (s *Server) Locations(w http.ResponseWriter, r *http.Request) {
	ids := r.URL.Query()["job_ids"]
	for _, id := range ids {
		if !utils.IsValidID(id) {
			http.Error(w, "bad job id", http.StatusBadRequest)
			return
		}
	}

	samples, err := s.svc.LatestLocations(r.Context(), actor(r), ids)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusOK, samples)
}

func (s *Server) Diagnostics(w http.ResponseWriter, r *http.Request) {
	d, err := s.svc.Diagnostics(r.Context(), actor(r), time.Now())
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	writeJson(w, http.StatusOK, d)
}

func (s *Server) Close() error {
	s.exit <- os.Interrupt
	return nil
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func NewServer(addr, static string, debug bool, log logrus.FieldLogger) *Server {
	return &Server{
		static: static,
		addr:   addr,
		debug:  debug,
		log:    log,
		exit:   make(chan os.Signal, 1),
	}
}
