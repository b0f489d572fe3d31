package core

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/internal/utils"
	"github.com/voidshard/fortitrack/pkg/database"
	"github.com/voidshard/fortitrack/pkg/errors"
	"github.com/voidshard/fortitrack/pkg/notify"
	"github.com/voidshard/fortitrack/pkg/queue"
	"github.com/voidshard/fortitrack/pkg/structs"
)

const (
	// max values
	maxTitleLength = 500
	maxTextLength  = 10000
)

// timeNow returns the current time in unix seconds
var timeNow = func() int64 {
	return time.Now().Unix()
}

// Service is the job lifecycle controller.
//
// Every operation is performed on behalf of an acting user, who is told the outcome of
// each mutation through the Notifier.
type Service struct {
	db     database.Database
	qu     queue.Queue
	notify notify.Notifier
	audit  *AuditLog
	log    logrus.FieldLogger
	opts   *structs.Options
}

func NewService(db database.Database, qu queue.Queue, nt notify.Notifier, log logrus.FieldLogger, opts *structs.Options) (*Service, error) {
	if opts == nil {
		opts = &structs.Options{}
	}
	opts.SetDefaults()
	if log == nil {
		log = logrus.StandardLogger()
	}
	if nt == nil {
		nt = notify.NewLog(log)
	}
	return &Service{
		db:     db,
		qu:     qu,
		notify: nt,
		audit:  NewAuditLog(db, qu, log),
		log:    log,
		opts:   opts,
	}, nil
}

func (s *Service) Close() error {
	if s.qu != nil {
		s.qu.Close()
	}
	s.notify.Close()
	return s.db.Close()
}

// CreateJob creates a new job in status assigned.
func (s *Service) CreateJob(ctx context.Context, actor *structs.User, req *structs.CreateJobRequest) (*structs.Job, error) {
	job, err := s.createJob(ctx, actor, &req.JobSpec)
	if err != nil {
		s.notifyUser(ctx, actor, structs.SeverityError, fmt.Sprintf("Failed to create job: %v", err))
		return nil, err
	}
	s.notifyUser(ctx, actor, structs.SeveritySuccess, fmt.Sprintf("Job %q created", job.Title))
	return job, nil
}

func (s *Service) createJob(ctx context.Context, actor *structs.User, spec *structs.JobSpec) (*structs.Job, error) {
	err := requireDispatcher(actor)
	if err != nil {
		return nil, err
	}
	err = validateJobSpec(spec)
	if err != nil {
		return nil, err
	}
	err = s.validateTechnician(ctx, spec.AssignedTo)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	job := &structs.Job{
		JobSpec:   *spec,
		ID:        utils.NewRandomID(),
		Status:    structs.ASSIGNED,
		ETag:      utils.NewRandomID(),
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedBy: actor.ID,
		UpdatedAt: now,
	}

	err = s.db.InsertJob(ctx, job)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"job_id": job.ID, "assigned_to": job.AssignedTo, "user": actor.ID}).Info("job created")
	return job, nil
}

// AcceptJob is the assigned technician confirming they'll do the job; the job
// moves to enroute. This writes no change log entry.
func (s *Service) AcceptJob(ctx context.Context, actor *structs.User, ref *structs.ObjectRef) (*structs.Job, error) {
	return s.mutate(ctx, actor, ref, &mutation{
		action:    "accept job",
		authorize: requireAssignee,
		apply: func(j *structs.Job) (*structs.JobUpdate, []*structs.ChangeLogEntry, error) {
			if s.opts.TransitionPolicy != structs.PolicyPermissive && j.Status != structs.ASSIGNED {
				return nil, nil, fmt.Errorf("%w job %s is %s, only %s jobs can be accepted", errors.ErrInvalidTransition, j.ID, j.Status, structs.ASSIGNED)
			}
			now := timeNow()
			status := structs.ENROUTE
			return &structs.JobUpdate{
				Status:      &status,
				ConfirmedAt: &now,
				ConfirmedBy: &actor.ID,
			}, nil, nil
		},
		success: func(j *structs.Job) string { return "Job accepted" },
	})
}

// ChangeStatus moves a job to the given status.
//
// Under the strict policy the move must be in the transition table. Setting a job's
// current status again is always allowed & is still logged.
func (s *Service) ChangeStatus(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, status structs.Status) (*structs.Job, error) {
	return s.mutate(ctx, actor, ref, &mutation{
		action:    "update status",
		authorize: requireDispatcherOrAssignee,
		apply: func(j *structs.Job) (*structs.JobUpdate, []*structs.ChangeLogEntry, error) {
			if structs.ToStatus(string(status)) == "" {
				return nil, nil, fmt.Errorf("%w unknown status %q", errors.ErrInvalidArg, status)
			}
			if !structs.CanTransition(s.opts.TransitionPolicy, j.Status, status) {
				return nil, nil, fmt.Errorf("%w %s -> %s", errors.ErrInvalidTransition, j.Status, status)
			}
			return &structs.JobUpdate{Status: &status},
				[]*structs.ChangeLogEntry{newEntry(j.ID, structs.ChangeStatus, string(j.Status), string(status), actor.ID)},
				nil
		},
		success: func(j *structs.Job) string { return fmt.Sprintf("Status updated to %s", j.Status) },
	})
}

// Reassign hands a job to another technician. The new technician is not validated.
func (s *Service) Reassign(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, technicianID string) (*structs.Job, error) {
	return s.mutate(ctx, actor, ref, &mutation{
		action:    "reassign job",
		authorize: requireDispatcherFor,
		apply: func(j *structs.Job) (*structs.JobUpdate, []*structs.ChangeLogEntry, error) {
			if technicianID == "" {
				return nil, nil, errors.ErrNoAssignee
			}
			return &structs.JobUpdate{AssignedTo: &technicianID},
				[]*structs.ChangeLogEntry{newEntry(j.ID, structs.ChangeReassignment, j.AssignedTo, technicianID, actor.ID)},
				nil
		},
		success: func(j *structs.Job) string { return fmt.Sprintf("Job reassigned to %s", j.AssignedTo) },
	})
}

// Cancel sets a job to cancelled.
func (s *Service) Cancel(ctx context.Context, actor *structs.User, ref *structs.ObjectRef) (*structs.Job, error) {
	return s.mutate(ctx, actor, ref, &mutation{
		action:    "cancel job",
		authorize: requireDispatcherFor,
		apply: func(j *structs.Job) (*structs.JobUpdate, []*structs.ChangeLogEntry, error) {
			if s.opts.TransitionPolicy != structs.PolicyPermissive && structs.IsFinalStatus(j.Status) {
				return nil, nil, fmt.Errorf("%w job %s is already %s", errors.ErrInvalidTransition, j.ID, j.Status)
			}
			status := structs.CANCELLED
			return &structs.JobUpdate{Status: &status},
				[]*structs.ChangeLogEntry{newEntry(j.ID, structs.ChangeCancellation, string(j.Status), string(status), actor.ID)},
				nil
		},
		success: func(j *structs.Job) string { return "Job cancelled" },
	})
}

// EditFields sets the given optional fields, writing one log entry per field whose value changed.
func (s *Service) EditFields(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, req *structs.EditFieldsRequest) (*structs.Job, error) {
	return s.mutate(ctx, actor, ref, &mutation{
		action:    "update job",
		authorize: requireDispatcherOrAssignee,
		apply: func(j *structs.Job) (*structs.JobUpdate, []*structs.ChangeLogEntry, error) {
			u := &structs.JobUpdate{}
			entries := []*structs.ChangeLogEntry{}

			fields := []struct {
				kind    structs.ChangeType
				current string
				given   *string
				set     **string
			}{
				{structs.ChangeStartLocation, j.StartLocation, req.StartLocation, &u.StartLocation},
				{structs.ChangeMaterialsNeeded, j.MaterialsNeeded, req.MaterialsNeeded, &u.MaterialsNeeded},
				{structs.ChangeEstimatedCompletion, j.EstimatedCompletion, req.EstimatedCompletion, &u.EstimatedCompletion},
				{structs.ChangeClosingNotes, j.ClosingNotes, req.ClosingNotes, &u.ClosingNotes},
			}
			for _, f := range fields {
				if f.given == nil || *f.given == f.current {
					continue
				}
				if len(*f.given) > maxTextLength {
					return nil, nil, fmt.Errorf("%w %s is %d chars, max %d", errors.ErrMaxExceeded, f.kind, len(*f.given), maxTextLength)
				}
				*f.set = f.given
				entries = append(entries, newEntry(j.ID, f.kind, f.current, *f.given, actor.ID))
			}

			if len(entries) == 0 {
				return nil, nil, fmt.Errorf("%w no fields changed", errors.ErrInvalidArg)
			}
			return u, entries, nil
		},
		success: func(j *structs.Job) string { return "Job updated" },
	})
}

// Jobs returns jobs matching the query, most recently updated first.
//
// Technicians only ever see jobs assigned to them.
func (s *Service) Jobs(ctx context.Context, actor *structs.User, q *structs.Query) ([]*structs.Job, error) {
	err := requireActive(actor)
	if err != nil {
		return nil, err
	}
	if q == nil {
		q = &structs.Query{}
	}
	if !actor.CanDispatch() {
		q.AssignedTo = []string{actor.ID}
	}
	q.Sanitize()
	return s.db.Jobs(ctx, q)
}

// JobLog returns the named log for a job, newest entry first.
func (s *Service) JobLog(ctx context.Context, actor *structs.User, log structs.LogName, jobID string) ([]*structs.ChangeLogEntry, error) {
	err := requireActive(actor)
	if err != nil {
		return nil, err
	}
	if structs.ToLogName(string(log)) == "" {
		return nil, fmt.Errorf("%w unknown log %q", errors.ErrInvalidArg, log)
	}
	job, err := s.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	err = requireDispatcherOrAssignee(actor, job)
	if err != nil {
		return nil, err
	}

	entries, err := s.db.JobLog(ctx, log, jobID)
	if err != nil {
		return nil, err
	}
	structs.SortNewestFirst(entries)
	return entries, nil
}

// LatestLocations returns the most recent location sample of each given job.
func (s *Service) LatestLocations(ctx context.Context, actor *structs.User, jobIDs []string) ([]*structs.LocationSample, error) {
	err := requireDispatcher(actor)
	if err != nil {
		return nil, err
	}
	return s.db.LatestLocations(ctx, jobIDs)
}

// mutation describes one change to a single job.
type mutation struct {
	// action names the change in failure notifications, ie. "Failed to <action>: ..."
	action string

	authorize func(actor *structs.User, j *structs.Job) error

	// apply decides the update & log entries, given the current job
	apply func(j *structs.Job) (*structs.JobUpdate, []*structs.ChangeLogEntry, error)

	// success is the notification message, given the updated job
	success func(j *structs.Job) string
}

// mutate performs a mutation & notifies the actor of the outcome.
func (s *Service) mutate(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, m *mutation) (*structs.Job, error) {
	job, err := s.doMutate(ctx, actor, ref, m)
	if err != nil {
		s.notifyUser(ctx, actor, structs.SeverityError, fmt.Sprintf("Failed to %s: %v", m.action, err))
		return nil, err
	}
	s.notifyUser(ctx, actor, structs.SeveritySuccess, m.success(job))
	return job, nil
}

func (s *Service) doMutate(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, m *mutation) (*structs.Job, error) {
	err := requireActive(actor)
	if err != nil {
		return nil, err
	}
	err = validateRef(ref)
	if err != nil {
		return nil, err
	}

	job, err := s.job(ctx, ref.ID)
	if err != nil {
		return nil, err
	}
	if job.ETag != ref.ETag {
		return nil, fmt.Errorf("%w job %s has been changed by someone else", errors.ErrETagMismatch, job.ID)
	}

	err = m.authorize(actor, job)
	if err != nil {
		return nil, err
	}

	update, entries, err := m.apply(job)
	if err != nil {
		return nil, err
	}
	update.UpdatedBy = actor.ID
	update.UpdatedAt = timeNow()

	newTag := utils.NewRandomID()
	count, err := s.db.UpdateJob(ctx, ref, newTag, update)
	if err != nil {
		return nil, err
	} else if count == 0 {
		return nil, fmt.Errorf("%w job %s has been changed by someone else", errors.ErrETagMismatch, job.ID)
	}
	update.Apply(job)
	job.ETag = newTag

	if len(entries) > 0 {
		err = s.audit.RecordAll(ctx, entries)
		if err != nil {
			// the job itself has been updated; we can't undo that
			s.log.WithError(err).WithFields(logrus.Fields{"job_id": job.ID, "user": actor.ID}).Error("change history not recorded")
		}
	}

	return job, nil
}

// job returns a single job by ID
func (s *Service) job(ctx context.Context, id string) (*structs.Job, error) {
	jobs, err := s.db.Jobs(ctx, &structs.Query{JobIDs: []string{id}, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w job %s", errors.ErrNotFound, id)
	}
	return jobs[0], nil
}

// validateTechnician checks that the given user exists, is active & is a technician
func (s *Service) validateTechnician(ctx context.Context, userID string) error {
	users, err := s.db.Users(ctx, &structs.UserQuery{UserIDs: []string{userID}, Limit: 1})
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return fmt.Errorf("%w technician %s not found", errors.ErrInvalidArg, userID)
	}
	u := users[0]
	if u.Role != structs.RoleTechnician || !u.IsActive() {
		return fmt.Errorf("%w user %s is not an active technician", errors.ErrInvalidArg, userID)
	}
	return nil
}

// notifyUser tells the actor about the outcome of their action. Failure to deliver
// is logged & otherwise ignored.
func (s *Service) notifyUser(ctx context.Context, actor *structs.User, severity structs.Severity, msg string) {
	if actor == nil {
		return
	}
	err := s.notify.Notify(ctx, actor.ID, &structs.Notification{
		UserID:   actor.ID,
		Severity: severity,
		Message:  msg,
		At:       timeNow(),
	})
	if err != nil {
		s.log.WithError(err).WithField("user", actor.ID).Warn("failed to deliver notification")
	}
}
