package core

import (
	"context"
	"strings"
	"time"

	"github.com/voidshard/fortitrack/pkg/structs"
)

// estimatedCompletion is free text; these are the layouts we recognise as a time
var completionLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Diagnostics returns unfinished jobs that need a dispatcher's attention as of `now`.
func (s *Service) Diagnostics(ctx context.Context, actor *structs.User, now time.Time) (*structs.Diagnostics, error) {
	err := requireDispatcher(actor)
	if err != nil {
		return nil, err
	}

	// completed & cancelled jobs never appear in any projection
	jobs, err := s.allJobs(ctx, &structs.Query{Statuses: []structs.Status{
		structs.ASSIGNED,
		structs.ENROUTE,
		structs.ARRIVED,
		structs.JOB_STARTED,
	}})
	if err != nil {
		return nil, err
	}

	return buildDiagnostics(jobs, now, s.opts.StuckAfter), nil
}

func buildDiagnostics(jobs []*structs.Job, now time.Time, stuckAfter time.Duration) *structs.Diagnostics {
	d := &structs.Diagnostics{
		PendingConfirmation: []*structs.Job{},
		Overdue:             []*structs.Job{},
		Stuck:               []*structs.Job{},
	}
	stuckBefore := now.Add(-stuckAfter).Unix()

	for _, j := range jobs {
		if isPendingConfirmation(j) {
			d.PendingConfirmation = append(d.PendingConfirmation, j)
		}
		if isOverdue(j, now) {
			d.Overdue = append(d.Overdue, j)
		}
		if !structs.IsFinalStatus(j.Status) && j.UpdatedAt > 0 && j.UpdatedAt < stuckBefore {
			d.Stuck = append(d.Stuck, j)
		}
	}
	return d
}

func isPendingConfirmation(j *structs.Job) bool {
	return j.Status == structs.ASSIGNED && j.ConfirmedAt == nil
}

func isOverdue(j *structs.Job, now time.Time) bool {
	if structs.IsFinalStatus(j.Status) {
		return false
	}
	est, ok := parseCompletion(j.EstimatedCompletion)
	return ok && est.Before(now)
}

// parseCompletion parses an estimated completion. Times without a zone are taken as UTC.
func parseCompletion(in string) (time.Time, bool) {
	in = strings.TrimSpace(in)
	if in == "" {
		return time.Time{}, false
	}
	for _, layout := range completionLayouts {
		t, err := time.Parse(layout, in)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// allJobs pages through every job matching the query
func (s *Service) allJobs(ctx context.Context, q *structs.Query) ([]*structs.Job, error) {
	q.Sanitize()
	q.Offset = 0

	all := []*structs.Job{}
	for {
		jobs, err := s.db.Jobs(ctx, q)
		if err != nil {
			return nil, err
		}
		all = append(all, jobs...)
		if len(jobs) < q.Limit {
			return all, nil
		}
		q.Offset += len(jobs)
	}
}
