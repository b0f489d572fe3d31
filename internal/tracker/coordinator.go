package tracker

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/internal/utils"
	"github.com/voidshard/fortitrack/pkg/database"
	"github.com/voidshard/fortitrack/pkg/structs"
)

var timeNow = func() int64 {
	return time.Now().Unix()
}

type watch struct {
	stop func() error
}

// Coordinator owns the location observations for one technician, at most one
// per job. Whether a job is observed depends only on its last seen status.
type Coordinator struct {
	userID string
	db     database.Database
	loc    Locator
	log    logrus.FieldLogger

	ctx    context.Context
	cancel context.CancelFunc

	lock   sync.Mutex
	active map[string]*watch
	closed bool
}

func NewCoordinator(userID string, db database.Database, loc Locator, log logrus.FieldLogger) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		userID: userID,
		db:     db,
		loc:    loc,
		log:    log.WithField("user", userID),
		ctx:    ctx,
		cancel: cancel,
		active: map[string]*watch{},
	}
}

// Sync re-evaluates every job given. Jobs being observed that aren't in the
// list are stopped.
func (c *Coordinator) Sync(jobs []*structs.Job) {
	c.lock.Lock()
	defer c.lock.Unlock()

	seen := map[string]bool{}
	for _, j := range jobs {
		seen[j.ID] = true
		c.evaluate(j)
	}
	for id := range c.active {
		if !seen[id] {
			c.stop(id)
		}
	}
}

// Update re-evaluates a single job.
func (c *Coordinator) Update(j *structs.Job) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.evaluate(j)
}

// Remove stops observing the job, if we were.
func (c *Coordinator) Remove(jobID string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.stop(jobID)
}

// Active returns the IDs of jobs currently being observed.
func (c *Coordinator) Active() []string {
	c.lock.Lock()
	defer c.lock.Unlock()

	ids := []string{}
	for id := range c.active {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close stops all observations. Further updates are ignored.
func (c *Coordinator) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	for id := range c.active {
		c.stop(id)
	}
	c.closed = true
	c.cancel()
	return nil
}

func (c *Coordinator) evaluate(j *structs.Job) {
	if c.closed {
		return
	}
	_, observing := c.active[j.ID]
	trackable := j.AssignedTo == c.userID && structs.IsTrackable(j.Status)

	if trackable && !observing {
		c.start(j.ID)
	} else if !trackable && observing {
		c.stop(j.ID)
	}
}

// start begins observing for a job. Caller holds the lock.
func (c *Coordinator) start(jobID string) {
	w := &watch{}
	stop, err := c.loc.Watch(c.userID, func(fix *structs.Fix) {
		if !c.isActive(jobID, w) {
			return
		}
		c.record(jobID, fix)
	})
	if err != nil {
		c.reportError(jobID, fmt.Sprintf("failed to start location updates: %v", err))
		return
	}
	w.stop = stop
	c.active[jobID] = w
	c.log.WithField("job_id", jobID).Info("location reporting started")
}

// stop ends observing for a job. Caller holds the lock.
func (c *Coordinator) stop(jobID string) {
	w, ok := c.active[jobID]
	if !ok {
		return
	}
	delete(c.active, jobID)

	err := w.stop()
	if err != nil {
		c.log.WithError(err).WithField("job_id", jobID).Warn("failed to stop location updates")
	}
	c.log.WithField("job_id", jobID).Info("location reporting stopped")
}

func (c *Coordinator) isActive(jobID string, w *watch) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.active[jobID] == w
}

// record stores one fix against the job. Failures are reported, never fatal.
func (c *Coordinator) record(jobID string, fix *structs.Fix) {
	if fix.Err != "" {
		c.reportError(jobID, fmt.Sprintf("location error: %s", fix.Err))
		return
	}

	err := c.db.InsertLocation(c.ctx, &structs.LocationSample{
		ID:         utils.NewRandomID(),
		JobID:      jobID,
		Latitude:   fix.Latitude,
		Longitude:  fix.Longitude,
		Accuracy:   fix.Accuracy,
		RecordedAt: timeNow(),
		ReportedBy: c.userID,
	})
	if err != nil {
		c.reportError(jobID, fmt.Sprintf("failed to store location: %v", err))
	}
}

func (c *Coordinator) reportError(jobID, msg string) {
	c.log.WithField("job_id", jobID).Warn(msg)

	err := c.db.InsertClientError(c.ctx, &structs.ClientError{
		ID:        utils.NewRandomID(),
		Error:     msg,
		UserID:    c.userID,
		Context:   fmt.Sprintf("location reporter job %s", jobID),
		CreatedAt: timeNow(),
	})
	if err != nil {
		c.log.WithError(err).WithField("job_id", jobID).Error("failed to store client error")
	}
}
