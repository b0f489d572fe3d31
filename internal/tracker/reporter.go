package tracker

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/pkg/database"
	"github.com/voidshard/fortitrack/pkg/database/changes"
	"github.com/voidshard/fortitrack/pkg/structs"
)

// Reporter keeps a Coordinator in step with a technician's jobs as they change.
type Reporter struct {
	userID string
	db     database.Database
	coord  *Coordinator
	log    logrus.FieldLogger
}

func NewReporter(userID string, db database.Database, loc Locator, log logrus.FieldLogger) *Reporter {
	return &Reporter{
		userID: userID,
		db:     db,
		coord:  NewCoordinator(userID, db, loc, log),
		log:    log.WithField("user", userID),
	}
}

// Active returns the IDs of jobs currently being reported on.
func (r *Reporter) Active() []string {
	return r.coord.Active()
}

// Run reports locations until the context is cancelled or the change stream
// fails. All observations are stopped before returning.
func (r *Reporter) Run(ctx context.Context) error {
	defer r.coord.Close()

	// subscribe before loading so no update falls between the two
	stream, err := r.db.Subscribe(ctx)
	if err != nil {
		return err
	}
	defer stream.Close()

	jobs, err := r.assigned(ctx)
	if err != nil {
		return err
	}
	r.coord.Sync(jobs)
	r.log.WithField("jobs", len(jobs)).Info("location reporter running")

	for {
		ch, err := stream.Next()
		if ctx.Err() != nil {
			return nil
		} else if err != nil {
			return err
		} else if ch == nil {
			return nil
		}
		r.apply(ch)
	}
}

func (r *Reporter) apply(ch *changes.Change) {
	if ch.Kind != structs.KindJob {
		return
	}

	if ch.New == nil {
		old, ok := ch.Old.(*structs.Job)
		if ok {
			r.coord.Remove(old.ID)
		}
		return
	}

	j, ok := ch.New.(*structs.Job)
	if !ok {
		return
	}
	// reassigned jobs are evaluated too; the coordinator stops them
	r.coord.Update(j)
}

func (r *Reporter) assigned(ctx context.Context) ([]*structs.Job, error) {
	q := &structs.Query{AssignedTo: []string{r.userID}}
	q.Sanitize()

	all := []*structs.Job{}
	for {
		jobs, err := r.db.Jobs(ctx, q)
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
