package database

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voidshard/fortitrack/pkg/database/changes"
	"github.com/voidshard/fortitrack/pkg/errors"
	"github.com/voidshard/fortitrack/pkg/structs"
)

const (
	tableJobs         = "jobs"
	tableChanges      = "job_changes"
	tableAudit        = "job_audit"
	tableLocations    = "job_locations"
	tableUsers        = "users"
	tableClientErrors = "client_errors"

	// channel our triggers pg_notify on (see migrations)
	eventChannel = "fortitrack_events"

	jobColumns      = "id, title, description, assigned_to, start_location, materials_needed, estimated_completion, closing_notes, status, etag, created_by, created_at, updated_by, updated_at, confirmed_at, confirmed_by"
	changeColumns   = "id, job_id, type, old_value, new_value, changed_by, changed_at"
	locationColumns = "id, job_id, latitude, longitude, accuracy, recorded_at, reported_by"
	userColumns     = "id, email, display_name, role, status, etag, created_at, updated_at"
)

// Postgres is a fortitrack database implementation that uses postgres.
type Postgres struct {
	opts *Options
	pool *pgxpool.Pool
}

// NewPostgres returns a new Postgres database connection.
func NewPostgres(opts *Options) (*Postgres, error) {
	pool, err := pgxpool.New(context.Background(), opts.connURL())
	return &Postgres{pool: pool, opts: opts}, err
}

// Close shuts down the database connection.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// InsertJob inserts a new job
func (p *Postgres) InsertJob(ctx context.Context, j *structs.Job) error {
	qstr, args := toJobSqlArgs(1, j) // the sql lib starts at 1
	qstr = fmt.Sprintf(`INSERT INTO %s (%s) VALUES %s;`, tableJobs, jobColumns, qstr)
	return p.exec(ctx, qstr, args...)
}

// UpdateJob applies the set fields of `u` to the job if (and only if) the job's etag still matches.
// Returns the number of rows updated.
func (p *Postgres) UpdateJob(ctx context.Context, ref *structs.ObjectRef, newTag string, u *structs.JobUpdate) (int64, error) {
	qstr, args := toJobUpdateSql(ref, newTag, u)
	return p.execCount(ctx, qstr, args...)
}

// Jobs returns jobs matching the given query, most recently updated first
func (p *Postgres) Jobs(ctx context.Context, q *structs.Query) ([]*structs.Job, error) {
	where, args := toSqlQuery(map[string][]string{
		"id":          q.JobIDs,
		"status":      statusToStrings(q.Statuses),
		"assigned_to": q.AssignedTo,
	},
		q.UpdatedBefore, q.UpdatedAfter,
	)
	args = append(args, q.Limit, q.Offset)

	qstr := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY updated_at DESC LIMIT $%d OFFSET $%d;`,
		jobColumns, tableJobs, where, len(args)-1, len(args),
	)

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []*structs.Job{}
	for rows.Next() {
		j := structs.Job{}
		err = rows.Scan(
			&j.ID,
			&j.Title,
			&j.Description,
			&j.AssignedTo,
			&j.StartLocation,
			&j.MaterialsNeeded,
			&j.EstimatedCompletion,
			&j.ClosingNotes,
			&j.Status,
			&j.ETag,
			&j.CreatedBy,
			&j.CreatedAt,
			&j.UpdatedBy,
			&j.UpdatedAt,
			&j.ConfirmedAt,
			&j.ConfirmedBy,
		)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, &j)
	}

	return jobs, rows.Err()
}

// InsertChanges writes entries to both the changes and audit tables in a single transaction
func (p *Postgres) InsertChanges(ctx context.Context, in []*structs.ChangeLogEntry) error {
	if len(in) == 0 {
		return nil
	}

	// build the SQL before we open a transaction
	vals, args := []string{}, []interface{}{}
	for _, e := range in {
		s, a := toChangeSqlArgs(len(args)+1, e)
		vals = append(vals, s)
		args = append(args, a...)
	}
	values := strings.Join(vals, ",") // join so its (),(),() etc

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}

	for _, table := range []string{tableChanges, tableAudit} {
		qstr := fmt.Sprintf(`INSERT INTO %s (%s) VALUES %s ON CONFLICT (id) DO NOTHING;`, table, changeColumns, values)
		_, err = tx.Exec(ctx, qstr, args...)
		if err != nil {
			tx.Rollback(ctx)
			return err
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		tx.Rollback(ctx)
	}
	return err
}

// JobLog returns all entries of the given log for a job, newest first. Entries
// with the same changed_at come latest written first.
func (p *Postgres) JobLog(ctx context.Context, log structs.LogName, jobID string) ([]*structs.ChangeLogEntry, error) {
	table, err := logTable(log)
	if err != nil {
		return nil, err
	}
	qstr := toJobLogSql(table)

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*structs.ChangeLogEntry{}
	for rows.Next() {
		e := structs.ChangeLogEntry{}
		err = rows.Scan(&e.ID, &e.JobID, &e.Type, &e.OldValue, &e.NewValue, &e.ChangedBy, &e.ChangedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func toJobLogSql(table string) string {
	return fmt.Sprintf(`SELECT %s FROM %s WHERE job_id=$1 ORDER BY changed_at DESC, seq DESC;`, changeColumns, table)
}

// InsertLocation stores a location sample
func (p *Postgres) InsertLocation(ctx context.Context, in *structs.LocationSample) error {
	qstr, args := toLocationSqlArgs(1, in)
	qstr = fmt.Sprintf(`INSERT INTO %s (%s) VALUES %s;`, tableLocations, locationColumns, qstr)
	return p.exec(ctx, qstr, args...)
}

// LatestLocations returns the most recent sample for each of the given jobs (if any).
func (p *Postgres) LatestLocations(ctx context.Context, jobIDs []string) ([]*structs.LocationSample, error) {
	if len(jobIDs) == 0 {
		return []*structs.LocationSample{}, nil
	}
	in, args := toSqlIn(1, "job_id", jobIDs)
	qstr := fmt.Sprintf(`SELECT DISTINCT ON (job_id) %s FROM %s WHERE %s ORDER BY job_id, recorded_at DESC;`,
		locationColumns, tableLocations, in,
	)

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*structs.LocationSample{}
	for rows.Next() {
		l := structs.LocationSample{}
		err = rows.Scan(&l.ID, &l.JobID, &l.Latitude, &l.Longitude, &l.Accuracy, &l.RecordedAt, &l.ReportedBy)
		if err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// InsertUser adds a new user
func (p *Postgres) InsertUser(ctx context.Context, u *structs.User) error {
	qstr, args := toUserSqlArgs(1, u)
	qstr = fmt.Sprintf(`INSERT INTO %s (%s) VALUES %s;`, tableUsers, userColumns, qstr)
	return p.exec(ctx, qstr, args...)
}

// SetUserRole sets the role of a user, if the etag matches
func (p *Postgres) SetUserRole(ctx context.Context, ref *structs.ObjectRef, newTag string, role structs.Role) (int64, error) {
	qstr := fmt.Sprintf(`UPDATE %s SET role=$1, etag=$2, updated_at=$3 WHERE id=$4 AND etag=$5;`, tableUsers)
	return p.execCount(ctx, qstr, role, newTag, timeNow(), ref.ID, ref.ETag)
}

// SetUserStatus sets the status of a user, if the etag matches
func (p *Postgres) SetUserStatus(ctx context.Context, ref *structs.ObjectRef, newTag string, status structs.UserStatus) (int64, error) {
	qstr := fmt.Sprintf(`UPDATE %s SET status=$1, etag=$2, updated_at=$3 WHERE id=$4 AND etag=$5;`, tableUsers)
	return p.execCount(ctx, qstr, status, newTag, timeNow(), ref.ID, ref.ETag)
}

// Users returns users matching the given query, ordered by display name
func (p *Postgres) Users(ctx context.Context, q *structs.UserQuery) ([]*structs.User, error) {
	roles := []string{}
	for _, r := range q.Roles {
		roles = append(roles, string(r))
	}
	statuses := []string{}
	for _, s := range q.Statuses {
		statuses = append(statuses, string(s))
	}
	where, args := toSqlQuery(map[string][]string{
		"id":     q.UserIDs,
		"role":   roles,
		"status": statuses,
	}, 0, 0)
	args = append(args, q.Limit, q.Offset)

	qstr := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY display_name ASC LIMIT $%d OFFSET $%d;`,
		userColumns, tableUsers, where, len(args)-1, len(args),
	)

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*structs.User{}
	for rows.Next() {
		u := structs.User{}
		err = rows.Scan(&u.ID, &u.Email, &u.DisplayName, &u.Role, &u.Status, &u.ETag, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// InsertClientError stores a client side error report
func (p *Postgres) InsertClientError(ctx context.Context, e *structs.ClientError) error {
	if e.CreatedAt == 0 {
		e.CreatedAt = timeNow()
	}
	qstr := fmt.Sprintf(`INSERT INTO %s (id, error, stack, user_id, context, created_at) VALUES ($1, $2, $3, $4, $5, $6);`, tableClientErrors)
	return p.exec(ctx, qstr, e.ID, e.Error, e.Stack, e.UserID, e.Context, e.CreatedAt)
}

// Subscribe returns a stream of changes to jobs (see pkg/database/changes) this is implemented
// in pkg/database/postgres_change_stream.go
func (p *Postgres) Subscribe(ctx context.Context) (changes.Stream, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	_, err = conn.Exec(ctx, "listen "+eventChannel)
	if err != nil {
		conn.Release()
		return nil, err
	}
	return &pgChangeStream{
		ctx:  ctx,
		conn: conn,
	}, nil
}

func (p *Postgres) exec(ctx context.Context, qstr string, args ...interface{}) error {
	_, err := p.execCount(ctx, qstr, args...)
	return err
}

func (p *Postgres) execCount(ctx context.Context, qstr string, args ...interface{}) (int64, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	info, err := conn.Exec(ctx, qstr, args...)
	if err != nil {
		return 0, err
	}
	return info.RowsAffected(), nil
}

// logTable returns the table backing the named log
func logTable(log structs.LogName) (string, error) {
	switch log {
	case structs.LogChanges:
		return tableChanges, nil
	case structs.LogAudit:
		return tableAudit, nil
	}
	return "", fmt.Errorf("%w unknown log %s", errors.ErrInvalidArg, log)
}

// toJobUpdateSql converts a partial job update into an UPDATE guarded by id & etag
func toJobUpdateSql(ref *structs.ObjectRef, newTag string, u *structs.JobUpdate) (string, []interface{}) {
	sets := []string{}
	args := []interface{}{}
	set := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}

	if u.Status != nil {
		set("status", *u.Status)
	}
	if u.AssignedTo != nil {
		set("assigned_to", *u.AssignedTo)
	}
	if u.StartLocation != nil {
		set("start_location", *u.StartLocation)
	}
	if u.MaterialsNeeded != nil {
		set("materials_needed", *u.MaterialsNeeded)
	}
	if u.EstimatedCompletion != nil {
		set("estimated_completion", *u.EstimatedCompletion)
	}
	if u.ClosingNotes != nil {
		set("closing_notes", *u.ClosingNotes)
	}
	if u.ConfirmedAt != nil {
		set("confirmed_at", *u.ConfirmedAt)
	}
	if u.ConfirmedBy != nil {
		set("confirmed_by", *u.ConfirmedBy)
	}

	updatedAt := u.UpdatedAt
	if updatedAt == 0 {
		updatedAt = timeNow()
	}
	set("etag", newTag)
	set("updated_by", u.UpdatedBy)
	set("updated_at", updatedAt)

	args = append(args, ref.ID, ref.ETag)
	return fmt.Sprintf(`UPDATE %s SET %s WHERE id=$%d AND etag=$%d;`,
		tableJobs, strings.Join(sets, ", "), len(args)-1, len(args),
	), args
}

// toSqlQuery converts query data into a SQL query string & args
func toSqlQuery(in map[string][]string, upB, upA int64) (string, []interface{}) {
	if in == nil {
		in = map[string][]string{}
	}

	// sorted so the generated SQL is stable
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	and := []string{}
	args := []interface{}{}
	for _, k := range keys {
		v := in[k]
		if len(v) == 0 {
			continue
		}
		s, a := toSqlIn(len(args)+1, k, v)
		and = append(and, s)
		args = append(args, a...)
	}
	if upB > 0 { // updated before
		args = append(args, upB)
		and = append(and, fmt.Sprintf("updated_at < $%d", len(args)))
	}
	if upA > 0 { // updated after
		args = append(args, upA)
		and = append(and, fmt.Sprintf("updated_at > $%d", len(args)))
	}
	if len(and) == 0 {
		return "", args
	}
	return fmt.Sprintf("WHERE %s", strings.Join(and, " AND ")), args
}

// toSqlIn converts a list of strings into a SQL IN clause
func toSqlIn(offset int, field string, args []string) (string, []interface{}) {
	if len(args) == 0 {
		return "", []interface{}{}
	}
	vals := []string{}
	ifargs := []interface{}{}
	for i, a := range args {
		vals = append(vals, fmt.Sprintf("$%d", i+offset))
		ifargs = append(ifargs, a)
	}
	return fmt.Sprintf("%s IN (%s)", field, strings.Join(vals, ", ")), ifargs
}

// placeholders returns "($offset, $offset+1 ... )" for n values
func placeholders(offset, n int) string {
	vals := []string{}
	for i := offset; i < n+offset; i++ {
		vals = append(vals, fmt.Sprintf("$%d", i))
	}
	return fmt.Sprintf("(%s)", strings.Join(vals, ", "))
}

// toJobSqlArgs converts a job into a SQL query string & args (for an insert)
func toJobSqlArgs(offset int, j *structs.Job) (string, []interface{}) {
	if j.CreatedAt == 0 {
		j.CreatedAt = timeNow()
		j.UpdatedAt = j.CreatedAt
	}
	args := []interface{}{
		j.ID,
		j.Title,
		j.Description,
		j.AssignedTo,
		j.StartLocation,
		j.MaterialsNeeded,
		j.EstimatedCompletion,
		j.ClosingNotes,
		j.Status,
		j.ETag,
		j.CreatedBy,
		j.CreatedAt,
		j.UpdatedBy,
		j.UpdatedAt,
		j.ConfirmedAt,
		j.ConfirmedBy,
	}
	return placeholders(offset, len(args)), args
}

// toChangeSqlArgs converts a log entry into a SQL query string & args (for an insert)
func toChangeSqlArgs(offset int, e *structs.ChangeLogEntry) (string, []interface{}) {
	if e.ChangedAt == 0 {
		e.ChangedAt = timeNow()
	}
	args := []interface{}{
		e.ID,
		e.JobID,
		e.Type,
		e.OldValue,
		e.NewValue,
		e.ChangedBy,
		e.ChangedAt,
	}
	return placeholders(offset, len(args)), args
}

// toLocationSqlArgs converts a location sample into a SQL query string & args (for an insert)
func toLocationSqlArgs(offset int, l *structs.LocationSample) (string, []interface{}) {
	if l.RecordedAt == 0 {
		l.RecordedAt = timeNow()
	}
	args := []interface{}{
		l.ID,
		l.JobID,
		l.Latitude,
		l.Longitude,
		l.Accuracy,
		l.RecordedAt,
		l.ReportedBy,
	}
	return placeholders(offset, len(args)), args
}

// toUserSqlArgs converts a user into a SQL query string & args (for an insert)
func toUserSqlArgs(offset int, u *structs.User) (string, []interface{}) {
	if u.CreatedAt == 0 {
		u.CreatedAt = timeNow()
		u.UpdatedAt = u.CreatedAt
	}
	args := []interface{}{
		u.ID,
		u.Email,
		u.DisplayName,
		u.Role,
		u.Status,
		u.ETag,
		u.CreatedAt,
		u.UpdatedAt,
	}
	return placeholders(offset, len(args)), args
}

// statusToStrings converts a list of statuses into a list of strings
func statusToStrings(in []structs.Status) []string {
	if len(in) == 0 {
		return nil
	}
	out := []string{}
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}

// timeNow returns the current time in unix seconds
var timeNow = func() int64 {
	return time.Now().Unix()
}
