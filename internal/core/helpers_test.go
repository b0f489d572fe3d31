package core

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	gomock "go.uber.org/mock/gomock"

	"github.com/voidshard/fortitrack/internal/mocks/pkg/database_mock"
	"github.com/voidshard/fortitrack/internal/mocks/pkg/notify_mock"
	"github.com/voidshard/fortitrack/internal/mocks/pkg/queue_mock"
	"github.com/voidshard/fortitrack/pkg/structs"
)

const testNow = int64(1000000)

func init() {
	timeNow = func() int64 { return testNow }
}

var (
	admin      = &structs.User{ID: "admin-1", Role: structs.RoleAdmin, Status: structs.UserActive, ETag: "ua"}
	dispatcher = &structs.User{ID: "disp-7", Role: structs.RoleDispatcher, Status: structs.UserActive, ETag: "ud"}
	tech       = &structs.User{ID: "tech-42", Role: structs.RoleTechnician, Status: structs.UserActive, ETag: "ut"}
	otherTech  = &structs.User{ID: "tech-9", Role: structs.RoleTechnician, Status: structs.UserActive, ETag: "uo"}
	inactive   = &structs.User{ID: "disp-0", Role: structs.RoleDispatcher, Status: structs.UserInactive, ETag: "ui"}
)

type testService struct {
	svc *Service
	db  *database_mock.MockDatabase
	qu  *queue_mock.MockQueue
	nt  *notify_mock.MockNotifier
	log *test.Hook
}

func newTestService(t *testing.T, policy structs.TransitionPolicy) *testService {
	ctrl := gomock.NewController(t)
	db := database_mock.NewMockDatabase(ctrl)
	qu := queue_mock.NewMockQueue(ctrl)
	nt := notify_mock.NewMockNotifier(ctrl)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	svc, _ := NewService(db, qu, nt, logger, &structs.Options{TransitionPolicy: policy})
	return &testService{svc: svc, db: db, qu: qu, nt: nt, log: hook}
}

// expectNotify expects exactly one notification of the given severity to the user
func (ts *testService) expectNotify(userID string, severity structs.Severity) {
	ts.nt.EXPECT().Notify(gomock.Any(), userID, severityIs(severity)).Return(nil)
}

// expectJob has the db return the given job when it's looked up by ID
func (ts *testService) expectJob(j *structs.Job) {
	ts.db.EXPECT().Jobs(gomock.Any(), &structs.Query{JobIDs: []string{j.ID}, Limit: 1}).Return([]*structs.Job{j}, nil)
}

// expectUser has the db return the given user when it's looked up by ID
func (ts *testService) expectUser(u *structs.User) {
	ts.db.EXPECT().Users(gomock.Any(), &structs.UserQuery{UserIDs: []string{u.ID}, Limit: 1}).Return([]*structs.User{u}, nil)
}

type severityMatcher struct {
	severity structs.Severity
}

func severityIs(s structs.Severity) gomock.Matcher {
	return &severityMatcher{severity: s}
}

func (m *severityMatcher) Matches(x interface{}) bool {
	n, ok := x.(*structs.Notification)
	return ok && n.Severity == m.severity
}

func (m *severityMatcher) String() string {
	return fmt.Sprintf("notification with severity %s", m.severity)
}

func strPtr(s string) *string {
	return &s
}

func testJob(status structs.Status) *structs.Job {
	return &structs.Job{
		JobSpec: structs.JobSpec{
			Title:       "Fix AC",
			Description: "Unit blowing warm",
			AssignedTo:  tech.ID,
		},
		ID:        "job-1",
		Status:    status,
		ETag:      "etag-1",
		CreatedBy: dispatcher.ID,
		CreatedAt: 10,
		UpdatedBy: dispatcher.ID,
		UpdatedAt: 10,
	}
}
