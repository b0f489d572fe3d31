package tracker

import (
	"fmt"
	"sync"

	"github.com/voidshard/fortitrack/pkg/database/changes"
	"github.com/voidshard/fortitrack/pkg/structs"
)

const testNow = int64(2000)

func init() {
	timeNow = func() int64 { return testNow }
}

// fakeLocator hands out watches that the test can push fixes into
type fakeLocator struct {
	lock    sync.Mutex
	err     error
	started int
	stopped int
	fns     map[int]func(*structs.Fix)
}

func newFakeLocator() *fakeLocator {
	return &fakeLocator{fns: map[int]func(*structs.Fix){}}
}

func (f *fakeLocator) Watch(userID string, fn func(*structs.Fix)) (func() error, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	id := f.started
	f.started++
	f.fns[id] = fn
	return func() error {
		f.lock.Lock()
		defer f.lock.Unlock()
		delete(f.fns, id)
		f.stopped++
		return nil
	}, nil
}

// send delivers a fix to every open watch
func (f *fakeLocator) send(fix *structs.Fix) {
	f.lock.Lock()
	fns := []func(*structs.Fix){}
	for _, fn := range f.fns {
		fns = append(fns, fn)
	}
	f.lock.Unlock()

	for _, fn := range fns {
		fn(fix)
	}
}

func (f *fakeLocator) open() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.fns)
}

// fakeStream replays the given changes then reports closed
type fakeStream struct {
	changes []*changes.Change
	err     error
	closed  bool
	onNext  func(i int)
	i       int
}

func (s *fakeStream) Next() (*changes.Change, error) {
	if s.onNext != nil {
		s.onNext(s.i)
	}
	if s.i >= len(s.changes) {
		return nil, s.err
	}
	ch := s.changes[s.i]
	s.i++
	return ch, nil
}

func (s *fakeStream) Close() error {
	s.closed = true
	return nil
}

func job(id, assignee string, status structs.Status) *structs.Job {
	return &structs.Job{
		JobSpec: structs.JobSpec{Title: fmt.Sprintf("job %s", id), AssignedTo: assignee},
		ID:      id,
		Status:  status,
	}
}
