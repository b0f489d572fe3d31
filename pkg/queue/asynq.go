package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/hibiken/asynq"
)

const (
	asyncWorkQueue = "fortitrack:work"
)

type Asynq struct {
	opts *Options

	cli *asynq.Client

	// if register is called we're intended to start a server
	lock sync.Mutex
	mux  *asynq.ServeMux
	srv  *asynq.Server

	done      chan struct{}
	closeOnce sync.Once
}

func NewAsynqQueue(opts *Options) (*Asynq, error) {
	opts.SetDefaults()
	return &Asynq{
		opts: opts,
		cli:  asynq.NewClient(redisOpts(opts)),
		done: make(chan struct{}),
	}, nil
}

// Close stops the server (if any) & the client. Anything blocked in Run returns.
func (a *Asynq) Close() error {
	var err error
	a.closeOnce.Do(func() {
		a.lock.Lock()
		defer a.lock.Unlock()
		if a.srv != nil {
			a.srv.Stop()
			a.srv.Shutdown()
		}
		err = a.cli.Close()
		close(a.done)
	})
	return err
}

func (a *Asynq) Register(task string, handler func(work []*Meta) error) error {
	a.buildServer()
	a.mux.HandleFunc(task, a.handler(handler))
	return nil
}

// Run starts processing registered tasks, blocking until Close is called.
func (a *Asynq) Run() error {
	a.buildServer()
	err := a.srv.Start(a.mux)
	if err != nil {
		return err
	}
	<-a.done
	return nil
}

func (a *Asynq) Enqueue(task, id string, payload []byte) (string, error) {
	info, err := a.cli.Enqueue(asynq.NewTask(task, payload), a.enqueueOpts(id)...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		// already queued under this key
		return id, nil
	} else if err != nil {
		return "", err
	}
	return info.ID, nil
}

// MaxRetry is the retry budget given to each task this queue enqueues.
func (a *Asynq) MaxRetry() int {
	return a.opts.MaxRetry
}

// enqueueOpts are fixed on the task when it's queued; the server doesn't override them
func (a *Asynq) enqueueOpts(id string) []asynq.Option {
	return []asynq.Option{
		asynq.Queue(asyncWorkQueue),
		asynq.TaskID(id),
		asynq.MaxRetry(a.opts.MaxRetry),
	}
}

// handler adapts one of our handlers to asynq
func (a *Asynq) handler(handler func(work []*Meta) error) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		m := &Meta{Payload: t.Payload()}
		m.ID, _ = asynq.GetTaskID(ctx)
		m.Retried, _ = asynq.GetRetryCount(ctx)
		return handler([]*Meta{m})
	}
}

func (a *Asynq) buildServer() {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.mux != nil {
		// someone locked and set this first
		return
	}
	a.srv = asynq.NewServer(
		redisOpts(a.opts),
		asynq.Config{
			Queues: map[string]int{asyncWorkQueue: 1},
		},
	)
	a.mux = asynq.NewServeMux()
}

func redisOpts(opts *Options) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:      opts.URL,
		Password:  opts.Password,
		TLSConfig: opts.TLSConfig,
	}
}
