package queue

import (
	"context"
	"fmt"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	cases := []struct {
		Name      string
		Payload   []byte
		HandleErr error
	}{
		{"Success", []byte(`[{"id": "1"}]`), nil},
		{"HandlerError", []byte(`[]`), fmt.Errorf("db down")},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			q := &Asynq{opts: &Options{}}

			var got []*Meta
			h := q.handler(func(work []*Meta) error {
				got = work
				return c.HandleErr
			})

			err := h.ProcessTask(context.Background(), asynq.NewTask("audit:retry", c.Payload))

			assert.Equal(t, c.HandleErr, err)
			assert.Equal(t, 1, len(got))
			assert.Equal(t, c.Payload, got[0].Payload)
			assert.Equal(t, 0, got[0].Retried)
		})
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	opts := &Options{}
	opts.SetDefaults()
	assert.Equal(t, defaultMaxRetry, opts.MaxRetry)

	opts = &Options{MaxRetry: 2}
	opts.SetDefaults()
	assert.Equal(t, 2, opts.MaxRetry)
}

func TestRedisOpts(t *testing.T) {
	got := redisOpts(&Options{URL: "localhost:6379", Password: "pw"})
	assert.Equal(t, "localhost:6379", got.Addr)
	assert.Equal(t, "pw", got.Password)
	assert.Nil(t, got.TLSConfig)
}

func TestEnqueueOpts(t *testing.T) {
	cases := []struct {
		Name     string
		Given    *Options
		MaxRetry int
	}{
		{"Default", &Options{}, defaultMaxRetry},
		{"Configured", &Options{MaxRetry: 12}, 12},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			c.Given.SetDefaults()
			q := &Asynq{opts: c.Given}

			found := map[asynq.OptionType]interface{}{}
			for _, o := range q.enqueueOpts("entry-1") {
				found[o.Type()] = o.Value()
			}

			assert.Equal(t, c.MaxRetry, found[asynq.MaxRetryOpt])
			assert.Equal(t, "entry-1", found[asynq.TaskIDOpt])
			assert.Equal(t, asyncWorkQueue, found[asynq.QueueOpt])
		})
	}
}
