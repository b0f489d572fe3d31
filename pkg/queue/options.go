package queue

import (
	"crypto/tls"
)

const defaultMaxRetry = 5

// Options are options for the queue.
type Options struct {
	// URL encodes how we'll connect to the queue (host:port for redis).
	URL string

	// Password for the queue (optional).
	Password string

	// TLSConfig needed to connect to the queue (optional).
	TLSConfig *tls.Config

	// MaxRetry is the number of times a failing task is retried before it's given up on.
	// Defaults to 5.
	MaxRetry int
}

func (o *Options) SetDefaults() {
	if o.MaxRetry <= 0 {
		o.MaxRetry = defaultMaxRetry
	}
}
