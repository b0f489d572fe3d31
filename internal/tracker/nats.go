package tracker

import (
	"crypto/tls"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/voidshard/fortitrack/pkg/structs"
)

const subjectPrefix = "fortitrack.locations."

type NatsOptions struct {
	URL       string
	TLSConfig *tls.Config
}

func (o *NatsOptions) SetDefaults() {
	if o.URL == "" {
		o.URL = nats.DefaultURL
	}
}

// NatsLocator receives device fixes published (as JSON structs.Fix) to
// fortitrack.locations.<user id>.
type NatsLocator struct {
	nc *nats.Conn
}

func NewNatsLocator(opts *NatsOptions) (*NatsLocator, error) {
	opts.SetDefaults()

	natsOpts := []nats.Option{nats.Name("fortitrack-tracker")}
	if opts.TLSConfig != nil {
		natsOpts = append(natsOpts, nats.Secure(opts.TLSConfig))
	}

	nc, err := nats.Connect(opts.URL, natsOpts...)
	if err != nil {
		return nil, err
	}
	return &NatsLocator{nc: nc}, nil
}

// Subject returns where a user's device publishes fixes.
func Subject(userID string) string {
	return subjectPrefix + userID
}

func (n *NatsLocator) Watch(userID string, fn func(*structs.Fix)) (func() error, error) {
	sub, err := n.nc.Subscribe(Subject(userID), func(msg *nats.Msg) {
		fn(decodeFix(msg.Data))
	})
	if err != nil {
		return nil, err
	}
	return sub.Unsubscribe, nil
}

func (n *NatsLocator) Close() error {
	return n.nc.Drain()
}

// decodeFix reads a fix; unreadable messages become a fix carrying the error
// so they are reported like any other failed reading.
func decodeFix(data []byte) *structs.Fix {
	fix := &structs.Fix{}
	err := json.Unmarshal(data, fix)
	if err != nil {
		return &structs.Fix{Err: fmt.Sprintf("unreadable fix: %v", err)}
	}
	return fix
}
