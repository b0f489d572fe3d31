package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/voidshard/fortitrack/internal/tracker"
	"github.com/voidshard/fortitrack/internal/utils"
)

const (
	docTracker = `Report a technician's location against their jobs while they're under way`
)

type optsTracker struct {
	optsGeneral
	optsDatabase
	optsNats

	User string `long:"user" env:"FORTITRACK_USER" required:"true" description:"ID of the technician whose device we report for"`
}

func (c *optsTracker) Execute(args []string) error {
	log := c.logger()

	db, err := c.database()
	if err != nil {
		return err
	}
	defer db.Close()

	tlsCfg, err := utils.TLSConfig(c.NatsTLSCaCert, c.NatsTLSCert, c.NatsTLSKey)
	if err != nil {
		return err
	}
	loc, err := tracker.NewNatsLocator(&tracker.NatsOptions{URL: c.NatsURL, TLSConfig: tlsCfg})
	if err != nil {
		return err
	}
	defer loc.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return tracker.NewReporter(c.User, db, loc, log).Run(ctx)
}
