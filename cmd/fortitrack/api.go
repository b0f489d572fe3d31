package main

import (
	"github.com/voidshard/fortitrack/pkg/api"
	"github.com/voidshard/fortitrack/pkg/api/http/server"
)

const (
	docApi = `Run the API server`
)

type optsAPI struct {
	optsGeneral
	optsDatabase
	optsQueue
	optsService

	Addr      string `long:"addr" env:"ADDR" description:"Address to bind to" default:"localhost:8100"`
	StaticDir string `long:"static-dir" env:"STATIC_DIR" default:"" description:"Serve static files from this directory"`
}

func (c *optsAPI) Execute(args []string) error {
	// Serves the job service over HTTP. Failed change log writes are queued here
	// & retried by `worker`.
	log := c.logger()

	db, err := c.database()
	if err != nil {
		return err
	}
	opts := c.options()
	qu, err := c.queue(opts.AuditRetries)
	if err != nil {
		return err
	}
	nt, err := c.notifier(c.NoNotify, log)
	if err != nil {
		return err
	}

	svc, err := api.NewAPI(db, qu, nt, log, opts)
	if err != nil {
		return err
	}
	defer svc.Close()

	s := server.NewServer(c.Addr, c.StaticDir, c.Debug, log)
	return s.ServeForever(svc)
}
