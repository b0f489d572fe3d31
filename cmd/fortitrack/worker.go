package main

import (
	"os"
	"os/signal"

	"github.com/voidshard/fortitrack/pkg/api"
)

const (
	docWorker = `Run the background worker (retries failed change log writes)`
)

type optsWorker struct {
	optsGeneral
	optsDatabase
	optsQueue
	optsService
}

func (c *optsWorker) Execute(args []string) error {
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

	err = svc.Register()
	if err != nil {
		return err
	}

	go func() {
		exit := make(chan os.Signal, 1)
		signal.Notify(exit, os.Interrupt)
		<-exit
		log.Info("shutting down")
		svc.Close()
	}()

	log.Info("worker running")
	return svc.Run()
}
