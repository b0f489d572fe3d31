package main

import (
	"github.com/voidshard/fortitrack/pkg/database"
)

const (
	docMigrate = `Apply (or with --down, roll back) the database schema`
)

type optsMigrate struct {
	optsGeneral
	optsDatabase

	Down bool `long:"down" description:"Roll back all migrations"`
}

func (c *optsMigrate) Execute(args []string) error {
	log := c.logger()

	err := database.Migrate(&database.Options{URL: c.DatabaseURL}, c.Down)
	if err != nil {
		return err
	}
	log.WithField("down", c.Down).Info("migrations applied")
	return nil
}
