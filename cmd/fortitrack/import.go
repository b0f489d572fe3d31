package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/internal/utils"
	"github.com/voidshard/fortitrack/pkg/api/http/client"
	"github.com/voidshard/fortitrack/pkg/structs"
)

const (
	docImport = `Bulk import jobs from a json or csv file (local path or s3://bucket/key)`
)

type optsImport struct {
	optsGeneral
	optsObject

	Server string `long:"server" env:"FORTITRACK_SERVER" default:"http://localhost:8100" description:"API server address"`
	User   string `long:"user" env:"FORTITRACK_USER" required:"true" description:"ID of the dispatcher importing"`
	Format string `long:"format" choice:"json" choice:"csv" description:"Document format, defaults to the file extension"`

	Args struct {
		Source string `positional-arg-name:"source" required:"true"`
	} `positional-args:"true"`
}

func (c *optsImport) Execute(args []string) error {
	log := c.logger()

	format := structs.ToImportFormat(c.Format)
	if format == "" {
		format = structs.ToImportFormat(utils.SourceExt(c.Args.Source))
	}
	if format == "" {
		return fmt.Errorf("cannot tell format of %s, set --format", c.Args.Source)
	}

	rc, err := utils.OpenSource(context.Background(), c.Args.Source, c.objectOptions())
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}

	cl, err := client.New(c.Server, c.User)
	if err != nil {
		return err
	}

	result, err := cl.ImportJobs(format, data)
	if result != nil {
		for _, e := range result.Errors {
			log.Warn(e)
		}
		log.WithFields(logrus.Fields{"success": result.Success, "failed": result.Failed}).Info("import finished")
	}
	return err
}
