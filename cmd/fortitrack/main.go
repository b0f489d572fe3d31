package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

func main() {
	// values in .env (if any) are picked up by the env tags below; real env vars win
	_ = godotenv.Load()

	var parser = flags.NewParser(nil, flags.Default)

	parser.AddCommand("api", docApi, docApi, &optsAPI{})
	parser.AddCommand("worker", docWorker, docWorker, &optsWorker{})
	parser.AddCommand("tracker", docTracker, docTracker, &optsTracker{})
	parser.AddCommand("migrate", docMigrate, docMigrate, &optsMigrate{})
	parser.AddCommand("import", docImport, docImport, &optsImport{})
	parser.AddCommand("adduser", docAddUser, docAddUser, &optsAddUser{})

	if _, err := parser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case flags.ErrorType:
			if flagsErr == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			os.Exit(1)
		}
	}
}
