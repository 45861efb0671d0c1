package main

import (
	"log"
	"os"

	"github.com/elimuhq/elimu/core"
	logsvc "github.com/elimuhq/elimu/services/logger"
	"github.com/elimuhq/elimu/storage/jsondb"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up the data source
	db, err := jsondb.Open(core.Conf.DataDir, logsvc.NewConsoleLogger(logger))
	errAndDie(err)
	defer db.Close()

	// start CLI
	cli := commandLine{
		usrRepo: jsondb.NewUserRepository(db),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
