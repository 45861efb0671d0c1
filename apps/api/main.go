package main

import (
	"log"
	"os"

	echoapi "github.com/elimuhq/elimu/apps/api/echo"
	"github.com/elimuhq/elimu/core"
	"github.com/elimuhq/elimu/core/access"
	"github.com/elimuhq/elimu/core/user"
	emailsvc "github.com/elimuhq/elimu/services/email"
	logsvc "github.com/elimuhq/elimu/services/logger"
	"github.com/elimuhq/elimu/storage/jsondb"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if core.Conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	// set up the data source; files reload live
	db, err := jsondb.Open(core.Conf.DataDir, logger)
	errAndDie(err)
	errAndDie(db.Watch())
	defer db.Close()

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}
	usrSvc := user.NewService(jsondb.NewUserRepository(db), mailSvc)
	accessSvc := access.NewService(jsondb.NewAcademicsRepository(db))

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:      core.Conf.Server.Addr,
			Logger:    logger,
			UserSvc:   usrSvc,
			AccessSvc: accessSvc,
		},
	)
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
