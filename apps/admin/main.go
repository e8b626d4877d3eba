package main

import (
	"log"
	"os"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core"
	logsvc "github.com/demoaplikasi02-prog/tkitharvysyah/services/logger"
	sheetsvc "github.com/demoaplikasi02-prog/tkitharvysyah/services/sheets"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(std, conf)

	// start CLI
	cli := commandLine{
		src: sheetsvc.NewClient(conf, logger),
		out: os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
