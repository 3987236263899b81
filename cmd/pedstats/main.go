package main

import (
	"github.com/apex/log"
	"github.com/larpix/pedstats/internal/cli/app"
	_ "github.com/larpix/pedstats/internal/cli/run"
)

func main() {
	if err := app.Run(); err != nil {
		log.WithError(err).Fatal("pedstats failed")
	}
}
