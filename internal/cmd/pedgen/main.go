// Command pedgen writes synthetic pedestal datasets.
package main

//
// Main
//

import (
	"github.com/apex/log"
	"github.com/larpix/pedstats/internal/log/handlers/cli"
	"github.com/larpix/pedstats/internal/runtimex"
)

func main() {
	log.Log = &log.Logger{Level: log.InfoLevel, Handler: cli.Default}
	err := newRootCommand(log.Log).Execute()
	runtimex.PanicOnError(err, "root.Execute")
}
