// Command nyutils exposes the nyutils library from the shell: edit distance,
// matrix file transforms, ids, hashes, ranges, rounding and sliding sums.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/katalvlaran/nyutils/internal/command"
	"github.com/katalvlaran/nyutils/internal/config"
	mylog "github.com/katalvlaran/nyutils/internal/log"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()
	ctx := context.Background()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	app := command.InitApp(ctx, cfg)
	if err := app.Run(ctx, os.Args); err != nil {
		log.WithError(err).Debug("command failed")
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
