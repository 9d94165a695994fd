// Package command builds the nyutils command tree.
package command

import (
	"context"
	"os"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/nyutils/internal/config"
)

// InitApp returns the root command. cfg supplies flag defaults through YAML
// value sources; a zero cfg simply means "no config file".
func InitApp(ctx context.Context, cfg config.Type) *cli.Command {
	log.WithField("config", cfg.Source).Debug("command: init")

	app := &cli.Command{
		Name:   "nyutils",
		Usage:  "matrix, edit-distance and small data utilities",
		Writer: os.Stdout,
	}

	app.Commands = append(app.Commands,
		DistanceCommandBuilder(cfg),
		TransposeCommandBuilder(cfg),
		SliceCommandBuilder(cfg),
		IDCommandBuilder(cfg),
		MD5CommandBuilder(),
		RangeCommandBuilder(),
		RoundCommandBuilder(),
		WindowCommandBuilder(cfg),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app
}
