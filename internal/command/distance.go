package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/nyutils/internal/config"
	"github.com/katalvlaran/nyutils/levenshtein"
)

func distanceCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := exactArgs(cmd, 2); err != nil {
		return err
	}
	a, b := cmd.Args().Get(0), cmd.Args().Get(1)
	if cmd.Bool("normalize") {
		a, b = norm.NFC.String(a), norm.NFC.String(b)
	}

	var (
		d   int32
		err error
	)
	if cmd.Bool("words") {
		d, err = levenshtein.Distance(strings.Fields(a), strings.Fields(b))
	} else {
		d, err = levenshtein.Strings(a, b)
	}
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"a": a, "b": b, "distance": d}).Debug("distance")

	_, err = fmt.Fprintln(cmd.Root().Writer, d)

	return err
}

// DistanceCommandBuilder builds `nyutils distance A B`.
func DistanceCommandBuilder(cfg config.Type) *cli.Command {
	return &cli.Command{
		Name:      "distance",
		Usage:     "edit distance between two strings",
		ArgsUsage: "A B",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "words",
				Aliases: []string{"w"},
				Usage:   "compare whitespace-separated words instead of characters",
			},
			&cli.BoolFlag{
				Name:    "normalize",
				Aliases: []string{"n"},
				Usage:   "apply Unicode NFC normalization first",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("NYUTILS_NORMALIZE"),
					configSource(cfg, "distance.normalize"),
				),
			},
		},
		Action: distanceCommandAction,
	}
}
