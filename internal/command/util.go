package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/nyutils/digest"
	"github.com/katalvlaran/nyutils/internal/config"
	"github.com/katalvlaran/nyutils/numeric"
	"github.com/katalvlaran/nyutils/randid"
	"github.com/katalvlaran/nyutils/ring"
)

// IDCommandBuilder builds `nyutils id`.
func IDCommandBuilder(cfg config.Type) *cli.Command {
	return &cli.Command{
		Name:  "id",
		Usage: "print a random alphanumeric id",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"n"},
				Usage:   "id length",
				Value:   configInt(cfg, "id.length", 8),
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("NYUTILS_ID_LENGTH"),
				),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := randid.Make(cmd.Int("length"))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, id)

			return err
		},
	}
}

// MD5CommandBuilder builds `nyutils md5 [--file] VALUE`.
func MD5CommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "md5",
		Usage:     "hex MD5 of a string or a file",
		ArgsUsage: "VALUE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "treat VALUE as a file path",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := exactArgs(cmd, 1); err != nil {
				return err
			}
			v := cmd.Args().First()

			var (
				sum string
				err error
			)
			if cmd.Bool("file") {
				if sum, err = digest.MD5File(v); err != nil {
					return err
				}
			} else {
				sum = digest.MD5String(v)
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, sum)

			return err
		},
	}
}

// RangeCommandBuilder builds `nyutils range --end N [--start S] [--step K]`.
func RangeCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:  "range",
		Usage: "print integers in [start, end) by step",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "start", Usage: "first value"},
			&cli.IntFlag{Name: "end", Usage: "bound (exclusive)", Required: true},
			&cli.IntFlag{Name: "step", Usage: "increment, may be negative", Value: 1},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			vals, err := numeric.Range(cmd.Int("start"), cmd.Int("end"), cmd.Int("step"))
			if err != nil {
				return err
			}
			parts := make([]string, len(vals))
			for i, v := range vals {
				parts[i] = strconv.Itoa(v)
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, strings.Join(parts, " "))

			return err
		},
	}
}

// RoundCommandBuilder builds `nyutils round --multiple M [--mode m] VALUE`.
func RoundCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "round",
		Usage:     "round VALUE to a multiple",
		ArgsUsage: "VALUE",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "multiple", Aliases: []string{"m"}, Usage: "multiple to round to", Required: true},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "nearest, up or down",
				Value: "nearest",
				Validator: func(v string) error {
					switch v {
					case "nearest", "up", "down":
						return nil
					}
					return fmt.Errorf("invalid mode %q", v)
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := exactArgs(cmd, 1); err != nil {
				return err
			}
			v, err := strconv.ParseFloat(cmd.Args().First(), 64)
			if err != nil {
				return fmt.Errorf("round: %w", err)
			}

			m := cmd.Float("multiple")
			var out float64
			switch cmd.String("mode") {
			case "up":
				out = numeric.RoundUpTo(v, m)
			case "down":
				out = numeric.RoundDownTo(v, m)
			default:
				out = numeric.RoundTo(v, m)
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, strconv.FormatFloat(out, 'g', -1, 64))

			return err
		},
	}
}

// WindowCommandBuilder builds `nyutils window --size N V...`, printing the
// running sum over the last N values after each one.
func WindowCommandBuilder(cfg config.Type) *cli.Command {
	return &cli.Command{
		Name:      "window",
		Usage:     "running sum over a sliding window",
		ArgsUsage: "V...",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Aliases: []string{"s"}, Usage: "window size", Value: configInt(cfg, "window.size", 3)},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			buf, err := ring.New[float64](cmd.Int("size"))
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			for _, arg := range cmd.Args().Slice() {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("window: %w", err)
				}
				buf.Push(v)
				if _, err = fmt.Fprintf(w, "%g\t%g\t%g\n", v, buf.Sum(), buf.Mean()); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
