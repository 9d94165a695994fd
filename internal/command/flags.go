package command

import (
	"fmt"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	altyaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/nyutils/internal/config"
	"github.com/katalvlaran/nyutils/persist"
)

// configSource returns a YAML value source for key when a config file is
// known, so flag defaults can live in ~/.nyutils.yaml.
func configSource(cfg config.Type, key string) cli.ValueSource {
	return altyaml.YAML(key, altsrc.StringSourcer(cfg.Source))
}

// configInt resolves an int default from the config file, falling back to def
// when the key is missing or not an int.
func configInt(cfg config.Type, key string, def int) int {
	v, err := cfg.GetInt(key, def)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("config: using default")
		return def
	}

	return v
}

// configString is configInt for strings.
func configString(cfg config.Type, key, def string) string {
	v, err := cfg.GetString(key, def)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("config: using default")
		return def
	}

	return v
}

func codecFlag(cfg config.Type) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "codec",
		Aliases: []string{"c"},
		Usage:   "file codec: cbor or yaml",
		Value:   configString(cfg, "codec", "cbor"),
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("NYUTILS_CODEC"),
		),
		Validator: func(value string) error {
			_, err := persist.CodecByName(value)
			return err
		},
	}
}

func inFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "in",
		Aliases:  []string{"i"},
		Usage:    "input matrix file",
		Required: true,
	}
}

func outFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "out",
		Aliases:  []string{"o"},
		Usage:    "output matrix file",
		Required: true,
	}
}

// exactArgs fails unless cmd received exactly n positional arguments.
func exactArgs(cmd *cli.Command, n int) error {
	if got := cmd.Args().Len(); got != n {
		return fmt.Errorf("%s: expected %d argument(s), got %d", cmd.Name, n, got)
	}

	return nil
}
