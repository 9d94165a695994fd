package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/nyutils/internal/config"
	"github.com/katalvlaran/nyutils/matrix"
	"github.com/katalvlaran/nyutils/persist"
)

// matrixDoc is the on-disk form of a float64 matrix.
type matrixDoc struct {
	Columns int       `cbor:"columns" yaml:"columns"`
	Rows    int       `cbor:"rows" yaml:"rows"`
	Data    []float64 `cbor:"data" yaml:"data"`
}

func loadMatrix(path string, codec persist.Codec) (*matrix.Matrix[float64], error) {
	var doc matrixDoc
	if err := persist.Read(path, &doc, persist.WithCodec(codec)); err != nil {
		return nil, err
	}
	m, err := matrix.New[float64](doc.Columns, doc.Rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = m.SetData(doc.Data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func saveMatrix(cmd *cli.Command, path string, m *matrix.Matrix[float64], codec persist.Codec) error {
	c, r := m.Shape()
	doc := matrixDoc{Columns: c, Rows: r, Data: m.Data()}
	if err := persist.Write(path, doc, persist.WithCodec(codec)); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	size := humanize.Bytes(uint64(info.Size()))
	log.WithFields(log.Fields{"path": path, "size": size}).Info("matrix saved")

	_, err = fmt.Fprintf(cmd.Root().Writer, "wrote %s (%dx%d, %s)\n", path, c, r, size)

	return err
}

// matrixIO resolves the codec and loads --in.
func matrixIO(cmd *cli.Command) (*matrix.Matrix[float64], persist.Codec, error) {
	codec, err := persist.CodecByName(cmd.String("codec"))
	if err != nil {
		return nil, nil, err
	}
	m, err := loadMatrix(cmd.String("in"), codec)
	if err != nil {
		return nil, nil, err
	}

	return m, codec, nil
}

func transposeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m, codec, err := matrixIO(cmd)
	if err != nil {
		return err
	}
	t, err := m.Transpose()
	if err != nil {
		return err
	}

	return saveMatrix(cmd, cmd.String("out"), t, codec)
}

func sliceCommandAction(ctx context.Context, cmd *cli.Command) error {
	m, codec, err := matrixIO(cmd)
	if err != nil {
		return err
	}
	s, err := m.Slice(cmd.Int("from"), cmd.Int("to"))
	if err != nil {
		return err
	}

	return saveMatrix(cmd, cmd.String("out"), s, codec)
}

// TransposeCommandBuilder builds `nyutils transpose --in F --out G`.
func TransposeCommandBuilder(cfg config.Type) *cli.Command {
	return &cli.Command{
		Name:   "transpose",
		Usage:  "transpose a matrix file",
		Flags:  []cli.Flag{inFlag(), outFlag(), codecFlag(cfg)},
		Action: transposeCommandAction,
	}
}

// SliceCommandBuilder builds `nyutils slice --in F --out G --from N --to M`.
func SliceCommandBuilder(cfg config.Type) *cli.Command {
	return &cli.Command{
		Name:  "slice",
		Usage: "copy rows [from, to) of a matrix file",
		Flags: []cli.Flag{
			inFlag(), outFlag(), codecFlag(cfg),
			&cli.IntFlag{Name: "from", Usage: "first row (inclusive)"},
			&cli.IntFlag{Name: "to", Usage: "last row (exclusive)", Required: true},
		},
		Action: sliceCommandAction,
	}
}
