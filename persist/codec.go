package persist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCodec is returned by CodecByName for an unrecognized name.
var ErrUnknownCodec = errors.New("persist: unknown codec")

// Codec encodes values to bytes and back.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	// CBOR is the default codec (RFC 8949).
	CBOR Codec = cborCodec{}
	// YAML encodes with gopkg.in/yaml.v3.
	YAML Codec = yamlCodec{}
)

// CodecByName resolves "cbor" or "yaml"/"yml" (case-insensitive).
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cbor":
		return CBOR, nil
	case "yaml", "yml":
		return YAML, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

type cborCodec struct{}

func (cborCodec) Name() string                       { return "cbor" }
func (cborCodec) Marshal(v any) ([]byte, error)      { return cbor.Marshal(v) }
func (cborCodec) Unmarshal(data []byte, v any) error { return cbor.Unmarshal(data, v) }

type yamlCodec struct{}

func (yamlCodec) Name() string                       { return "yaml" }
func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }
