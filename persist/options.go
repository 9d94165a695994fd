package persist

import "os"

// Option customizes a Write or Read call.
type Option func(*config)

type config struct {
	codec Codec
	perm  os.FileMode
}

func defaultConfig() config {
	return config{codec: CBOR, perm: 0o644}
}

func resolve(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithCodec selects the codec. A nil codec keeps the default.
func WithCodec(c Codec) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.codec = c
		}
	}
}

// WithPerm sets the permission bits of files created by Write.
func WithPerm(perm os.FileMode) Option {
	return func(cfg *config) { cfg.perm = perm }
}
