package decoder

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/avroscan/errs"
	"github.com/arloliu/avroscan/internal/options"
)

// Config holds the engine configuration assembled from options.
type Config struct {
	logger        *slog.Logger
	blockByteSize bool
	validateUTF8  bool
	strict        bool
	skip          int
}

// reset restores the default configuration.
func (c *Config) reset() {
	*c = Config{}
}

// Option represents a functional option for configuring an Engine.
// This is a type alias for the generic Option interface specialized for Config.
type Option = options.Option[*Config]

// WithLogger sets a logger that receives debug records for field transitions,
// union resolution and map blocks. A nil logger disables logging, which is the default.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = logger
	})
}

// WithBlockByteSize controls how negative map block counts are read.
//
// A negative count always has its sign stripped. When enabled, the long that follows
// a negative count is read as the block's byte size and validated against the
// remaining input, as the Avro specification prescribes. When disabled, the default,
// no byte size is read.
func WithBlockByteSize(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.blockByteSize = enabled
	})
}

// WithUTF8Validation makes DecodeString and string map entries reject invalid UTF-8
// with errs.ErrInvalidUTF8.
func WithUTF8Validation(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.validateUTF8 = enabled
	})
}

// WithStrict makes Finish fail with errs.ErrTrailingBytes when input remains after
// the last field.
func WithStrict(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.strict = enabled
	})
}

// WithSkip skips n bytes of outer framing before the first field.
func WithSkip(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: skip %d", errs.ErrNegativeLength, n)
		}
		c.skip = n

		return nil
	})
}
