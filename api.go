package rlp

import "github.com/unkn0wn-root/rlp/internal/util"

// DefaultMaxDepth bounds list nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 1024

// Options tune a Decoder. The zero value is ready to use.
type Options struct {
	MaxDepth int    // maximum list nesting; 0 => DefaultMaxDepth
	Logger   Logger // rejected inputs are logged at debug; nil => NopLogger
}

// Decoder parses RLP input with a fixed configuration.
// It holds no per-call state and is safe for concurrent use.
type Decoder struct {
	maxDepth int
	log      Logger
}

func NewDecoder(opts Options) *Decoder {
	return &Decoder{
		maxDepth: util.Coalesce(opts.MaxDepth, DefaultMaxDepth),
		log:      util.Coalesce[Logger](opts.Logger, NopLogger{}),
	}
}

var std = NewDecoder(Options{})

// DecodeValue decodes exactly one value from b using default options.
func DecodeValue(b []byte) (Value, error) { return std.DecodeValue(b) }

// DecodeStream decodes the leading value of b and returns the remainder,
// using default options.
func DecodeStream(b []byte) (Value, []byte, error) { return std.DecodeStream(b) }

// DecodeAll decodes a concatenation of values using default options.
func DecodeAll(b []byte) ([]Value, error) { return std.DecodeAll(b) }
