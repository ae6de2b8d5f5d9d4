package abi

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/arloliu/ethpack/internal/options"
	"github.com/arloliu/ethpack/internal/pool"
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithStrictWidths makes Write and WriteSlice validate values as Validate
// does, instead of silently truncating narrow integers.
func WithStrictWidths(strict bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.strict = strict
	})
}

// WithCapacity pre-grows the output buffer to hold at least n bytes.
func WithCapacity(n int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if n < 0 {
			return fmt.Errorf("capacity must be non-negative, got %d", n)
		}
		e.buf.Grow(n)

		return nil
	})
}

// Encoder builds a packed encoding incrementally.
//
// It appends values to a pooled buffer as they are written. The result is
// the same as passing all written values to EncodePacked in one call.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	buf    *pool.ByteBuffer
	strict bool
	count  int
}

// NewEncoder creates a packed encoder.
//
// Parameters:
//   - opts: Optional configuration (WithStrictWidths, WithCapacity)
//
// Returns:
//   - *Encoder: A new encoder ready for writing
//   - error: An error if an option is invalid
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{buf: pool.GetPackBuffer()}
	if err := options.Apply(e, opts...); err != nil {
		pool.PutPackBuffer(e.buf)
		return nil, err
	}

	return e, nil
}

// Strict reports whether the encoder validates narrow integer widths.
func (e *Encoder) Strict() bool {
	return e.strict
}

// Write appends the packed encoding of v.
//
// In strict mode an invalid value returns an error and nothing is written.
// A nil v always returns an error wrapping ErrNilValue.
//
// Panics if Finish() has been called.
func (e *Encoder) Write(v Value) error {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if err := e.check(e.count, v); err != nil {
		return err
	}

	e.buf.Grow(v.Size())
	e.buf.Append(v.appendPacked)
	e.count++

	return nil
}

// WriteSlice appends the packed encodings of vs in order.
//
// All values are checked before any is written, so on error the encoder
// is unchanged.
//
// Panics if Finish() has been called.
func (e *Encoder) WriteSlice(vs []Value) error {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	for i, v := range vs {
		if err := e.check(e.count+i, v); err != nil {
			return err
		}
	}

	e.buf.Grow(PackedSize(vs...))
	e.buf.Append(func(dst []byte) []byte {
		return AppendPacked(dst, vs...)
	})
	e.count += len(vs)

	return nil
}

func (e *Encoder) check(index int, v Value) error {
	if v == nil {
		return fmt.Errorf("item %d: %w", index, ErrNilValue)
	}
	if !e.strict {
		return nil
	}
	if err := validateValue(v); err != nil {
		return fmt.Errorf("item %d (%s): %w", index, TypeName(v), err)
	}

	return nil
}

// Bytes returns the packed bytes written so far.
//
// The returned slice shares the encoder's buffer and is only valid until
// the next Write, Reset or Finish. Returns nil after Finish.
func (e *Encoder) Bytes() []byte {
	if e.buf == nil {
		return nil
	}

	return e.buf.Bytes()
}

// Hex returns the lowercase hex of the packed bytes, without 0x prefix.
func (e *Encoder) Hex() string {
	return hex.EncodeToString(e.Bytes())
}

// WriteTo writes the packed bytes to w, implementing io.WriterTo.
// It writes nothing after Finish.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	if e.buf == nil {
		return 0, nil
	}

	return e.buf.WriteTo(w)
}

// Len returns the number of values written since the last Reset.
func (e *Encoder) Len() int {
	return e.count
}

// Size returns the number of packed bytes written since the last Reset.
func (e *Encoder) Size() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len()
}

// Reset discards written data and keeps the buffer for reuse.
//
// Panics if Finish() has been called.
func (e *Encoder) Reset() {
	if e.buf == nil {
		panic("encoder already finished - cannot reset after Finish()")
	}

	e.buf.Reset()
	e.count = 0
}

// Finish returns an owned copy of the packed bytes and releases the
// encoder's buffer back to the pool. The encoder must not be written to
// afterwards. Calling Finish twice returns nil.
func (e *Encoder) Finish() []byte {
	if e.buf == nil {
		return nil
	}

	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())

	pool.PutPackBuffer(e.buf)
	e.buf = nil
	e.count = 0

	return out
}
