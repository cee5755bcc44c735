package rlp

import (
	"errors"

	"github.com/unkn0wn-root/rlp/internal/wire"
)

// DecodeValue decodes exactly one value from b. Trailing bytes are an error.
// Empty input decodes to the empty byte string.
func (d *Decoder) DecodeValue(b []byte) (Value, error) {
	if len(b) == 0 {
		return Value{}, nil
	}
	v, end, err := d.decodeAt(b, 0)
	if err != nil {
		return Value{}, err
	}
	if end != len(b) {
		return Value{}, d.reject(&DecodeError{Offset: end, Err: ErrUnexpectedTrailingBytes})
	}
	return v, nil
}

// DecodeStream decodes the leading value of b and returns it together with
// the bytes that follow it. rest is a sub-slice of b.
func (d *Decoder) DecodeStream(b []byte) (v Value, rest []byte, err error) {
	if len(b) == 0 {
		return Value{}, b, nil
	}
	v, end, err := d.decodeAt(b, 0)
	if err != nil {
		return Value{}, b, err
	}
	return v, b[end:], nil
}

// DecodeAll decodes a concatenation of values.
func (d *Decoder) DecodeAll(b []byte) ([]Value, error) {
	var out []Value
	for pos := 0; pos < len(b); {
		v, end, err := d.decodeAt(b, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		pos = end
	}
	return out, nil
}

// frame is an open list on the decode stack.
type frame struct {
	end   int // offset one past the list payload
	items []Value
}

// decodeAt decodes the value starting at b[start] and returns it with the
// offset just past it. Lists are walked with an explicit stack so nesting
// depth costs heap, not goroutine stack.
func (d *Decoder) decodeAt(b []byte, start int) (Value, int, error) {
	var stack []frame
	pos := start
	for {
		// close every list whose payload is fully consumed
		for len(stack) > 0 && pos == stack[len(stack)-1].end {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			lv := Value{kind: List, items: top.items}
			if len(stack) == 0 {
				return lv, pos, nil
			}
			stack[len(stack)-1].items = append(stack[len(stack)-1].items, lv)
		}

		bound := len(b)
		if len(stack) > 0 {
			bound = stack[len(stack)-1].end
		}
		h, err := readElem(b[pos:bound])
		if err != nil {
			if len(stack) > 0 && errors.Is(err, ErrTruncatedInput) {
				// the enclosing list declared fewer bytes than its elements need
				err = ErrInvalidListLength
			}
			return Value{}, 0, d.reject(&DecodeError{Offset: pos, Depth: len(stack), Err: err})
		}

		var v Value
		switch h.Kind {
		case wire.Literal:
			v = Value{kind: String, str: b[pos : pos+1]}
		case wire.String:
			v = Value{kind: String, str: b[pos+h.HeaderLen : pos+int(h.Total())]}
		case wire.List:
			if len(stack) >= d.maxDepth {
				return Value{}, 0, d.reject(&DecodeError{Offset: pos, Depth: len(stack), Err: ErrMaxDepthExceeded})
			}
			stack = append(stack, frame{end: pos + int(h.Total())})
			pos += h.HeaderLen
			continue
		}
		pos += int(h.Total())
		if len(stack) == 0 {
			return v, pos, nil
		}
		stack[len(stack)-1].items = append(stack[len(stack)-1].items, v)
	}
}

// readElem reads the header at b[0] and checks the element against len(b)
// and the single byte rule.
func readElem(b []byte) (wire.Header, error) {
	h, err := wire.ReadHeader(b)
	if err != nil {
		return h, err
	}
	if h.Size > uint64(len(b)-h.HeaderLen) {
		return h, ErrTruncatedInput
	}
	if h.Kind == wire.String && h.LenOfLen == 0 && h.Size == 1 && b[1] < wire.OffsetString {
		return h, ErrNonCanonicalSingleByte
	}
	return h, nil
}

func (d *Decoder) reject(err *DecodeError) error {
	if _, nop := d.log.(NopLogger); nop {
		return err
	}
	d.log.Debug("rlp: input rejected", Fields{"offset": err.Offset, "depth": err.Depth, "err": err.Err})
	return err
}
