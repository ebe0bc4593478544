package codec

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DefaultHeaderWidth is the header width used by standard Fortran compilers:
// a 32-bit integer before and after every subrecord.
const DefaultHeaderWidth = 4

// HeaderCodec reads and writes the fixed-width signed integers that bound
// every subrecord. The magnitude of a header is the subrecord payload length
// in bytes; a negative sign marks a continuation subrecord.
type HeaderCodec struct {
	Width int              // header width in bytes (2 or 4)
	Order binary.ByteOrder // byte order applied to header fields
}

// NewHeaderCodec creates a header codec for the given width and byte order.
// A nil order defaults to little-endian.
func NewHeaderCodec(width int, order binary.ByteOrder) (HeaderCodec, error) {
	switch width {
	case 2, 4:
	default:
		return HeaderCodec{}, fmt.Errorf("unsupported header width %d: must be 2 or 4", width)
	}
	if order == nil {
		order = binary.LittleEndian
	}
	return HeaderCodec{Width: width, Order: order}, nil
}

// MaxPayload returns the largest subrecord payload length a header can
// encode in non-negative form.
func (c HeaderCodec) MaxPayload() int64 {
	return 1<<(uint(c.Width)*8-1) - 1
}

// Read decodes one header from r, advancing it by exactly Width bytes.
func (c HeaderCodec) Read(r io.Reader) (int64, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:c.Width]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}
	switch c.Width {
	case 2:
		return int64(int16(c.Order.Uint16(buf[:2]))), nil
	default:
		return int64(int32(c.Order.Uint32(buf[:4]))), nil
	}
}

// Write encodes v into w as one header, advancing it by exactly Width bytes.
func (c HeaderCodec) Write(w io.Writer, v int64) error {
	var buf [4]byte
	switch c.Width {
	case 2:
		c.Order.PutUint16(buf[:2], uint16(int16(v)))
	default:
		c.Order.PutUint32(buf[:4], uint32(int32(v)))
	}
	if _, err := w.Write(buf[:c.Width]); err != nil {
		return fmt.Errorf("writing record header: %w", err)
	}
	return nil
}
