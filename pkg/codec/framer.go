package codec

import (
	"fmt"
	"io"
)

// Span describes the extent of one logical record.
type Span struct {
	Payload    int64 // total payload bytes across all subrecords
	OnDisk     int64 // payload plus the bounding headers
	Subrecords int
}

// Framer transfers logical records as chains of subrecords. Each subrecord
// is a prefix header, payload bytes and a suffix header equal to the prefix;
// a negative prefix means more subrecords follow for the same record.
type Framer struct {
	codec HeaderCodec
}

// NewFramer creates a framer over the given header codec.
func NewFramer(codec HeaderCodec) *Framer {
	return &Framer{codec: codec}
}

// Codec returns the header codec the framer frames with.
func (f *Framer) Codec() HeaderCodec {
	return f.codec
}

// ReadInto reads one logical record from r into dst and returns the payload
// length and subrecord count. dst must be able to hold the whole record;
// ErrBufferTooSmall is returned as soon as a subrecord would overrun it.
func (f *Framer) ReadInto(r io.Reader, dst []byte) (int, int, error) {
	total := 0
	subs := 0
	for {
		head, err := f.codec.Read(r)
		if err != nil {
			return total, subs, err
		}
		n := abs64(head)
		if int64(total)+n > int64(len(dst)) {
			return total, subs, fmt.Errorf("%w: record exceeds %d bytes", ErrBufferTooSmall, len(dst))
		}
		if _, err := io.ReadFull(r, dst[total:total+int(n)]); err != nil {
			return total, subs, fmt.Errorf("%w: %v", ErrShortRead, err)
		}
		tail, err := f.codec.Read(r)
		if err != nil {
			return total, subs, err
		}
		if abs64(tail) != n {
			return total, subs, fmt.Errorf("%w: prefix %d, suffix %d", ErrFrameMismatch, head, tail)
		}
		total += int(n)
		subs++
		if head >= 0 {
			return total, subs, nil
		}
	}
}

// Discard walks one logical record without transferring payload bytes,
// leaving r positioned just past its final suffix header.
func (f *Framer) Discard(r io.ReadSeeker) (Span, error) {
	var span Span
	for {
		head, err := f.codec.Read(r)
		if err != nil {
			return span, err
		}
		n := abs64(head)
		if _, err := r.Seek(n, io.SeekCurrent); err != nil {
			return span, fmt.Errorf("seeking over subrecord payload: %w", err)
		}
		tail, err := f.codec.Read(r)
		if err != nil {
			return span, err
		}
		if abs64(tail) != n {
			return span, fmt.Errorf("%w: prefix %d, suffix %d", ErrFrameMismatch, head, tail)
		}
		span.Payload += n
		span.Subrecords++
		if head >= 0 {
			break
		}
	}
	span.OnDisk = span.Payload + 2*int64(f.codec.Width)*int64(span.Subrecords)
	return span, nil
}

// Probe measures the logical record at the current position and restores r
// to where it started. On error the restore is best-effort: an unexpected
// end of stream can leave the position unrecoverable.
func (f *Framer) Probe(r io.ReadSeeker) (Span, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return Span{}, err
	}
	span, err := f.Discard(r)
	if _, seekErr := r.Seek(start, io.SeekStart); seekErr != nil && err == nil {
		err = seekErr
	}
	return span, err
}

// Write writes payload as one logical record, split into subrecords of at
// most maxSub bytes. Every chunk but the last is framed with negative
// headers; the last gets a non-negative header, terminating the record.
// A zero-length payload is written as a single terminal subrecord.
func (f *Framer) Write(w io.Writer, payload []byte, maxSub int64) (Span, error) {
	if maxSub < 1 || maxSub > f.codec.MaxPayload() {
		return Span{}, fmt.Errorf("max subrecord size %d out of range [1, %d]", maxSub, f.codec.MaxPayload())
	}
	var span Span
	rest := payload
	for {
		n := int64(len(rest))
		last := n <= maxSub
		if !last {
			n = maxSub
		}
		head := n
		if !last {
			head = -n
		}
		if err := f.codec.Write(w, head); err != nil {
			return span, err
		}
		if _, err := w.Write(rest[:n]); err != nil {
			return span, fmt.Errorf("writing subrecord payload: %w", err)
		}
		if err := f.codec.Write(w, head); err != nil {
			return span, err
		}
		span.Payload += n
		span.Subrecords++
		if last {
			break
		}
		rest = rest[n:]
	}
	span.OnDisk = span.Payload + 2*int64(f.codec.Width)*int64(span.Subrecords)
	return span, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
