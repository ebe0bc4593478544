package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func newTestFramer(t *testing.T, order binary.ByteOrder) *Framer {
	t.Helper()
	codec, err := NewHeaderCodec(4, order)
	if err != nil {
		t.Fatalf("NewHeaderCodec failed: %v", err)
	}
	return NewFramer(codec)
}

func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i * 31)
	}
	return b
}

func TestFramer_RoundTrip(t *testing.T) {
	const maxSub = 8

	testCases := []struct {
		name    string
		length  int
		wantSub int
	}{
		{"empty record", 0, 1},
		{"single byte", 1, 1},
		{"one under the limit", maxSub - 1, 1},
		{"exactly the limit", maxSub, 1},
		{"one over the limit", maxSub + 1, 2},
		{"three full subrecords", 3 * maxSub, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			framer := newTestFramer(t, binary.LittleEndian)
			payload := pattern(tc.length)

			var buf bytes.Buffer
			span, err := framer.Write(&buf, payload, maxSub)
			if err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if span.Payload != int64(tc.length) {
				t.Errorf("span payload: got %d, want %d", span.Payload, tc.length)
			}
			if span.Subrecords != tc.wantSub {
				t.Errorf("subrecord count: got %d, want %d", span.Subrecords, tc.wantSub)
			}
			wantDisk := int64(tc.length + 8*tc.wantSub)
			if span.OnDisk != wantDisk {
				t.Errorf("on-disk span: got %d, want %d", span.OnDisk, wantDisk)
			}
			if int64(buf.Len()) != wantDisk {
				t.Errorf("bytes written: got %d, want %d", buf.Len(), wantDisk)
			}

			dst := make([]byte, tc.length)
			n, subs, err := framer.ReadInto(bytes.NewReader(buf.Bytes()), dst)
			if err != nil {
				t.Fatalf("ReadInto failed: %v", err)
			}
			if n != tc.length {
				t.Errorf("payload read: got %d bytes, want %d", n, tc.length)
			}
			if subs != tc.wantSub {
				t.Errorf("subrecords read: got %d, want %d", subs, tc.wantSub)
			}
			if !bytes.Equal(dst, payload) {
				t.Errorf("payload mismatch after round trip")
			}
		})
	}
}

func TestFramer_DiscardAndProbe(t *testing.T) {
	framer := newTestFramer(t, binary.BigEndian)

	var buf bytes.Buffer
	if _, err := framer.Write(&buf, pattern(20), 8); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := framer.Write(&buf, pattern(5), 8); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	r := bytes.NewReader(buf.Bytes())

	// Probe must not move the cursor, no matter how often it runs.
	for i := 0; i < 3; i++ {
		span, err := framer.Probe(r)
		if err != nil {
			t.Fatalf("Probe %d failed: %v", i, err)
		}
		if span.Payload != 20 || span.Subrecords != 3 {
			t.Fatalf("probe span: got %+v, want payload 20 in 3 subrecords", span)
		}
		if pos, _ := r.Seek(0, io.SeekCurrent); pos != 0 {
			t.Fatalf("probe moved the cursor to %d", pos)
		}
	}

	// Discard walks past the first record, landing on the second.
	span, err := framer.Discard(r)
	if err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if pos, _ := r.Seek(0, io.SeekCurrent); pos != span.OnDisk {
		t.Fatalf("cursor after discard: got %d, want %d", pos, span.OnDisk)
	}

	second, err := framer.Probe(r)
	if err != nil {
		t.Fatalf("Probe after discard failed: %v", err)
	}
	if second.Payload != 5 || second.Subrecords != 1 {
		t.Errorf("second record span: got %+v, want payload 5 in 1 subrecord", second)
	}
}

func TestFramer_SuffixMismatch(t *testing.T) {
	framer := newTestFramer(t, binary.LittleEndian)

	var buf bytes.Buffer
	if _, err := framer.Write(&buf, pattern(10), 100); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Corrupt the suffix header of the only subrecord.
	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0xFF

	dst := make([]byte, 10)
	if _, _, err := framer.ReadInto(bytes.NewReader(raw), dst); !errors.Is(err, ErrFrameMismatch) {
		t.Errorf("ReadInto: got %v, want ErrFrameMismatch", err)
	}
	if _, err := framer.Discard(bytes.NewReader(raw)); !errors.Is(err, ErrFrameMismatch) {
		t.Errorf("Discard: got %v, want ErrFrameMismatch", err)
	}
}

func TestFramer_ShortPayload(t *testing.T) {
	framer := newTestFramer(t, binary.LittleEndian)

	var buf bytes.Buffer
	if _, err := framer.Write(&buf, pattern(32), 100); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Cut the stream in the middle of the payload.
	raw := buf.Bytes()[:4+16]

	dst := make([]byte, 32)
	if _, _, err := framer.ReadInto(bytes.NewReader(raw), dst); !errors.Is(err, ErrShortRead) {
		t.Errorf("ReadInto: got %v, want ErrShortRead", err)
	}
}

func TestFramer_TruncatedSuffix(t *testing.T) {
	framer := newTestFramer(t, binary.LittleEndian)

	var buf bytes.Buffer
	if _, err := framer.Write(&buf, pattern(16), 100); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Keep the prefix and payload but drop the suffix header.
	raw := buf.Bytes()[:4+16]

	if _, err := framer.Discard(bytes.NewReader(raw)); !errors.Is(err, ErrTruncatedHeader) {
		t.Errorf("Discard: got %v, want ErrTruncatedHeader", err)
	}
}

func TestFramer_BufferTooSmall(t *testing.T) {
	framer := newTestFramer(t, binary.LittleEndian)

	var buf bytes.Buffer
	if _, err := framer.Write(&buf, pattern(24), 8); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	dst := make([]byte, 10)
	if _, _, err := framer.ReadInto(bytes.NewReader(buf.Bytes()), dst); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("ReadInto: got %v, want ErrBufferTooSmall", err)
	}
}

func TestFramer_WriteMaxSubrecordBounds(t *testing.T) {
	framer := newTestFramer(t, binary.LittleEndian)

	var buf bytes.Buffer
	for _, maxSub := range []int64{0, -1, 1<<31 - 1 + 1} {
		if _, err := framer.Write(&buf, pattern(4), maxSub); err == nil {
			t.Errorf("max subrecord size %d: expected error, got nil", maxSub)
		}
	}
}

func TestFramer_OppositeOrderMisread(t *testing.T) {
	little := newTestFramer(t, binary.LittleEndian)
	big := newTestFramer(t, binary.BigEndian)

	var buf bytes.Buffer
	if _, err := little.Write(&buf, pattern(6), 100); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// A 6-byte header read big-endian becomes a huge bogus length.
	dst := make([]byte, 6)
	if _, _, err := big.ReadInto(bytes.NewReader(buf.Bytes()), dst); err == nil {
		t.Error("reading with the wrong byte order should fail")
	}
}
