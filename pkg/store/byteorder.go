package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/syrte/fortio/pkg/codec"
)

// scanAll walks every record from offset 0, building a complete index.
// The cumulative on-disk span must land exactly on the file size; a file
// that ends mid-record fails with ErrFileSizeMismatch.
func scanAll(r io.ReadSeeker, framer *codec.Framer, fileSize int64) (*recordIndex, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	ix := newRecordIndex()
	for ix.frontier < fileSize {
		span, err := framer.Discard(r)
		if err != nil {
			if errors.Is(err, codec.ErrTruncatedHeader) {
				return nil, fmt.Errorf("%w: file ends mid-record at offset %d", ErrFileSizeMismatch, ix.frontier)
			}
			return nil, err
		}
		ix.append(span)
	}
	ix.complete = true
	return ix, nil
}

// detectByteOrder trial-scans the whole file under both header byte orders
// and adopts whichever one is consistent. Exactly one order validating is
// the expected case; neither is a corrupt or foreign file, and both means
// the file carries no evidence either way (e.g. it is empty) and the caller
// has to choose explicitly.
func detectByteOrder(r io.ReadSeeker, width int, fileSize int64) (binary.ByteOrder, *recordIndex, error) {
	littleIdx, littleErr := scanOrder(r, width, fileSize, binary.LittleEndian)
	bigIdx, bigErr := scanOrder(r, width, fileSize, binary.BigEndian)

	switch {
	case littleErr == nil && bigErr == nil:
		return nil, nil, ErrIndeterminateByteOrder
	case littleErr == nil:
		return binary.LittleEndian, littleIdx, nil
	case bigErr == nil:
		return binary.BigEndian, bigIdx, nil
	default:
		return nil, nil, fmt.Errorf("%w: little: %v; big: %v", ErrAmbiguousByteOrder, littleErr, bigErr)
	}
}

func scanOrder(r io.ReadSeeker, width int, fileSize int64, order binary.ByteOrder) (*recordIndex, error) {
	headerCodec, err := codec.NewHeaderCodec(width, order)
	if err != nil {
		return nil, err
	}
	return scanAll(r, codec.NewFramer(headerCodec), fileSize)
}
