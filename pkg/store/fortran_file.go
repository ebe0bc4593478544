package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/syrte/fortio/pkg/codec"
)

// FortranFile is a handle on a Fortran unformatted sequential file. It owns
// one stream cursor and one record index; concurrent use from multiple
// goroutines must be serialized by the caller. After an I/O error the
// stream position may be inconsistent with the index, so a handle should be
// re-validated (Validate) or reopened before further use.
type FortranFile struct {
	config Config
	file   *os.File
	order  binary.ByteOrder
	framer *codec.Framer
	index  *recordIndex
	cursor int   // ordinal of the next record to read
	size   int64 // file size in bytes
	maxSub int64
	mutex  sync.Mutex
	isOpen bool
}

// Open opens a Fortran unformatted file.
//
// In ModeRead with AutoByteOrder the whole file is trial-scanned both ways
// to establish the header byte order; with an explicit order the index is
// instead built lazily as records are visited. ModeAppend always scans the
// existing records so new ones get the right ordinals, and leaves the
// cursor past the last record. ModeWrite truncates and defaults to
// little-endian headers when no order is given.
func Open(config Config) (*FortranFile, error) {
	if config.HeaderWidth == 0 {
		config.HeaderWidth = codec.DefaultHeaderWidth
	}
	widthCheck, err := codec.NewHeaderCodec(config.HeaderWidth, binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	if config.MaxSubrecordSize == 0 {
		config.MaxSubrecordSize = widthCheck.MaxPayload()
	}
	if config.MaxSubrecordSize < 1 || config.MaxSubrecordSize > widthCheck.MaxPayload() {
		return nil, fmt.Errorf("max subrecord size %d out of range [1, %d]", config.MaxSubrecordSize, widthCheck.MaxPayload())
	}

	var flags int
	switch config.Mode {
	case ModeRead:
		flags = os.O_RDONLY
	case ModeWrite:
		flags = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	case ModeAppend:
		flags = os.O_RDWR | os.O_CREATE
	default:
		return nil, fmt.Errorf("unknown open mode %d", config.Mode)
	}

	file, err := os.OpenFile(config.Path, flags, 0o644)
	if err != nil {
		return nil, err
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	size := stat.Size()

	order, explicit := config.ByteOrder.Binary()
	var index *recordIndex

	switch {
	case !explicit && config.Mode == ModeWrite:
		// Nothing to detect in a truncated file.
		order = binary.LittleEndian
		index = newRecordIndex()
		index.complete = true
	case !explicit:
		order, index, err = detectByteOrder(file, config.HeaderWidth, size)
		if err != nil {
			file.Close()
			return nil, err
		}
	case config.Mode == ModeRead:
		index = newRecordIndex()
	default:
		// Explicit order, writable: index the existing records up front so
		// the next write lands after them.
		headerCodec, err := codec.NewHeaderCodec(config.HeaderWidth, order)
		if err != nil {
			file.Close()
			return nil, err
		}
		index, err = scanAll(file, codec.NewFramer(headerCodec), size)
		if err != nil {
			file.Close()
			return nil, err
		}
	}

	headerCodec, err := codec.NewHeaderCodec(config.HeaderWidth, order)
	if err != nil {
		file.Close()
		return nil, err
	}

	f := &FortranFile{
		config: config,
		file:   file,
		order:  order,
		framer: codec.NewFramer(headerCodec),
		index:  index,
		size:   size,
		maxSub: config.MaxSubrecordSize,
		isOpen: true,
	}
	if config.Mode == ModeAppend {
		f.cursor = index.len()
	}
	return f, nil
}

// ReadRecord reads the record at the cursor and advances the cursor by one.
func (f *FortranFile) ReadRecord() ([]byte, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return nil, ErrClosed
	}

	entry, err := f.locate(f.cursor)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, entry.payload)
	if err := f.readAt(entry, buf); err != nil {
		return nil, err
	}

	f.cursor++
	return buf, nil
}

// ReadRecordInto reads the record at the cursor into buf and advances the
// cursor. It fails with ErrBufferTooSmall, before any transfer, if buf
// cannot hold the whole record. Returns the record length in bytes.
func (f *FortranFile) ReadRecordInto(buf []byte) (int, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return 0, ErrClosed
	}

	entry, err := f.locate(f.cursor)
	if err != nil {
		return 0, err
	}
	if int64(len(buf)) < entry.payload {
		return 0, fmt.Errorf("%w: record is %d bytes, buffer holds %d", codec.ErrBufferTooSmall, entry.payload, len(buf))
	}

	if err := f.readAt(entry, buf); err != nil {
		return 0, err
	}

	f.cursor++
	return int(entry.payload), nil
}

// WriteRecord appends one logical record after the already indexed records,
// splitting it into subrecords of at most the configured maximum. The new
// record is indexed immediately and the cursor ends up past it.
func (f *FortranFile) WriteRecord(data []byte) (codec.Span, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return codec.Span{}, ErrClosed
	}
	if f.config.Mode == ModeRead {
		return codec.Span{}, ErrReadOnly
	}

	if _, err := f.file.Seek(f.index.frontier, io.SeekStart); err != nil {
		return codec.Span{}, err
	}
	span, err := f.framer.Write(f.file, data, f.maxSub)
	if err != nil {
		// A partial write leaves the file inconsistent with the index;
		// the caller must Validate or reopen before trusting the handle.
		return span, err
	}

	f.index.append(span)
	f.size = f.index.frontier
	f.cursor = f.index.len()
	return span, nil
}

// SkipRecord advances the cursor past the next record without copying
// payload bytes.
func (f *FortranFile) SkipRecord() error {
	return f.SkipRecords(1)
}

// SkipRecords advances the cursor by count records using header walks only.
func (f *FortranFile) SkipRecords(count int) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return ErrClosed
	}
	if count < 0 {
		return fmt.Errorf("skip count %d must be non-negative", count)
	}
	if count == 0 {
		return nil
	}

	if _, err := f.locate(f.cursor + count - 1); err != nil {
		return err
	}
	f.cursor += count
	return nil
}

// GotoRecord repositions the cursor to an arbitrary record ordinal
// (0-based). Jumps beyond the indexed frontier extend the index by walking
// record headers; earlier ordinals are O(1).
func (f *FortranFile) GotoRecord(ordinal int) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return ErrClosed
	}
	if _, err := f.locate(ordinal); err != nil {
		return err
	}
	f.cursor = ordinal
	return nil
}

// Tell returns the ordinal of the record the cursor is positioned at.
func (f *FortranFile) Tell() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.cursor
}

// RecordSize returns the logical length of the given record without moving
// the cursor.
func (f *FortranFile) RecordSize(ordinal int) (int64, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return 0, ErrClosed
	}
	entry, err := f.locate(ordinal)
	if err != nil {
		return 0, err
	}
	return entry.payload, nil
}

// CurrentRecordSize returns the logical length of the record at the cursor.
func (f *FortranFile) CurrentRecordSize() (int64, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return 0, ErrClosed
	}
	entry, err := f.locate(f.cursor)
	if err != nil {
		return 0, err
	}
	return entry.payload, nil
}

// RecordInfo returns the on-disk location of the given record.
func (f *FortranFile) RecordInfo(ordinal int) (RecordInfo, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return RecordInfo{}, ErrClosed
	}
	entry, err := f.locate(ordinal)
	if err != nil {
		return RecordInfo{}, err
	}
	return RecordInfo{
		Ordinal:    ordinal,
		Offset:     entry.offset,
		Payload:    entry.payload,
		OnDisk:     entry.onDisk,
		Subrecords: entry.subrecords,
	}, nil
}

// RecordCount returns the total number of logical records, scanning the
// rest of the file once if needed. The result is cached in the index.
func (f *FortranFile) RecordCount() (int, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return 0, ErrClosed
	}
	if err := f.extendAll(); err != nil {
		return 0, err
	}
	return f.index.len(), nil
}

// Validate rebuilds the index with a full scan from offset 0, failing with
// ErrFileSizeMismatch when the record spans do not cover the file exactly.
// On success the cursor is reset to the first record.
func (f *FortranFile) Validate() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return ErrClosed
	}

	// Re-stat: the file may have grown or shrunk behind this handle.
	stat, err := f.file.Stat()
	if err != nil {
		return err
	}
	f.size = stat.Size()

	f.index.reset()
	if err := f.extendAll(); err != nil {
		return err
	}
	f.cursor = 0
	return nil
}

// Flush forces written records to stable storage.
func (f *FortranFile) Flush() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return ErrClosed
	}
	return f.file.Sync()
}

// Close releases the underlying file. Closing twice is a no-op; every other
// operation on a closed handle fails with ErrClosed.
func (f *FortranFile) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if !f.isOpen {
		return nil
	}
	f.isOpen = false
	return f.file.Close()
}

// ByteOrder returns the header byte order in effect, after detection.
func (f *FortranFile) ByteOrder() ByteOrder {
	if f.order == binary.ByteOrder(binary.BigEndian) {
		return BigEndian
	}
	return LittleEndian
}

// HeaderWidth returns the header width in bytes.
func (f *FortranFile) HeaderWidth() int {
	return f.framer.Codec().Width
}

// Path returns the file path.
func (f *FortranFile) Path() string {
	return f.config.Path
}

// Size returns the file size in bytes as known to the handle.
func (f *FortranFile) Size() int64 {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.size
}

// locate returns the index entry for ordinal, extending the index from the
// frontier one record at a time when needed. Known ordinals are O(1); a
// jump k records past the frontier costs one header walk per record.
func (f *FortranFile) locate(ordinal int) (indexEntry, error) {
	if ordinal < 0 {
		return indexEntry{}, fmt.Errorf("%w: ordinal %d", ErrRecordNotFound, ordinal)
	}
	for f.index.len() <= ordinal {
		if f.index.complete {
			return indexEntry{}, fmt.Errorf("%w: ordinal %d, file has %d records", ErrRecordNotFound, ordinal, f.index.len())
		}
		if err := f.extendFrontier(); err != nil {
			return indexEntry{}, err
		}
	}
	entry, _ := f.index.entry(ordinal)
	return entry, nil
}

// extendFrontier indexes the record at the frontier, or marks the index
// complete when the frontier sits exactly at end of file.
func (f *FortranFile) extendFrontier() error {
	if f.index.frontier >= f.size {
		f.index.complete = true
		return nil
	}
	if _, err := f.file.Seek(f.index.frontier, io.SeekStart); err != nil {
		return err
	}
	span, err := f.framer.Discard(f.file)
	if err != nil {
		if errors.Is(err, codec.ErrTruncatedHeader) {
			return fmt.Errorf("%w: file ends mid-record at offset %d", ErrFileSizeMismatch, f.index.frontier)
		}
		return err
	}
	f.index.append(span)
	return nil
}

func (f *FortranFile) extendAll() error {
	for !f.index.complete {
		if err := f.extendFrontier(); err != nil {
			return err
		}
	}
	return nil
}

// readAt transfers the record described by entry into dst. On failure it
// makes a best-effort attempt to restore the position to the record start
// so the caller can try a different operation.
func (f *FortranFile) readAt(entry indexEntry, dst []byte) error {
	if _, err := f.file.Seek(entry.offset, io.SeekStart); err != nil {
		return err
	}
	if _, _, err := f.framer.ReadInto(f.file, dst[:entry.payload]); err != nil {
		f.file.Seek(entry.offset, io.SeekStart) //nolint:errcheck // best-effort restore
		return err
	}
	return nil
}
