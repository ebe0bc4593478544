package store

import (
	"encoding/binary"
)

// Mode selects how a file is opened.
type Mode int

const (
	ModeRead   Mode = iota // existing file, read-only
	ModeWrite              // create or truncate, read-write
	ModeAppend             // create if missing, new records go after existing ones
)

// ByteOrder selects how header integers are interpreted.
type ByteOrder int

const (
	AutoByteOrder ByteOrder = iota // detect by trial-scanning the file
	LittleEndian
	BigEndian
)

// Binary returns the encoding/binary order for an explicit choice.
// The second result is false for AutoByteOrder.
func (o ByteOrder) Binary() (binary.ByteOrder, bool) {
	switch o {
	case LittleEndian:
		return binary.LittleEndian, true
	case BigEndian:
		return binary.BigEndian, true
	default:
		return nil, false
	}
}

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "auto"
	}
}

// Config holds configuration for a FortranFile handle.
type Config struct {
	Path             string
	Mode             Mode
	HeaderWidth      int       // header width in bytes (0 = 4)
	ByteOrder        ByteOrder // header byte order (default auto-detect)
	MaxSubrecordSize int64     // largest subrecord payload on writes (0 = header maximum)
}

// RecordInfo describes where one logical record lives on disk.
type RecordInfo struct {
	Ordinal    int
	Offset     int64 // start of the first subrecord header
	Payload    int64 // logical record length in bytes
	OnDisk     int64 // payload plus all bounding headers
	Subrecords int
}

// Errors
var (
	ErrRecordNotFound         = &FileError{"record not found"}
	ErrFileSizeMismatch       = &FileError{"record spans do not match file size"}
	ErrAmbiguousByteOrder     = &FileError{"cannot determine byte order"}
	ErrIndeterminateByteOrder = &FileError{"both byte orders are consistent; byte order must be given explicitly"}
	ErrClosed                 = &FileError{"file is closed"}
	ErrReadOnly               = &FileError{"file is opened read-only"}
)

// FileError represents a file handle error
type FileError struct {
	Message string
}

func (e *FileError) Error() string {
	return e.Message
}
