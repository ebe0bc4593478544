package store

import (
	"github.com/syrte/fortio/pkg/codec"
)

// indexEntry records where one logical record lives on disk.
type indexEntry struct {
	offset     int64
	payload    int64
	onDisk     int64
	subrecords int
}

// recordIndex is an append-only table mapping record ordinal to file
// location. Ordinals are dense from 0, so a plain slice plus a frontier
// offset is enough; entries are never rewritten once appended. The index
// lives only as long as the handle, there is no sidecar file.
type recordIndex struct {
	entries  []indexEntry
	frontier int64 // offset just past the last indexed record
	complete bool  // frontier has reached end of file
}

func newRecordIndex() *recordIndex {
	return &recordIndex{}
}

func (ix *recordIndex) len() int {
	return len(ix.entries)
}

func (ix *recordIndex) entry(ordinal int) (indexEntry, bool) {
	if ordinal < 0 || ordinal >= len(ix.entries) {
		return indexEntry{}, false
	}
	return ix.entries[ordinal], true
}

// append adds the next record's span at the current frontier and advances it.
func (ix *recordIndex) append(span codec.Span) indexEntry {
	e := indexEntry{
		offset:     ix.frontier,
		payload:    span.Payload,
		onDisk:     span.OnDisk,
		subrecords: span.Subrecords,
	}
	ix.entries = append(ix.entries, e)
	ix.frontier += span.OnDisk
	return e
}

// reset discards all entries, e.g. before a full re-validation scan.
func (ix *recordIndex) reset() {
	ix.entries = ix.entries[:0]
	ix.frontier = 0
	ix.complete = false
}
