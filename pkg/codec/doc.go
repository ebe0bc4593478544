// Package codec implements the record framing used by Fortran unformatted
// sequential files.
//
// # Record Format
//
// A file is a sequence of logical records. Each logical record is stored as
// one or more subrecords:
//
//	[Header(W)][Payload][Header(W)]
//
// The header is a fixed-width signed integer (W = 4 by default, matching a
// standard 32-bit Fortran record marker). Its magnitude is the payload
// length of that subrecord in bytes, and both headers of a subrecord must
// carry the same value. The sign encodes continuation: a negative prefix
// means further subrecords follow for the same logical record, a
// non-negative prefix terminates it. Splitting into subrecords is what lets
// a logical record exceed the signed range of a single header, e.g. records
// past 2 GiB with 4-byte headers.
//
// # Byte Order
//
// Header integers are stored in a single byte order per file, either
// little- or big-endian. The codec takes the order explicitly; detecting it
// from file contents is the caller's concern (see pkg/store).
//
// # Error Handling
//
// Framing failures are reported through sentinel errors: ErrTruncatedHeader
// when the stream ends inside a header, ErrShortRead when it ends inside a
// payload, ErrFrameMismatch when prefix and suffix disagree, and
// ErrBufferTooSmall when a destination buffer cannot hold a record. None of
// these are retried internally; the stream position after a partial read is
// not guaranteed restorable.
package codec
