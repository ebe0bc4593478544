package codec

// Errors
var (
	ErrTruncatedHeader = &FrameError{"truncated record header"}
	ErrShortRead       = &FrameError{"short read inside subrecord payload"}
	ErrFrameMismatch   = &FrameError{"inconsistent record headers"}
	ErrBufferTooSmall  = &FrameError{"buffer too small for record"}
)

// FrameError represents a record framing error
type FrameError struct {
	Message string
}

func (e *FrameError) Error() string {
	return e.Message
}
