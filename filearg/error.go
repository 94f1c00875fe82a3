package filearg

import "fmt"

// EmptyDataError indicates that a prepared source produced an empty byte
// buffer while emptiness checking was enabled.  Context labels the origin
// of the data: "bytes", "buffer", or the path or URL of the source.
type EmptyDataError struct {
	Context string
	// ReadPosition is the source buffer's read cursor at preparation
	// time, or -1 when unknown.  A nonzero position usually means the
	// caller already consumed the buffer.
	ReadPosition int64
}

func (e *EmptyDataError) Error() string {
	s := fmt.Sprintf("empty data from %s", e.Context)
	if e.ReadPosition > 0 {
		s += fmt.Sprintf(" (buffer position = %d; try seeking to the start before reading?)", e.ReadPosition)
	}
	return s
}

// EncodingError indicates that the declared encoding is unsupported or
// cannot decode the source bytes.
type EncodingError struct {
	Encoding string
	Err      error
}

func (e *EncodingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unsupported encoding %q", e.Encoding)
	}
	return fmt.Sprintf("cannot decode data as %s: %v", e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
