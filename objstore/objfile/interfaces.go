package objfile

import (
	"io"
	"iter"
)

// Reader is the read capability of a file.
type Reader interface {
	io.Reader
	ReadN(n int) ([]byte, error)
	ReadAll() ([]byte, error)
	ReadLine() ([]byte, error)
	ReadLineN(n int) ([]byte, error)
	ReadLines() ([][]byte, error)
	Lines() iter.Seq2[[]byte, error]
}

// Writer is the write capability of a file.
type Writer interface {
	io.Writer
	io.StringWriter
	WriteLines(lines ...[]byte) error
	Truncate(size int64) error
	TruncateAtCursor() error
	Flush() error
}

// Seeker is the positioning capability of a file.
type Seeker interface {
	io.Seeker
	Tell() int64
}

// Handle is the full set of capabilities of an open file.
type Handle interface {
	Reader
	Writer
	Seeker
	io.Closer
	Name() string
	Closed() bool
}

var (
	_ Reader = (*File)(nil)
	_ Writer = (*File)(nil)
	_ Seeker = (*File)(nil)
	_ Handle = (*File)(nil)
)
