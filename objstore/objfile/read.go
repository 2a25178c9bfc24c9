package objfile

import (
	"bytes"
	"io"
)

// Read implements the 'io.Reader' interface, reading from the current position.
func (f *File) Read(p []byte) (int, error) {
	if err := f.checkOpen("read"); err != nil {
		return 0, err
	}

	if err := f.ensurePopulated(); err != nil {
		return 0, err
	}

	if len(p) == 0 {
		return 0, nil
	}

	if f.cursor >= int64(len(f.buffer)) {
		return 0, io.EOF
	}

	n := copy(p, f.buffer[f.cursor:])
	f.cursor += int64(n)

	return n, nil
}

// ReadN returns up to n bytes from the current position, a negative n reads until the end of the file. Returns
// 'io.EOF' when a positive n is requested at the end of the file.
func (f *File) ReadN(n int) ([]byte, error) {
	return f.readN("read", n)
}

// ReadAll returns the remaining bytes from the current position until the end of the file.
func (f *File) ReadAll() ([]byte, error) {
	return f.readN("read", -1)
}

func (f *File) readN(op string, n int) ([]byte, error) {
	if err := f.checkOpen(op); err != nil {
		return nil, err
	}

	if err := f.ensurePopulated(); err != nil {
		return nil, err
	}

	remaining := f.remaining()

	if n > 0 && len(remaining) == 0 {
		return nil, io.EOF
	}

	if n < 0 || n > len(remaining) {
		n = len(remaining)
	}

	f.cursor += int64(n)

	return bytes.Clone(remaining[:n]), nil
}

// remaining returns the unread portion of the buffer.
func (f *File) remaining() []byte {
	return f.buffer[min(f.cursor, int64(len(f.buffer))):]
}
