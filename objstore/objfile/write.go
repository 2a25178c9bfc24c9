package objfile

import "math"

// MaxSize is the largest file which may be buffered, matching the largest object which may be stored using a single
// request.
const MaxSize int64 = 5 << 30

// Write implements the 'io.Writer' interface, overwriting/extending the file from the current position.
func (f *File) Write(p []byte) (int, error) {
	if err := f.checkOpen("write"); err != nil {
		return 0, err
	}

	if err := checkSize("write", f.cursor+int64(len(p))); err != nil {
		return 0, err
	}

	f.grow(f.cursor + int64(len(p)))

	n := copy(f.buffer[f.cursor:], p)
	f.cursor += int64(n)

	f.markDirty()

	return n, nil
}

// WriteString implements the 'io.StringWriter' interface.
func (f *File) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

// WriteLines writes each of the given lines in order; no separators are added, lines should include their own newline.
func (f *File) WriteLines(lines ...[]byte) error {
	if err := f.checkOpen("writelines"); err != nil {
		return err
	}

	// Writing no lines still modifies the file
	f.markDirty()

	for _, line := range lines {
		if _, err := f.Write(line); err != nil {
			return err
		}
	}

	return nil
}

// Truncate changes the size of the file, extending it with zeros or discarding trailing bytes. The position is moved
// to the new end of the file if it was beyond it.
func (f *File) Truncate(size int64) error {
	if err := f.checkOpen("truncate"); err != nil {
		return err
	}

	if size < 0 {
		return &UsageError{Op: "truncate", Err: ErrNegativeSize}
	}

	if err := checkSize("truncate", size); err != nil {
		return err
	}

	if size <= int64(len(f.buffer)) {
		f.buffer = f.buffer[:size]
	} else {
		f.grow(size)
	}

	f.cursor = min(f.cursor, size)

	f.markDirty()

	return nil
}

// TruncateAtCursor truncates the file at the current position.
func (f *File) TruncateAtCursor() error {
	return f.Truncate(f.cursor)
}

// grow extends the buffer with zeros so that it's at least size bytes long.
func (f *File) grow(size int64) {
	if size <= int64(len(f.buffer)) {
		return
	}

	f.buffer = append(f.buffer, make([]byte, size-int64(len(f.buffer)))...)
}

// checkSize returns a usage error if the file can't be grown to the given size.
func checkSize(op string, size int64) error {
	if size > MaxSize || size > math.MaxInt {
		return &UsageError{Op: op, Err: ErrSizeTooLarge}
	}

	return nil
}
