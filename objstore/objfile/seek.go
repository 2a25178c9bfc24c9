package objfile

import "io"

// Tell returns the current position of the file.
//
// NOTE: Unlike the other operations, 'Tell' may be used after the file is closed, in which case it returns zero.
func (f *File) Tell() int64 {
	return f.cursor
}

// Seek implements the 'io.Seeker' interface. Positions past the end of the file are clamped to its end.
//
// NOTE: Seeking to a non-zero position before the file has been read or written fetches the object, so that seeking
// before reading positions the file within the stored object rather than an empty buffer.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if err := f.checkOpen("seek"); err != nil {
		return f.cursor, err
	}

	pos, err := f.position(offset, whence)
	if err != nil {
		return f.cursor, err
	}

	if pos != 0 && f.state == stateUnfetched {
		if err := f.ensurePopulated(); err != nil {
			return f.cursor, err
		}

		pos, _ = f.position(offset, whence)
	}

	if pos < 0 {
		return f.cursor, &UsageError{Op: "seek", Err: ErrNegativeOffset}
	}

	f.cursor = min(pos, int64(len(f.buffer)))

	return f.cursor, nil
}

// position calculates the position resulting from applying the offset/whence to the current buffer.
func (f *File) position(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		return offset, nil
	case io.SeekCurrent:
		return f.cursor + offset, nil
	case io.SeekEnd:
		return int64(len(f.buffer)) + offset, nil
	}

	return 0, &UsageError{Op: "seek", Err: ErrInvalidWhence}
}
