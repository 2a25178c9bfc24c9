package objfile

import (
	"bytes"
	"io"
	"iter"
)

// ReadLine returns the bytes from the current position up to and including the next newline, or the end of the file.
// Returns 'io.EOF' when the end of the file has been reached.
func (f *File) ReadLine() ([]byte, error) {
	return f.readLine("readline", -1)
}

// ReadLineN is the same as 'ReadLine' except that at most n bytes are returned, a negative n means no limit.
func (f *File) ReadLineN(n int) ([]byte, error) {
	return f.readLine("readline", n)
}

func (f *File) readLine(op string, n int) ([]byte, error) {
	if err := f.checkOpen(op); err != nil {
		return nil, err
	}

	if err := f.ensurePopulated(); err != nil {
		return nil, err
	}

	line := f.nextLine(n)
	if line == nil {
		return nil, io.EOF
	}

	return line, nil
}

// ReadLines returns every line from the current position until the end of the file; the position isn't reset first.
func (f *File) ReadLines() ([][]byte, error) {
	if err := f.checkOpen("readlines"); err != nil {
		return nil, err
	}

	if err := f.ensurePopulated(); err != nil {
		return nil, err
	}

	lines := make([][]byte, 0)

	for line := f.nextLine(-1); line != nil; line = f.nextLine(-1) {
		lines = append(lines, line)
	}

	return lines, nil
}

// Lines returns an iterator over the lines from the current position until the end of the file. Each step advances
// the position of the file, so the iterator can't be restarted and only a single consumer should be iterating at once.
//
// Any error is yielded along with a <nil> line, after which iteration stops.
func (f *File) Lines() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		if err := f.checkOpen("lines"); err != nil {
			yield(nil, err)
			return
		}

		if err := f.ensurePopulated(); err != nil {
			yield(nil, err)
			return
		}

		for {
			// The file may be closed by the consumer mid-iteration
			if err := f.checkOpen("lines"); err != nil {
				yield(nil, err)
				return
			}

			line := f.nextLine(-1)
			if line == nil || !yield(line, nil) {
				return
			}
		}
	}
}

// nextLine returns a copy of the next line (including its newline) capped at limit bytes when non-negative, and
// advances the position past it. Returns <nil> at the end of the buffer.
func (f *File) nextLine(limit int) []byte {
	remaining := f.remaining()
	if len(remaining) == 0 {
		return nil
	}

	end := len(remaining)
	if idx := bytes.IndexByte(remaining, '\n'); idx >= 0 {
		end = idx + 1
	}

	if limit >= 0 {
		end = min(end, limit)
	}

	f.cursor += int64(end)

	return append([]byte{}, remaining[:end]...)
}
