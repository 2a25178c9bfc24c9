package objcli

import "io"

// CopyReadSeeker copies the remainder of src into dst, then restores src to the position it had before the copy so
// the same body may be consumed again (e.g. hashed, then uploaded).
func CopyReadSeeker(dst io.Writer, src io.ReadSeeker) (int64, error) {
	var n int64

	err := preservePosition(src, func() error {
		var err error
		n, err = io.Copy(dst, src)

		return err
	})

	return n, err
}

// SeekerLength returns the number of bytes between the current position of the seeker and its end.
func SeekerLength(seeker io.Seeker) (int64, error) {
	var length int64

	err := preservePosition(seeker, func() error {
		cur, err := seeker.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}

		end, err := seeker.Seek(0, io.SeekEnd)
		if err != nil {
			return err
		}

		length = end - cur

		return nil
	})

	return length, err
}

// preservePosition runs fn, seeking back to the position the seeker had beforehand once fn completes successfully.
func preservePosition(seeker io.Seeker, fn func() error) error {
	start, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	if err := fn(); err != nil {
		return err
	}

	_, err = seeker.Seek(start, io.SeekStart)

	return err
}
