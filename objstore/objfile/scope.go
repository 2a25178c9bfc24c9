package objfile

import "github.com/couchbase/tools-objfile/errors/definitions"

// WithFile opens a file, runs the given function then closes the file. The file is closed on every exit path, including
// when the function returns an error or panics, unless the function has closed it itself.
//
// Errors returned by the function and by closing the file are both returned.
func WithFile(opts OpenOptions, fn func(file *File) error) (err error) {
	file, err := Open(opts)
	if err != nil {
		return err
	}

	defer func() {
		if file.Closed() {
			return
		}

		errs := definitions.MultiError{Prefix: "failed to use file: "}

		errs.Add(err)
		errs.Add(file.Close())

		if len(errs.Errors()) == 1 {
			err = errs.Errors()[0]
			return
		}

		err = errs.ErrOrNil()
	}()

	return fn(file)
}
