package objgcp

import (
	"errors"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"

	"github.com/couchbase/tools-objfile/objstore/objerr"
)

// handleError converts an error relating accessing an object via its key into a user friendly error where possible.
func handleError(bucket, key string, err error) error {
	if err == nil {
		return nil
	}

	switch statusCode(err) {
	case http.StatusUnauthorized:
		return objerr.ErrUnauthenticated
	case http.StatusForbidden:
		return objerr.ErrUnauthorized
	}

	if errors.Is(err, storage.ErrBucketNotExist) {
		// This shouldn't trigger but may aid in debugging in the future
		if bucket == "" {
			bucket = "<empty bucket name>"
		}

		return &objerr.NotFoundError{Type: "bucket", Name: bucket}
	}

	if errors.Is(err, storage.ErrObjectNotExist) {
		// This shouldn't trigger but may aid in debugging in the future
		if key == "" {
			key = "<empty key name>"
		}

		return &objerr.NotFoundError{Type: "key", Name: key}
	}

	return objerr.HandleError(err)
}

// statusCode returns the HTTP status code of the given error, or zero if it isn't a 'googleapi.Error'.
func statusCode(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}

	return 0
}

// isNotFound returns a boolean indicating whether the given (handled) error indicates a missing bucket.
func isNotFound(err error) bool {
	var notFound *objerr.NotFoundError
	return errors.As(err, &notFound) && notFound.Type == "bucket"
}

// isConflict returns a boolean indicating whether bucket creation failed because the bucket already exists.
func isConflict(err error) bool {
	return statusCode(err) == http.StatusConflict
}
