package objaws

import (
	"errors"

	"github.com/aws/smithy-go"

	"github.com/couchbase/tools-objfile/objstore/objerr"
	"github.com/couchbase/tools-objfile/types/ptr"
)

// handleError converts an error relating accessing an object via its key into a user friendly error where possible.
func handleError(bucket, key *string, err error) error {
	var apiErr smithy.APIError
	if err == nil || !errors.As(err, &apiErr) {
		return objerr.HandleError(err)
	}

	switch apiErr.ErrorCode() {
	case "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return objerr.ErrUnauthenticated
	case "AccessDenied", "Forbidden":
		return objerr.ErrUnauthorized
	case "NoSuchKey":
		return keyNotFound(key)
	case "NoSuchBucket":
		return bucketNotFound(bucket)
	case "NotFound":
		// HEAD requests don't have a body so the specific error code is lost, infer it from what was requested
		if key == nil {
			return bucketNotFound(bucket)
		}

		return keyNotFound(key)
	}

	// The API error may be wrapping a transport error e.g. a DNS failure
	if err := objerr.TryHandleError(err); err != nil {
		return err
	}

	// This isn't a status code we plan to handle manually, return the complete error
	return err
}

func keyNotFound(key *string) error {
	if key == nil {
		key = ptr.To("<empty key name>")
	}

	return &objerr.NotFoundError{Type: "key", Name: *key}
}

func bucketNotFound(bucket *string) error {
	if bucket == nil {
		bucket = ptr.To("<empty bucket name>")
	}

	return &objerr.NotFoundError{Type: "bucket", Name: *bucket}
}

// isBucketNotFound returns a boolean indicating whether the given error indicates that a bucket doesn't exist;
// 'HeadBucket' returns 'NotFound' whilst other requests return 'NoSuchBucket'.
func isBucketNotFound(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NotFound" || apiErr.ErrorCode() == "NoSuchBucket")
}

// isBucketAlreadyExists returns a boolean indicating whether bucket creation failed because the bucket already exists,
// this happens when another process creates it between checking for it and creating it.
func isBucketAlreadyExists(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) &&
		(apiErr.ErrorCode() == "BucketAlreadyOwnedByYou" || apiErr.ErrorCode() == "BucketAlreadyExists")
}
