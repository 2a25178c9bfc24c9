package objazure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/couchbase/tools-objfile/objstore/objerr"
)

// handleError converts an error relating accessing an object via its key into a user friendly error where possible.
func handleError(bucket, key string, err error) error {
	if err == nil {
		return nil
	}

	if bloberror.HasCode(err, bloberror.AuthenticationFailed) {
		return objerr.ErrUnauthenticated
	}

	if bloberror.HasCode(err, bloberror.AuthorizationFailure, bloberror.AuthorizationPermissionMismatch) {
		return objerr.ErrUnauthorized
	}

	if bloberror.HasCode(err, bloberror.BlobNotFound) {
		// This shouldn't trigger but may aid in debugging in the future
		if key == "" {
			key = "<empty blob name>"
		}

		return &objerr.NotFoundError{Type: "blob", Name: key}
	}

	if bloberror.HasCode(err, bloberror.ContainerNotFound) {
		// This shouldn't trigger but may aid in debugging in the future
		if bucket == "" {
			bucket = "<empty container name>"
		}

		return &objerr.NotFoundError{Type: "container", Name: bucket}
	}

	return objerr.HandleError(err)
}

// isContainerNotFound returns a boolean indicating whether the given error is a 'ContainerNotFound' error.
func isContainerNotFound(err error) bool {
	return bloberror.HasCode(err, bloberror.ContainerNotFound)
}

// isContainerAlreadyExists returns a boolean indicating whether the given error is a 'ContainerAlreadyExists' error.
func isContainerAlreadyExists(err error) bool {
	return bloberror.HasCode(err, bloberror.ContainerAlreadyExists)
}
