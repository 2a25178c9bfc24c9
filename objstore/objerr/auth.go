package objerr

import "errors"

var (
	// ErrUnauthenticated is returned if a request to the object store was rejected because the caller couldn't be
	// authenticated i.e. 401 for Azure/GCP and typically a 403 with a signature error code for AWS.
	ErrUnauthenticated = errors.New("failed to authenticate, please check that valid credentials have been provided")

	// ErrUnauthorized is returned if the caller authenticated successfully, however, doesn't have permission to access
	// the bucket/object being operated on (AccessDenied).
	ErrUnauthorized = errors.New("authenticated user does not have the permission to access this resource")
)
