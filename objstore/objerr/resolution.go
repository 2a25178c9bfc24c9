package objerr

import "errors"

// ErrEndpointResolutionFailed is returned if the object store endpoint could not be resolved.
var ErrEndpointResolutionFailed = errors.New("object store endpoint domain name resolution failed, " +
	"check region/endpoint are valid")
