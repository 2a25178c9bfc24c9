package objutil

import (
	"fmt"
	"mime"
	"path"
	"time"

	"github.com/couchbase/tools-objfile/objstore/objval"
)

// secondsPerDay is used to convert an expiration in days into a 'Cache-Control' max age.
const secondsPerDay = 24 * 60 * 60

// MetadataOptions encapsulates the options available when deriving the metadata written alongside an object.
type MetadataOptions struct {
	// Key is the key of the object, used to guess the content type when none is provided.
	Key string

	// ContentType is the MIME type of the object, guessed from the extension of 'Key' when empty.
	ContentType string

	// Private indicates that the object should only be accessible by its owner, otherwise it's publicly readable.
	Private bool

	// ExpirationDays is the number of days after which the object should no longer be cached, ignored unless positive.
	ExpirationDays int

	// Now is the time used to calculate the expiration time.
	Now time.Time
}

// NewMetadata returns the metadata which should be supplied to 'PutObject' for an object with the given options.
func NewMetadata(opts MetadataOptions) objval.Metadata {
	metadata := objval.Metadata{
		ContentType: opts.ContentType,
		ACL:         objval.ACLPublicRead,
	}

	if metadata.ContentType == "" {
		metadata.ContentType = mime.TypeByExtension(path.Ext(opts.Key))
	}

	if opts.Private {
		metadata.ACL = objval.ACLPrivate
	}

	if opts.ExpirationDays <= 0 {
		return metadata
	}

	expires := opts.Now.UTC().Add(time.Duration(opts.ExpirationDays) * 24 * time.Hour).Truncate(time.Second)

	metadata.Expires = &expires
	metadata.CacheControl = fmt.Sprintf("max-age=%d", opts.ExpirationDays*secondsPerDay)

	return metadata
}
