package objval

import (
	"fmt"
	"time"
)

// ACL is the canned access control applied to an object when it's written.
type ACL int

const (
	// ACLPublicRead grants everyone read access to the object whilst the owner retains full control.
	ACLPublicRead ACL = iota

	// ACLPrivate only grants the owner access to the object.
	ACLPrivate
)

// String returns the canned ACL name as understood by S3 compatible stores.
func (a ACL) String() string {
	switch a {
	case ACLPublicRead:
		return "public-read"
	case ACLPrivate:
		return "private"
	}

	panic(fmt.Sprintf("unknown acl %d", a))
}

// Metadata is the write-time metadata attached to an object by 'PutObject'.
type Metadata struct {
	// ContentType is the MIME type of the object, omitted when empty.
	ContentType string

	// ACL is the access control applied to the object.
	ACL ACL

	// Expires is the time after which the object should no longer be cached, omitted when <nil>.
	Expires *time.Time

	// CacheControl is the value of the 'Cache-Control' header returned when the object is fetched, omitted when empty.
	CacheControl string
}
