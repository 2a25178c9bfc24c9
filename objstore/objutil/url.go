package objutil

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/couchbase/tools-objfile/objstore/objval"
)

// supported is the list of location prefixes understood by 'ParseObjectURL'.
var supported = []string{"objectstore://", "s3://", "gs://", "az://", "http://", "https://"}

// ErrInvalidObjectPath returns if the user has incorrectly used a scheme prefixed location; the error message
// indicates/displays the correct usage to the user.
type ErrInvalidObjectPath struct {
	prefix string
}

func (e *ErrInvalidObjectPath) Error() string {
	if e.prefix == "http://" || e.prefix == "https://" {
		return fmt.Sprintf("invalid use of the '%s' prefix expected the format '%s${BUCKET_NAME}.${HOST}/${PATH}' "+
			"or, for service endpoints, IP addresses and undotted hosts, '%s${HOST}/${BUCKET_NAME}/${PATH}'",
			e.prefix, e.prefix, e.prefix)
	}

	medium := "BUCKET"
	if e.prefix == "az://" {
		medium = "CONTAINER"
	}

	return fmt.Sprintf("invalid use of the '%s' prefix expected the format '%s${%s_NAME}/${PATH}'",
		e.prefix, e.prefix, medium)
}

// ObjectURL represents the location of an object (eg s3://bucket/path/to/file.txt).
type ObjectURL struct {
	// Provider is the provider named by the location, 'objval.ProviderNone' for 'objectstore://' and HTTP locations.
	Provider objval.Provider
	Bucket   string
	Key      string
}

func (u *ObjectURL) String() string {
	return fmt.Sprintf("%s%s/%s", u.Provider.ToScheme(), u.Bucket, u.Key)
}

// cleanKey joins the given path segments into an object key, removing any leading separators. Object keys are literal,
// so duplicate separators and dot segments within the key are preserved.
func cleanKey(segments ...string) string {
	return strings.TrimLeft(strings.Join(segments, "/"), "/")
}

// isPathStyleHost returns a boolean indicating whether the bucket is the first segment of the path rather than the
// first label of the host.
func isPathStyleHost(host string) bool {
	if !strings.Contains(host, ".") || net.ParseIP(host) != nil {
		return true
	}

	host = strings.ToLower(host)

	switch {
	case host == "storage.googleapis.com":
		return true
	case strings.HasSuffix(host, ".blob.core.windows.net"):
		// The first label is the storage account, the container is always in the path
		return true
	case strings.HasSuffix(host, ".amazonaws.com"):
		return strings.HasPrefix(host, "s3.") || strings.HasPrefix(host, "s3-")
	}

	return false
}

// parseSchemeURL parses the remainder of a location following the given prefix into an ObjectURL, making sure the
// prefix is a supported scheme.
func parseSchemeURL(remainder, prefix string) (*ObjectURL, error) {
	var provider objval.Provider

	switch prefix {
	case "objectstore://":
		provider = objval.ProviderNone
	case "az://":
		provider = objval.ProviderAzure
	case "gs://":
		provider = objval.ProviderGCP
	case "s3://":
		provider = objval.ProviderAWS
	default:
		return nil, fmt.Errorf("location prefix '%s' is not supported, expected [%s]", prefix,
			strings.Join(supported, ", "))
	}

	split := strings.Split(remainder, "/")
	if split[0] == "" {
		return nil, &ErrInvalidObjectPath{prefix: prefix}
	}

	return &ObjectURL{Provider: provider, Bucket: split[0], Key: cleanKey(split[1:]...)}, nil
}

// parseHTTPURL parses a virtual-hosted style URL where the bucket is the first label of the host. Hosts which aren't
// dotted names (e.g. 'localhost:9000' or an IP address) and the service endpoints themselves (e.g. 's3.amazonaws.com')
// are path-style, where the bucket is the first segment of the path.
func parseHTTPURL(argument, prefix string) (*ObjectURL, error) {
	parsed, err := url.Parse(argument)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	host := parsed.Hostname()
	if host == "" {
		return nil, &ErrInvalidObjectPath{prefix: prefix}
	}

	if !isPathStyleHost(host) {
		bucket, _, _ := strings.Cut(host, ".")
		if bucket == "" {
			return nil, &ErrInvalidObjectPath{prefix: prefix}
		}

		return &ObjectURL{Bucket: bucket, Key: cleanKey(parsed.Path)}, nil
	}

	split := strings.Split(strings.TrimLeft(parsed.Path, "/"), "/")
	if split[0] == "" {
		return nil, &ErrInvalidObjectPath{prefix: prefix}
	}

	return &ObjectURL{Bucket: split[0], Key: cleanKey(split[1:]...)}, nil
}

// ParseObjectURL parses a location into the bucket/key pair it addresses. Both virtual-hosted HTTP style URLs
// ('http://bucket.host/key') and scheme style URLs ('objectstore://bucket/key', 's3://bucket/key' etc.) are accepted.
func ParseObjectURL(argument string) (*ObjectURL, error) {
	idx := strings.Index(argument, "://")
	if idx <= 0 {
		return nil, fmt.Errorf("location '%s' has no scheme, expected one of [%s]", argument,
			strings.Join(supported, ", "))
	}

	prefix := strings.ToLower(argument[:idx+len("://")])

	if prefix == "http://" || prefix == "https://" {
		return parseHTTPURL(argument, prefix)
	}

	return parseSchemeURL(argument[len(prefix):], prefix)
}
