package objcli

// Op identifies a 'Client' operation, used when recording metrics and when injecting failures in tests.
type Op string

const (
	OpBucketExists Op = "bucket_exists"
	OpCreateBucket Op = "create_bucket"
	OpGetObject    Op = "get_object"
	OpPutObject    Op = "put_object"
)
