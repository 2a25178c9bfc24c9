package objval

import "fmt"

// Provider represents an object storage provider.
type Provider int

const (
	// ProviderNone means no specific provider was requested e.g. an 'objectstore://' or HTTP style location, whichever
	// client is in use decides where the object lives.
	ProviderNone Provider = iota

	// ProviderAWS is the AWS cloud provider (or any S3 compatible store).
	ProviderAWS

	// ProviderGCP is the Google Cloud Platform cloud provider.
	ProviderGCP

	// ProviderAzure is the Microsoft Azure cloud provider.
	ProviderAzure
)

// String returns a human readable representation of the provider.
func (p Provider) String() string {
	switch p {
	case ProviderNone:
		return ""
	case ProviderAWS:
		return "AWS"
	case ProviderAzure:
		return "Azure"
	case ProviderGCP:
		return "GCP"
	}

	panic(fmt.Sprintf("unknown provider %d", p))
}

// ToScheme converts Provider to a scheme (e.g. s3://).
func (p Provider) ToScheme() string {
	switch p {
	case ProviderNone:
		return "objectstore://"
	case ProviderAWS:
		return "s3://"
	case ProviderAzure:
		return "az://"
	case ProviderGCP:
		return "gs://"
	default:
		panic(fmt.Sprintf("unknown provider %d", p))
	}
}
