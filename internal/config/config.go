// Package config loads the configuration used by the 'objfile' command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/couchbase/tools-objfile/core/log"
	"github.com/couchbase/tools-objfile/environment/envvar"
	"github.com/couchbase/tools-objfile/objstore/objval"
)

// Config holds the configuration for the 'objfile' command.
//
// YAML example:
//
//	provider: aws
//	region: eu-west-2
//	endpoint: http://localhost:9000
//	pathStyle: true
//	accessKey: minio
//	secretKey: minio123
//	rateLimit: 1048576
//	maxRetries: 3
//	timeout: 30s
//	logLevel: debug
//
// Environment overrides (applied after the file):
//
//	OBJFILE_PROVIDER, OBJFILE_REGION, OBJFILE_ENDPOINT, OBJFILE_PATH_STYLE, OBJFILE_ACCESS_KEY, OBJFILE_SECRET_KEY,
//	OBJFILE_GCP_PROJECT, OBJFILE_GCP_CREDENTIALS_FILE, OBJFILE_AZURE_ACCOUNT_URL, OBJFILE_RATE_LIMIT,
//	OBJFILE_MAX_RETRIES, OBJFILE_TIMEOUT, OBJFILE_LOG_LEVEL, OBJFILE_METRICS
type Config struct {
	// Provider is one of 'aws', 'gcp' or 'azure'.
	Provider string `yaml:"provider"`

	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PathStyle bool   `yaml:"pathStyle"`

	// AccessKey/SecretKey are static credentials; for Azure they're the storage account name and key. When empty the
	// provider's default credential chain is used.
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`

	GCP   GCPConfig   `yaml:"gcp"`
	Azure AzureConfig `yaml:"azure"`

	// RateLimit is the maximum number of bytes per second transferred, zero means unlimited.
	RateLimit uint64 `yaml:"rateLimit"`

	// MaxRetries is the number of times an operation failing with a transient error is retried, zero disables retries.
	MaxRetries int `yaml:"maxRetries"`

	// Timeout is applied to each command, zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`

	LogLevel string `yaml:"logLevel"`

	// Metrics logs the client metrics once a command completes.
	Metrics bool `yaml:"metrics"`
}

// GCPConfig contains the Google Cloud Storage specific configuration.
type GCPConfig struct {
	Project         string `yaml:"project"`
	CredentialsFile string `yaml:"credentialsFile"`
}

// AzureConfig contains the Azure Blob Storage specific configuration.
type AzureConfig struct {
	// AccountURL is the blob service URL e.g. 'https://account.blob.core.windows.net/'.
	AccountURL string `yaml:"accountURL"`
}

// Default returns a Config with the default values.
func Default() Config {
	return Config{
		Provider: "aws",
		Region:   "us-east-1",
		LogLevel: "info",
	}
}

// Load reads the configuration from the file at path, falling back to 'OBJFILE_CONFIG' when path is empty. A missing
// file is not an error, the defaults are used. Environment overrides are applied and the result is validated.
func Load(path string) (Config, error) {
	if path == "" {
		path, _ = envvar.GetString("OBJFILE_CONFIG")
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}

		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	strs := map[string]*string{
		"OBJFILE_PROVIDER":             &c.Provider,
		"OBJFILE_REGION":               &c.Region,
		"OBJFILE_ENDPOINT":             &c.Endpoint,
		"OBJFILE_ACCESS_KEY":           &c.AccessKey,
		"OBJFILE_SECRET_KEY":           &c.SecretKey,
		"OBJFILE_GCP_PROJECT":          &c.GCP.Project,
		"OBJFILE_GCP_CREDENTIALS_FILE": &c.GCP.CredentialsFile,
		"OBJFILE_AZURE_ACCOUNT_URL":    &c.Azure.AccountURL,
		"OBJFILE_LOG_LEVEL":            &c.LogLevel,
	}

	for name, field := range strs {
		if v, ok := envvar.GetString(name); ok {
			*field = v
		}
	}

	if v, ok := envvar.GetBool("OBJFILE_PATH_STYLE"); ok {
		c.PathStyle = v
	}

	if v, ok := envvar.GetUint64("OBJFILE_RATE_LIMIT"); ok {
		c.RateLimit = v
	}

	if v, ok := envvar.GetInt("OBJFILE_MAX_RETRIES"); ok {
		c.MaxRetries = v
	}

	if v, ok := envvar.GetDuration("OBJFILE_TIMEOUT"); ok {
		c.Timeout = v
	}

	if v, ok := envvar.GetBool("OBJFILE_METRICS"); ok {
		c.Metrics = v
	}
}

// Validate returns an error describing the first invalid value in the configuration.
func (c *Config) Validate() error {
	provider, err := c.ObjectProvider()
	if err != nil {
		return err
	}

	if provider == objval.ProviderAzure && c.Azure.AccountURL == "" {
		return errors.New("an account URL is required when using the 'azure' provider")
	}

	if (c.AccessKey == "") != (c.SecretKey == "") {
		return errors.New("both an access key and a secret key must be provided, or neither")
	}

	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must not be negative, got %d", c.MaxRetries)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ObjectProvider returns the provider named by the configuration.
func (c *Config) ObjectProvider() (objval.Provider, error) {
	switch strings.ToLower(c.Provider) {
	case "aws", "s3":
		return objval.ProviderAWS, nil
	case "gcp", "gs":
		return objval.ProviderGCP, nil
	case "azure", "az":
		return objval.ProviderAzure, nil
	}

	return objval.ProviderNone, fmt.Errorf("unknown provider '%s', expected one of [aws, gcp, azure]", c.Provider)
}
