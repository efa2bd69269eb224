/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package client

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

var (
	// ErrMissingConfiguration is raised when required options are unset.
	ErrMissingConfiguration = errors.New("missing required configuration")
)

const (
	// DefaultBaseURL is the sandbox endpoint.
	DefaultBaseURL = "https://sandbox.api.mastercard.com/commercial-event-notifications"

	// DefaultRequestTimeout bounds each individual request.
	DefaultRequestTimeout = 30 * time.Second

	EnvBaseURL            = "CEN_BASE_URL"
	EnvConsumerKey        = "CEN_CONSUMER_KEY"
	EnvSigningKeyPath     = "CEN_SIGNING_KEY_PATH"
	EnvSigningKeyAlias    = "CEN_SIGNING_KEY_ALIAS"
	EnvSigningKeyPassword = "CEN_SIGNING_KEY_PASSWORD"
	EnvRequestTimeout     = "CEN_REQUEST_TIMEOUT"
	EnvValidateResponses  = "CEN_VALIDATE_RESPONSES"
	EnvLogRequests        = "CEN_LOG_REQUESTS"
)

// Options describe how to reach and authenticate with the API.
type Options struct {
	// BaseURL is the API endpoint including the base path.
	BaseURL string
	// ConsumerKey identifies the caller to the OAuth1 scheme.
	ConsumerKey string
	// SigningKeyPath is a PKCS#12 keystore, or a PEM file with a .pem suffix.
	SigningKeyPath string
	// SigningKeyAlias selects the key within the keystore.
	SigningKeyAlias string
	// SigningKeyPassword unlocks the keystore.
	SigningKeyPassword string
	// RequestTimeout bounds each request.
	RequestTimeout time.Duration
	// ValidateResponses checks every response against the API document.
	ValidateResponses bool
	// LogRequests logs every request with the context logger.
	LogRequests bool
}

// NewOptions returns options with built in defaults.
func NewOptions() *Options {
	return &Options{
		BaseURL:        DefaultBaseURL,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// LoadEnvFile loads the first .env file found into the process environment.
// Variables already set take precedence.  Missing files are not an error.
func LoadEnvFile(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}

		return nil
	}

	return nil
}

// ApplyEnvironment overrides options with any set environment variables.
func (o *Options) ApplyEnvironment() {
	setString := func(key string, value *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*value = v
		}
	}

	setString(EnvBaseURL, &o.BaseURL)
	setString(EnvConsumerKey, &o.ConsumerKey)
	setString(EnvSigningKeyPath, &o.SigningKeyPath)
	setString(EnvSigningKeyAlias, &o.SigningKeyAlias)
	setString(EnvSigningKeyPassword, &o.SigningKeyPassword)

	o.RequestTimeout = GetDurationWithDefault(EnvRequestTimeout, o.RequestTimeout)
	o.ValidateResponses = GetBoolWithDefault(EnvValidateResponses, o.ValidateResponses)
	o.LogRequests = GetBoolWithDefault(EnvLogRequests, o.LogRequests)
}

// AddFlags registers flags for every option, defaulting to the current values.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "base-url", o.BaseURL, "API endpoint including base path.")
	f.StringVar(&o.ConsumerKey, "consumer-key", o.ConsumerKey, "OAuth1 consumer key.")
	f.StringVar(&o.SigningKeyPath, "signing-key-path", o.SigningKeyPath, "PKCS#12 keystore holding the signing key.")
	f.StringVar(&o.SigningKeyAlias, "signing-key-alias", o.SigningKeyAlias, "Alias of the signing key within the keystore.")
	f.StringVar(&o.SigningKeyPassword, "signing-key-password", o.SigningKeyPassword, "Keystore password.")
	f.DurationVar(&o.RequestTimeout, "request-timeout", o.RequestTimeout, "Timeout for each request.")
	f.BoolVar(&o.ValidateResponses, "validate-responses", o.ValidateResponses, "Validate responses against the API document.")
	f.BoolVar(&o.LogRequests, "log-requests", o.LogRequests, "Log every request.")
}

// Validate checks that everything needed to sign requests is set.
func (o *Options) Validate() error {
	return validateRequiredFields(map[string]string{
		EnvBaseURL:            o.BaseURL,
		EnvConsumerKey:        o.ConsumerKey,
		EnvSigningKeyPath:     o.SigningKeyPath,
		EnvSigningKeyAlias:    o.SigningKeyAlias,
		EnvSigningKeyPassword: o.SigningKeyPassword,
	})
}

// validateRequiredFields reports every unset value in one error.
func validateRequiredFields(required map[string]string) error {
	var missing []string

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return fmt.Errorf("%w: %s", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}

// GetDurationWithDefault gets a duration from environment variable or returns
// default, also when the value does not parse.
func GetDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// GetBoolWithDefault gets a boolean from environment variable or returns
// default, also when the value does not parse.
func GetBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}
