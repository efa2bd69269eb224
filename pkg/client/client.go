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

// Package client builds an authenticated API client.
package client

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"github.com/go-logr/logr"
	oauth "github.com/mastercard/oauth1-signer-go"

	"github.com/unikorn-cloud/notifications/pkg/constants"
	"github.com/unikorn-cloud/notifications/pkg/openapi"
	"github.com/unikorn-cloud/notifications/pkg/signing"
	"github.com/unikorn-cloud/notifications/pkg/transport"
)

type config struct {
	transport http.RoundTripper
}

// Option customizes client construction.
type Option func(*config)

// WithTransport replaces the network transport underneath the middleware.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *config) {
		c.transport = rt
	}
}

// New loads the signing key and returns a client whose every request is
// signed.  Failure to load the key is fatal.
func New(ctx context.Context, options *Options, opts ...Option) (*openapi.ClientWithResponses, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	key, err := LoadKey(options)
	if err != nil {
		return nil, err
	}

	return NewWithKey(ctx, options, key, opts...)
}

// LoadKey loads the configured signing key, PEM files are recognised by suffix.
func LoadKey(options *Options) (*rsa.PrivateKey, error) {
	if strings.HasSuffix(options.SigningKeyPath, ".pem") {
		return signing.LoadSigningKeyFromPEM(options.SigningKeyPath)
	}

	return signing.LoadSigningKey(options.SigningKeyPath, options.SigningKeyAlias, options.SigningKeyPassword)
}

// NewWithKey returns a client that signs with an already loaded key.
func NewWithKey(ctx context.Context, options *Options, key *rsa.PrivateKey, opts ...Option) (*openapi.ClientWithResponses, error) {
	err := validateRequiredFields(map[string]string{
		EnvBaseURL:     options.BaseURL,
		EnvConsumerKey: options.ConsumerKey,
	})
	if err != nil {
		return nil, err
	}

	signer := &oauth.Signer{
		ConsumerKey: options.ConsumerKey,
		SigningKey:  key,
	}

	return NewWithSigner(ctx, options, signer, opts...)
}

// NewWithSigner returns a client that authorizes requests with any signer.
func NewWithSigner(ctx context.Context, options *Options, signer transport.Signer, opts ...Option) (*openapi.ClientWithResponses, error) {
	c := &config{}

	for _, o := range opts {
		o(c)
	}

	middleware := []transport.Middleware{
		transport.UserAgent(constants.VersionString()),
		transport.Trace,
	}

	if options.LogRequests {
		middleware = append(middleware, transport.Log)
	}

	if options.ValidateResponses {
		doc, err := openapi.GetSwagger()
		if err != nil {
			return nil, err
		}

		validate, err := transport.Validate(doc, options.BaseURL)
		if err != nil {
			return nil, err
		}

		middleware = append(middleware, validate)
	}

	// Formatting must precede signing.
	middleware = append(middleware, transport.ForceJSON, transport.Sign(signer))

	httpClient := &http.Client{
		Timeout:   options.RequestTimeout,
		Transport: transport.Chain(c.transport, middleware...),
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("api client configured", "baseURL", options.BaseURL, "validate", options.ValidateResponses)

	return openapi.NewClientWithResponses(options.BaseURL, openapi.WithHTTPClient(httpClient))
}
