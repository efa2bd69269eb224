/*
Copyright 2024-2025 the Unikorn Authors.

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

//nolint:err113,revive // dynamic errors and naming conventions acceptable in test code
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
	oauth "github.com/mastercard/oauth1-signer-go"
	"github.com/onsi/ginkgo/v2"

	cenclient "github.com/unikorn-cloud/notifications/pkg/client"
	"github.com/unikorn-cloud/notifications/pkg/notifications"
	"github.com/unikorn-cloud/notifications/pkg/transport"
)

// NewNotificationsClient returns the client most scenarios use.  Requests are
// logged to the Ginkgo writer when LOG_REQUESTS is set.
func NewNotificationsClient(ctx context.Context, config *TestConfig) (*notifications.Client, error) {
	options := *config.Client
	options.LogRequests = options.LogRequests || config.LogRequests

	api, err := cenclient.New(logr.NewContext(ctx, ginkgo.GinkgoLogr), &options)
	if err != nil {
		return nil, err
	}

	return notifications.New(api), nil
}

// APIClient is a raw HTTP client that shares only request signing with the
// generated client.
type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
}

func NewAPIClientWithConfig(config *TestConfig) (*APIClient, error) {
	key, err := cenclient.LoadKey(config.Client)
	if err != nil {
		return nil, err
	}

	signer := &oauth.Signer{
		ConsumerKey: config.Client.ConsumerKey,
		SigningKey:  key,
	}

	return newAPIClient(config, signer), nil
}

// common constructor logic.
func newAPIClient(config *TestConfig, signer transport.Signer) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(config.Client.BaseURL, "/"),
		client: &http.Client{
			Timeout:   config.Client.RequestTimeout,
			Transport: transport.Chain(nil, transport.ForceJSON, transport.Sign(signer)),
		},
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, expectedStatus int) (*http.Response, []byte, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := transport.NewTraceParent()
	req.Header.Set(transport.TraceParentHeader, traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceParent, err, "reading response body")
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)
		return resp, respBody, fmt.Errorf("unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", expectedStatus, resp.StatusCode, string(respBody), extractTraceID(traceParent))
	}

	return resp, respBody, nil
}

// GetSubscription reads a subscription as untyped JSON.
func (c *APIClient) GetSubscription(ctx context.Context, id string) (map[string]interface{}, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Subscription(id), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	var subscription map[string]interface{}
	if err := json.Unmarshal(respBody, &subscription); err != nil {
		return nil, fmt.Errorf("unmarshaling subscription response: %w", err)
	}

	return subscription, nil
}

// ListSubscriptions lists a page of subscriptions as untyped JSON.
func (c *APIClient) ListSubscriptions(ctx context.Context, query url.Values) ([]map[string]interface{}, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Subscriptions(query), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	var subscriptions []map[string]interface{}
	if err := json.Unmarshal(respBody, &subscriptions); err != nil {
		return nil, fmt.Errorf("unmarshaling subscriptions response: %w", err)
	}

	return subscriptions, nil
}

// SubscriptionStatus returns the status code of reading a subscription.
func (c *APIClient) SubscriptionStatus(ctx context.Context, id string) (int, error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, _, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Subscription(id), nil, 0)
	if err != nil {
		return 0, fmt.Errorf("getting subscription: %w", err)
	}

	return resp.StatusCode, nil
}

// ListNotifications lists notifications as untyped JSON.
func (c *APIClient) ListNotifications(ctx context.Context, query url.Values) (map[string]interface{}, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Notifications(query), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	var wrapper map[string]interface{}
	if err := json.Unmarshal(respBody, &wrapper); err != nil {
		return nil, fmt.Errorf("unmarshaling notifications response: %w", err)
	}

	return wrapper, nil
}

// ListFieldMappings lists the field mapping catalog as untyped JSON.
func (c *APIClient) ListFieldMappings(ctx context.Context) ([]map[string]interface{}, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.FieldMappings(), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing field mappings: %w", err)
	}

	var fieldMappings []map[string]interface{}
	if err := json.Unmarshal(respBody, &fieldMappings); err != nil {
		return nil, fmt.Errorf("unmarshaling field mappings response: %w", err)
	}

	return fieldMappings, nil
}

func (c *APIClient) DeleteSubscription(ctx context.Context, id string) error {
	//nolint:bodyclose // response body is closed in doRequest
	_, _, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.Subscription(id), nil, http.StatusNoContent)
	if err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}

	return nil
}
