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

package transport_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/unikorn-cloud/notifications/pkg/openapi"
	"github.com/unikorn-cloud/notifications/pkg/transport"
	"github.com/unikorn-cloud/notifications/pkg/transport/mock"
)

var errSign = errors.New("sign failure")

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// capture records the last request and replies with the given status and body.
type capture struct {
	request     *http.Request
	status      int
	contentType string
	body        string
}

func (c *capture) RoundTrip(req *http.Request) (*http.Response, error) {
	c.request = req

	status := c.status
	if status == 0 {
		status = http.StatusOK
	}

	header := http.Header{}

	if c.contentType != "" {
		header.Set("Content-Type", c.contentType)
	}

	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(c.body)),
		Request:    req,
	}, nil
}

func do(t *testing.T, rt http.RoundTripper, method, url string, body io.Reader) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), method, url, body)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

// TestForceJSONNoQuery tests the parameter is added as the only query.
func TestForceJSONNoQuery(t *testing.T) {
	t.Parallel()

	c := &capture{}

	do(t, transport.ForceJSON(c), http.MethodGet, "https://example.com/base/fieldmappings", nil)
	require.Equal(t, "https://example.com/base/fieldmappings?Format=JSON", c.request.URL.String())
}

// TestForceJSONExistingQuery tests existing parameters are preserved verbatim.
func TestForceJSONExistingQuery(t *testing.T) {
	t.Parallel()

	c := &capture{}

	do(t, transport.ForceJSON(c), http.MethodGet, "https://example.com/subscriptions?offset=1&limit=5&sort=name", nil)
	require.Equal(t, "offset=1&limit=5&sort=name&Format=JSON", c.request.URL.RawQuery)
}

// TestForceJSONDoesNotMutate tests the caller's request is left alone.
func TestForceJSONDoesNotMutate(t *testing.T) {
	t.Parallel()

	c := &capture{}

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "https://example.com/subscriptions?sort=name", nil)
	require.NoError(t, err)

	resp, err := transport.ForceJSON(c).RoundTrip(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	require.Equal(t, "sort=name", req.URL.RawQuery)
}

// TestSignSeesFinalURL tests the signer is handed the URL after the format
// parameter has been added.
func TestSignSeesFinalURL(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	signer := mock.NewMockSigner(ctrl)
	signer.EXPECT().Sign(gomock.Any()).DoAndReturn(func(req *http.Request) error {
		require.Equal(t, "sort=name&Format=JSON", req.URL.RawQuery)

		req.Header.Set("Authorization", "OAuth test")

		return nil
	})

	c := &capture{}

	rt := transport.Chain(c, transport.ForceJSON, transport.Sign(signer))

	do(t, rt, http.MethodGet, "https://example.com/subscriptions?sort=name", nil)
	require.Equal(t, "OAuth test", c.request.Header.Get("Authorization"))
}

// TestSignBody tests the signer can always re-read the request body.
func TestSignBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	signer := mock.NewMockSigner(ctrl)
	signer.EXPECT().Sign(gomock.Any()).DoAndReturn(func(req *http.Request) error {
		require.NotNil(t, req.GetBody)

		body, err := req.GetBody()
		require.NoError(t, err)

		data, err := io.ReadAll(body)
		require.NoError(t, err)
		require.JSONEq(t, `{"name":"foo"}`, string(data))

		return nil
	})

	c := &capture{}

	// A reader the http package cannot snapshot leaves GetBody unset.
	body := io.MultiReader(strings.NewReader(`{"name":"foo"}`))

	do(t, transport.Sign(signer)(c), http.MethodPost, "https://example.com/subscriptions", body)

	data, err := io.ReadAll(c.request.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"foo"}`, string(data))
}

// TestSignError tests a signing failure aborts the request.
func TestSignError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	signer := mock.NewMockSigner(ctrl)
	signer.EXPECT().Sign(gomock.Any()).Return(errSign)

	rt := transport.Sign(signer)(roundTripperFunc(func(*http.Request) (*http.Response, error) {
		t.Fatal("request should not be sent")

		return nil, nil
	}))

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "https://example.com/fieldmappings", nil)
	require.NoError(t, err)

	//nolint:bodyclose
	_, err = rt.RoundTrip(req)
	require.ErrorIs(t, err, errSign)
}

// TestTrace tests a traceparent is added and can be extracted.
func TestTrace(t *testing.T) {
	t.Parallel()

	c := &capture{}

	do(t, transport.Trace(c), http.MethodGet, "https://example.com/fieldmappings", nil)

	traceParent := c.request.Header.Get(transport.TraceParentHeader)
	require.Regexp(t, "^00-[0-9a-f]{32}-[0-9a-f]{16}-01$", traceParent)
	require.Len(t, transport.TraceID(c.request), 32)
}

// TestTracePreserved tests an existing traceparent is not replaced.
func TestTracePreserved(t *testing.T) {
	t.Parallel()

	c := &capture{}

	traceParent := transport.NewTraceParent()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "https://example.com/fieldmappings", nil)
	require.NoError(t, err)

	req.Header.Set(transport.TraceParentHeader, traceParent)

	resp, err := transport.Trace(c).RoundTrip(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	require.Equal(t, traceParent, c.request.Header.Get(transport.TraceParentHeader))
}

// TestUserAgent tests the user agent is set.
func TestUserAgent(t *testing.T) {
	t.Parallel()

	c := &capture{}

	do(t, transport.UserAgent("cen/0.0.0")(c), http.MethodGet, "https://example.com/fieldmappings", nil)
	require.Equal(t, "cen/0.0.0", c.request.Header.Get("User-Agent"))
}

// TestLog tests requests are logged through the context logger.
func TestLog(t *testing.T) {
	t.Parallel()

	var lines []string

	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	ctx := logr.NewContext(context.Background(), logger)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://example.com/fieldmappings", nil)
	require.NoError(t, err)

	resp, err := transport.Log(&capture{status: http.StatusNoContent}).RoundTrip(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	require.Len(t, lines, 1)
	require.Contains(t, lines[0], `"path"="/fieldmappings"`)
	require.Contains(t, lines[0], `"status"=204`)
}

// TestChainHTTP tests the chain against a real server.
func TestChainHTTP(t *testing.T) {
	t.Parallel()

	var query string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery

		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	rt := transport.Chain(nil, transport.Trace, transport.Log, transport.ForceJSON)

	resp := do(t, rt, http.MethodDelete, server.URL+"/subscriptions/foo", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "Format=JSON", query)
}

func validator(t *testing.T, c *capture) http.RoundTripper {
	t.Helper()

	doc, err := openapi.GetSwagger()
	require.NoError(t, err)

	validate, err := transport.Validate(doc, "https://example.com/base/")
	require.NoError(t, err)

	return validate(c)
}

// TestValidateConforming tests a conforming response is passed through intact.
func TestValidateConforming(t *testing.T) {
	t.Parallel()

	c := &capture{
		contentType: "application/json",
		body:        `[{"name":"messageTypeIndicator","displayName":"Message type indicator","subjectType":"PAYMENT_AUTHORIZATION","contentType":"TEXT"}]`,
	}

	resp := do(t, validator(t, c), http.MethodGet, "https://example.com/base/fieldmappings", nil)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, c.body, string(data))
}

// TestValidateNoContent tests a bodiless delete response conforms.
func TestValidateNoContent(t *testing.T) {
	t.Parallel()

	c := &capture{
		status: http.StatusNoContent,
	}

	resp := do(t, validator(t, c), http.MethodDelete, "https://example.com/base/subscriptions/foo", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// TestValidateViolation tests a response missing a required field is rejected.
func TestValidateViolation(t *testing.T) {
	t.Parallel()

	c := &capture{
		contentType: "application/json",
		body:        `[{"displayName":"Message type indicator"}]`,
	}

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "https://example.com/base/fieldmappings", nil)
	require.NoError(t, err)

	//nolint:bodyclose
	_, err = validator(t, c).RoundTrip(req)
	require.ErrorIs(t, err, transport.ErrContractViolation)

	var contractError *transport.ContractError

	require.ErrorAs(t, err, &contractError)
	require.Equal(t, http.StatusOK, contractError.Status)
	require.Equal(t, "/base/fieldmappings", contractError.Path)
}

// TestValidateUnknownRoute tests requests outside the document are rejected.
func TestValidateUnknownRoute(t *testing.T) {
	t.Parallel()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "https://example.com/base/unknown", nil)
	require.NoError(t, err)

	//nolint:bodyclose
	_, err = validator(t, &capture{}).RoundTrip(req)
	require.ErrorIs(t, err, transport.ErrContractViolation)
}
