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

package transport

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
)

const (
	// TraceParentHeader is the W3C trace context header.
	TraceParentHeader = "Traceparent"
)

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// NewTraceParent creates a W3C traceparent header value.
func NewTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// TraceID extracts the trace ID from a request's traceparent header, so
// failures can be correlated with server side logs.
func TraceID(req *http.Request) string {
	if req == nil {
		return ""
	}

	traceParent := req.Header.Get(TraceParentHeader)

	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

type traceRoundTripper struct {
	transport http.RoundTripper
}

// Trace adds a traceparent header to requests that do not already have one.
func Trace(next http.RoundTripper) http.RoundTripper {
	return traceRoundTripper{
		transport: next,
	}
}

func (rt traceRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(TraceParentHeader) != "" {
		return rt.transport.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	r.Header.Set(TraceParentHeader, NewTraceParent())

	return rt.transport.RoundTrip(r)
}

type userAgentRoundTripper struct {
	transport http.RoundTripper
	userAgent string
}

// UserAgent sets the user agent on every request.
func UserAgent(userAgent string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return userAgentRoundTripper{
			transport: next,
			userAgent: userAgent,
		}
	}
}

func (rt userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", rt.userAgent)

	return rt.transport.RoundTrip(r)
}
