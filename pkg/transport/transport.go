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

// Package transport provides the http.RoundTripper layers every API request
// passes through.
package transport

import (
	"net/http"
)

// Middleware wraps a transport in another.
type Middleware func(next http.RoundTripper) http.RoundTripper

// Chain composes middleware so the first listed is the first to see a request.
func Chain(base http.RoundTripper, middleware ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	for i := len(middleware) - 1; i >= 0; i-- {
		base = middleware[i](base)
	}

	return base
}
