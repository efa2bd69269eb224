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
	"net/http"
)

const (
	// FormatParameter makes the service emit JSON rather than XML.
	FormatParameter = "Format=JSON"
)

type forceJSONRoundTripper struct {
	transport http.RoundTripper
}

// ForceJSON appends Format=JSON to every request's query string, leaving any
// existing parameters untouched.
func ForceJSON(next http.RoundTripper) http.RoundTripper {
	return forceJSONRoundTripper{
		transport: next,
	}
}

func (rt forceJSONRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	if r.URL.RawQuery == "" {
		r.URL.RawQuery = FormatParameter
	} else {
		r.URL.RawQuery += "&" + FormatParameter
	}

	return rt.transport.RoundTrip(r)
}
