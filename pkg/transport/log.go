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
	"time"

	"github.com/go-logr/logr"
)

type logRoundTripper struct {
	transport http.RoundTripper
}

// Log records every request and its outcome with the logger found in the
// request context.
func Log(next http.RoundTripper) http.RoundTripper {
	return logRoundTripper{
		transport: next,
	}
}

func (rt logRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	log := logr.FromContextOrDiscard(req.Context()).WithValues(
		"method", req.Method,
		"path", req.URL.Path,
		"traceID", TraceID(req),
	)

	start := time.Now()

	resp, err := rt.transport.RoundTrip(req)
	if err != nil {
		log.Error(err, "request failed", "duration", time.Since(start))

		return nil, err
	}

	log.Info("request complete", "status", resp.StatusCode, "duration", time.Since(start))

	return resp, nil
}
