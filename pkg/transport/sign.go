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
	"bytes"
	"fmt"
	"io"
	"net/http"
)

//go:generate go tool mockgen -source=sign.go -destination=mock/signer.go -package=mock

// Signer adds an authorization header to a request.  It is satisfied by
// *oauth.Signer from github.com/mastercard/oauth1-signer-go.
type Signer interface {
	Sign(req *http.Request) error
}

type signRoundTripper struct {
	transport http.RoundTripper
	signer    Signer
}

// Sign authorizes every request with the signer.  It should be the last layer
// before the network so that the signature covers the final URL.
func Sign(signer Signer) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return signRoundTripper{
			transport: next,
			signer:    signer,
		}
	}
}

func (rt signRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	// The signer hashes the body through GetBody.
	if r.Body != nil && r.GetBody == nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}

		_ = r.Body.Close()

		r.Body = io.NopCloser(bytes.NewReader(body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
	}

	if err := rt.signer.Sign(r); err != nil {
		return nil, fmt.Errorf("signing request: %w", err)
	}

	return rt.transport.RoundTrip(r)
}
