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
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

var (
	// ErrContractViolation is raised when a response does not match the API document.
	ErrContractViolation = errors.New("response violates API contract")
)

// ContractError describes a response that failed validation.
type ContractError struct {
	Method  string
	Path    string
	Status  int
	TraceID string
	Err     error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s %s returned %d (trace %s): %v", ErrContractViolation, e.Method, e.Path, e.Status, e.TraceID, e.Err)
}

func (e *ContractError) Unwrap() []error {
	return []error{ErrContractViolation, e.Err}
}

type validateRoundTripper struct {
	transport http.RoundTripper
	router    routers.Router
}

// Validate checks every response against the API document.  Servers in the
// document are replaced by baseURL so routes resolve against the endpoint in
// use.
func Validate(doc *openapi3.T, baseURL string) (Middleware, error) {
	doc.Servers = openapi3.Servers{
		&openapi3.Server{
			URL: strings.TrimSuffix(baseURL, "/"),
		},
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	middleware := func(next http.RoundTripper) http.RoundTripper {
		return validateRoundTripper{
			transport: next,
			router:    router,
		}
	}

	return middleware, nil
}

func (rt validateRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := rt.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	contractError := func(err error) error {
		return &ContractError{
			Method:  req.Method,
			Path:    req.URL.Path,
			Status:  resp.StatusCode,
			TraceID: TraceID(req),
			Err:     err,
		}
	}

	route, pathParams, err := rt.router.FindRoute(req)
	if err != nil {
		_ = resp.Body.Close()

		return nil, contractError(err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if err != nil {
		return nil, err
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Options: &openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
	}

	input.SetBodyBytes(body)

	if err := openapi3filter.ValidateResponse(req.Context(), input); err != nil {
		return nil, contractError(err)
	}

	return resp, nil
}
