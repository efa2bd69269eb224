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

package notifications

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/unikorn-cloud/notifications/pkg/openapi"
	"github.com/unikorn-cloud/notifications/pkg/transport"
)

var (
	// ErrUnexpectedStatus is raised for any response other than the expected success.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrNotFound is raised when the service responds 404.
	ErrNotFound = errors.New("resource not found")

	// ErrMalformedResponse is raised when a success response has no usable body.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidWindow is raised when a start date follows the end date.
	ErrInvalidWindow = errors.New("start date is after end date")

	// ErrUnknownSubject is raised when content cannot be decoded because the
	// subject is not recognised.  It is not a decode failure.
	ErrUnknownSubject = errors.New("unknown notification subject")

	// ErrContentDecode is raised when content does not match the shape its
	// subject demands.
	ErrContentDecode = errors.New("failed to decode notification content")
)

// APIError is returned for any unexpected response from the service.
type APIError struct {
	// StatusCode is the HTTP status returned.
	StatusCode int
	// Descriptions are any errors reported by the service.
	Descriptions []string
	// TraceID correlates the failure with server logs.
	TraceID string
	// Body is the raw response.
	Body []byte
}

func (e *APIError) Error() string {
	message := fmt.Sprintf("%s: %d", ErrUnexpectedStatus, e.StatusCode)

	if len(e.Descriptions) > 0 {
		message += " (" + strings.Join(e.Descriptions, "; ") + ")"
	}

	if e.TraceID != "" {
		message += " trace " + e.TraceID
	}

	return message
}

func (e *APIError) Is(target error) bool {
	switch {
	case errors.Is(target, ErrUnexpectedStatus):
		return true
	case errors.Is(target, ErrNotFound):
		return e.StatusCode == http.StatusNotFound
	}

	return false
}

// extractError turns an unexpected response into an *APIError.
func extractError(resp *http.Response, body []byte) error {
	apiError := &APIError{
		Body: body,
	}

	if resp != nil {
		apiError.StatusCode = resp.StatusCode
		apiError.TraceID = transport.TraceID(resp.Request)
	}

	var errs openapi.Errors

	if err := json.Unmarshal(body, &errs); err == nil && errs.Errors != nil && errs.Errors.Error != nil {
		for _, e := range *errs.Errors.Error {
			apiError.Descriptions = append(apiError.Descriptions, describe(e))
		}
	}

	return apiError
}

func describe(e openapi.Error) string {
	var parts []string

	if e.ReasonCode != nil {
		parts = append(parts, *e.ReasonCode)
	}

	if e.Description != nil {
		parts = append(parts, *e.Description)
	}

	if e.Details != nil && *e.Details != "" {
		parts = append(parts, *e.Details)
	}

	return strings.Join(parts, ": ")
}
