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

package api

import (
	"fmt"
	"net/url"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Subscription endpoints.
func (e *Endpoints) Subscriptions(query url.Values) string {
	if len(query) == 0 {
		return "/subscriptions"
	}

	return "/subscriptions?" + query.Encode()
}

func (e *Endpoints) Subscription(id string) string {
	return fmt.Sprintf("/subscriptions/%s", url.PathEscape(id))
}

// Notification endpoints.
func (e *Endpoints) Notifications(query url.Values) string {
	if len(query) == 0 {
		return "/notifications"
	}

	return "/notifications?" + query.Encode()
}

// Field mapping endpoints.
func (e *Endpoints) FieldMappings() string {
	return "/fieldmappings"
}
