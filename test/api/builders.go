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
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/unikorn-cloud/notifications/pkg/notifications"
	"github.com/unikorn-cloud/notifications/pkg/openapi"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(bytes))
}

// SubscriptionBuilder builds subscription requests for testing.
type SubscriptionBuilder struct {
	request *openapi.Subscription
}

// NewSubscriptionPayload creates an active subscription with a name unique to
// this run and no specifications.
func NewSubscriptionPayload(config *TestConfig, subjectType openapi.SubscriptionSubjectType) *SubscriptionBuilder {
	return &SubscriptionBuilder{
		request: notifications.NewSubscription(generateRandomName(config.SubscriptionPrefix), subjectType),
	}
}

// WithActive sets the active flag.
func (b *SubscriptionBuilder) WithActive(active bool) *SubscriptionBuilder {
	b.request.Active = active

	return b
}

// WithSpecification appends a specification.
func (b *SubscriptionBuilder) WithSpecification(specification openapi.SpecificationRequest) *SubscriptionBuilder {
	specifications := append(*b.request.Specifications, specification)
	b.request.Specifications = &specifications

	return b
}

// WithRcnAlias appends the well known RCN alias equality specification.
func (b *SubscriptionBuilder) WithRcnAlias() *SubscriptionBuilder {
	return b.WithSpecification(RcnAliasSpecification())
}

// Build returns the completed request.
func (b *SubscriptionBuilder) Build() *openapi.Subscription {
	return b.request
}

// RcnAliasSpecification matches authorizations by RCN alias.
func RcnAliasSpecification() openapi.SpecificationRequest {
	return notifications.FieldEquals("purchaseRequest.rcnAlias", notifications.ContentTypeText, "RcnAliasText")
}
