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
	"github.com/unikorn-cloud/notifications/pkg/openapi"

	"k8s.io/utils/ptr"
)

// NewSubscription returns an active subscription request.  Specifications
// are always sent, even when empty.
func NewSubscription(name string, subjectType openapi.SubscriptionSubjectType, specifications ...openapi.SpecificationRequest) *openapi.Subscription {
	if specifications == nil {
		specifications = []openapi.SpecificationRequest{}
	}

	return &openapi.Subscription{
		Name:           name,
		SubjectType:    subjectType,
		Active:         true,
		Specifications: &specifications,
	}
}

// FieldEquals returns a specification matching events whose field equals value.
// It has no children, sent as an empty list.
func FieldEquals(fieldMappingName, contentType, value string) openapi.SpecificationRequest {
	return openapi.SpecificationRequest{
		Children:         &[]openapi.SpecificationRequest{},
		Type:             SpecificationTypeField,
		Operator:         OperatorWhere,
		FieldOperator:    ptr.To(FieldOperatorEquals),
		FieldMappingName: ptr.To(fieldMappingName),
		ExpectedContent: &openapi.FieldContent{
			ContentType: contentType,
			Value:       value,
		},
	}
}
