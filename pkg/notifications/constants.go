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
	"time"
)

// Subject is the category of a delivered notification, and selects the
// shape of its content.
type Subject string

const (
	SubjectPaymentAuthorization Subject = "PAYMENT_AUTHORIZATION"
	SubjectPaymentUpdate        Subject = "PAYMENT_UPDATE"
)

const (
	// DefaultOffset is the first page as numbered by the service.
	DefaultOffset = 1

	// DefaultLimit is the page size the service applies when none is given.
	DefaultLimit = 5

	// DefaultSort orders subscriptions by name.
	DefaultSort = "name"

	// DefaultWindow is how far back notifications are listed when no
	// start date is given.
	DefaultWindow = 7 * 24 * time.Hour
)

const (
	ContentTypeText    = "TEXT"
	ContentTypeInteger = "INTEGER"

	SpecificationTypeField = "FIELD"

	OperatorWhere = "WHERE"

	FieldOperatorEquals = "EQUALS"

	PushStatusDelivered = "DELIVERED"
)
