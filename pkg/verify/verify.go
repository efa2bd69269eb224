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

// Package verify checks API responses against the contract the service
// promises.  Every check reports all of its failures at once.
package verify

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spjmurray/go-util/pkg/set"
	"go.uber.org/multierr"

	"github.com/unikorn-cloud/notifications/pkg/notifications"
	"github.com/unikorn-cloud/notifications/pkg/openapi"

	"k8s.io/utils/ptr"
)

var (
	// ErrVerification is wrapped by every reported failure.
	ErrVerification = errors.New("verification failed")
)

func failure(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrVerification, fmt.Sprintf(format, args...))
}

// SpecificationTuple is the part of a specification the service must echo.
type SpecificationTuple struct {
	Type             string
	Operator         string
	FieldOperator    string
	FieldMappingName string
	ExpectedValue    string
}

func (t SpecificationTuple) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s, %s)", t.Type, t.Operator, t.FieldOperator, t.FieldMappingName, t.ExpectedValue)
}

// RequestTuple extracts the tuple from a submitted specification.
func RequestTuple(s openapi.SpecificationRequest) SpecificationTuple {
	t := SpecificationTuple{
		Type:             s.Type,
		Operator:         s.Operator,
		FieldOperator:    ptr.Deref(s.FieldOperator, ""),
		FieldMappingName: ptr.Deref(s.FieldMappingName, ""),
	}

	if s.ExpectedContent != nil {
		t.ExpectedValue = s.ExpectedContent.Value
	}

	return t
}

// ResponseTuple extracts the tuple from a stored specification.
func ResponseTuple(s openapi.SpecificationResponse) SpecificationTuple {
	t := SpecificationTuple{
		Type:          s.Type,
		Operator:      s.Operator,
		FieldOperator: ptr.Deref(s.FieldOperator, ""),
	}

	if s.FieldMapping != nil {
		t.FieldMappingName = s.FieldMapping.Name
	}

	if s.ExpectedContent != nil {
		t.ExpectedValue = s.ExpectedContent.Value
	}

	return t
}

func requestTuples(request *openapi.Subscription) []SpecificationTuple {
	if request.Specifications == nil {
		return nil
	}

	tuples := make([]SpecificationTuple, 0, len(*request.Specifications))

	for _, s := range *request.Specifications {
		tuples = append(tuples, RequestTuple(s))
	}

	return tuples
}

func responseTuples(response *openapi.SubscriptionResponse) []SpecificationTuple {
	if response.Specifications == nil {
		return nil
	}

	tuples := make([]SpecificationTuple, 0, len(*response.Specifications))

	for _, s := range *response.Specifications {
		tuples = append(tuples, ResponseTuple(s))
	}

	return tuples
}

// Subscription checks a stored subscription reflects the request that
// created or updated it.
func Subscription(request *openapi.Subscription, response *openapi.SubscriptionResponse) error {
	if response == nil {
		return failure("no subscription returned")
	}

	var err error

	if response.Id == "" {
		err = multierr.Append(err, failure("subscription has no id"))
	}

	if !strings.HasPrefix(response.Name, request.Name) {
		err = multierr.Append(err, failure("subscription name %q does not start with %q", response.Name, request.Name))
	}

	if response.SubjectType != request.SubjectType {
		err = multierr.Append(err, failure("subject type %s, expected %s", response.SubjectType, request.SubjectType))
	}

	if response.Active != request.Active {
		err = multierr.Append(err, failure("active %t, expected %t", response.Active, request.Active))
	}

	expected := requestTuples(request)
	actual := responseTuples(response)

	if len(actual) != len(expected) {
		err = multierr.Append(err, failure("%d specifications, expected %d", len(actual), len(expected)))
	}

	sortTuples := cmpopts.SortSlices(func(a, b SpecificationTuple) bool {
		return a.String() < b.String()
	})

	if diff := cmp.Diff(expected, actual, sortTuples, cmpopts.EquateEmpty()); diff != "" {
		err = multierr.Append(err, failure("specifications differ (-want +got):\n%s", diff))
	}

	return err
}

// SpecificationEcho checks a stored subscription has a specification that
// exactly matches the tuple.
func SpecificationEcho(response *openapi.SubscriptionResponse, tuple SpecificationTuple) error {
	if response == nil {
		return failure("no subscription returned")
	}

	actual := responseTuples(response)

	if slices.Contains(actual, tuple) {
		return nil
	}

	return failure("no specification matching %s in %v", tuple, actual)
}

// SameSubscription checks a subscription read back is the one stored.
func SameSubscription(expected, actual *openapi.SubscriptionResponse) error {
	if expected == nil || actual == nil {
		return failure("subscription missing")
	}

	var err error

	if expected.Id != actual.Id {
		err = multierr.Append(err, failure("subscription id %q, expected %q", actual.Id, expected.Id))
	}

	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		err = multierr.Append(err, failure("subscription differs (-want +got):\n%s", diff))
	}

	return err
}

// Notifications checks a page of notifications is consistent with the query
// that produced it.  An empty page is always valid.
func Notifications(query notifications.NotificationQuery, wrapper *openapi.NotificationsWrapper) error {
	if wrapper == nil {
		return failure("no notifications wrapper returned")
	}

	if len(wrapper.Notifications) == 0 {
		return nil
	}

	var err error

	if wrapper.Count <= 0 {
		err = multierr.Append(err, failure("count %d for a non-empty page", wrapper.Count))
	}

	if wrapper.Total <= 0 {
		err = multierr.Append(err, failure("total %d for a non-empty page", wrapper.Total))
	}

	if wrapper.Offset != query.EffectiveOffset() {
		err = multierr.Append(err, failure("offset %d, expected %d", wrapper.Offset, query.EffectiveOffset()))
	}

	if wrapper.Limit != query.EffectiveLimit() {
		err = multierr.Append(err, failure("limit %d, expected %d", wrapper.Limit, query.EffectiveLimit()))
	}

	for i, n := range wrapper.Notifications {
		if n.Subject == "" {
			err = multierr.Append(err, failure("notification %d has no subject", i))
		}

		if n.Content.IsEmpty() {
			err = multierr.Append(err, failure("notification %d has no content", i))

			continue
		}

		if e := Content(n); e != nil {
			err = multierr.Append(err, fmt.Errorf("notification %d: %w", i, e))
		}
	}

	if len(query.SubscriptionNames) > 0 {
		err = multierr.Append(err, subscriptionNames(query.SubscriptionNames, wrapper.Notifications))
	}

	return err
}

// subscriptionNames checks every notification belongs to a requested subscription.
func subscriptionNames(requested []string, items []openapi.Notification) error {
	names := make([]string, 0, len(items))

	for _, n := range items {
		names = append(names, ptr.Deref(n.SubscriptionName, ""))
	}

	returned := set.New[string](names...)
	allowed := set.New[string](requested...)
	extra := returned.Difference(allowed)

	var unexpected []string

	for name := range extra.All() {
		unexpected = append(unexpected, name)
	}

	if len(unexpected) == 0 {
		return nil
	}

	slices.Sort(unexpected)

	return failure("notifications for unrequested subscriptions %q", unexpected)
}

// Content checks a notification's content has the fields its subject
// demands.  Unknown subjects are passed through unchecked.
func Content(n openapi.Notification) error {
	content, err := notifications.DecodeContent(n)
	if err != nil {
		if errors.Is(err, notifications.ErrUnknownSubject) {
			return nil
		}

		return fmt.Errorf("%w: %w", ErrVerification, err)
	}

	switch c := content.(type) {
	case *notifications.AuthorizationContent:
		if ptr.Deref(c.MessageTypeIndicator, "") == "" {
			return failure("%s content has no messageTypeIndicator", c.Subject())
		}
	case *notifications.PaymentUpdateContent:
		var errs error

		if ptr.Deref(c.PurchaseRequestId, "") == "" {
			errs = multierr.Append(errs, failure("%s content has no purchaseRequestId", c.Subject()))
		}

		if ptr.Deref(c.Status, "") == "" {
			errs = multierr.Append(errs, failure("%s content has no status", c.Subject()))
		}

		return errs
	}

	return nil
}

// FieldMappings checks every expected mapping is in the catalog exactly.
// A name may be listed more than once, for example under different subjects.
func FieldMappings(catalog, expected openapi.FieldMappings) error {
	var err error

	for _, want := range expected {
		if slices.ContainsFunc(catalog, func(got openapi.FieldMapping) bool { return cmp.Equal(want, got) }) {
			continue
		}

		var candidates openapi.FieldMappings

		for _, got := range catalog {
			if got.Name == want.Name {
				candidates = append(candidates, got)
			}
		}

		if len(candidates) == 0 {
			err = multierr.Append(err, failure("field mapping %q missing from catalog", want.Name))

			continue
		}

		diff := cmp.Diff(openapi.FieldMappings{want}, candidates)
		err = multierr.Append(err, failure("field mapping %q differs (-want +got):\n%s", want.Name, diff))
	}

	return err
}

// KnownFieldMappings returns catalog entries that are known to be stable.
func KnownFieldMappings() openapi.FieldMappings {
	mapping := func(name, displayName, contentType string) openapi.FieldMapping {
		return openapi.FieldMapping{
			Name:        name,
			DisplayName: ptr.To(displayName),
			SubjectType: ptr.To(string(notifications.SubjectPaymentAuthorization)),
			ContentType: ptr.To(contentType),
		}
	}

	return openapi.FieldMappings{
		mapping("messageTypeIndicator", "Message type indicator", notifications.ContentTypeText),
		mapping("inControlOnBehalfServiceResult.vcnAuthorizationCode", "In Control VCN service result code", notifications.ContentTypeText),
		mapping("purchaseRequest.rcnAlias", "Purchase request RCN alias", notifications.ContentTypeText),
		mapping("purchaseRequest.companyId", "Purchase request company id", notifications.ContentTypeInteger),
		mapping("purchaseRequest.companyGuid", "Purchase request company GUID", notifications.ContentTypeText),
		mapping("purchaseRequest.issuerGuid", "Purchase request issuer GUID", notifications.ContentTypeText),
	}
}
