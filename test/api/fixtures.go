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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/notifications/pkg/notifications"
	"github.com/unikorn-cloud/notifications/pkg/openapi"
	"github.com/unikorn-cloud/notifications/pkg/verify"
)

// CreateSubscriptionWithCleanup creates a subscription and schedules its deletion.
func CreateSubscriptionWithCleanup(client *notifications.Client, ctx context.Context, request *openapi.Subscription) (*openapi.SubscriptionResponse, string) {
	subscription, err := client.CreateSubscription(ctx, request)
	Expect(err).NotTo(HaveOccurred())
	Expect(subscription).NotTo(BeNil())

	subscriptionID := subscription.Id

	GinkgoWriter.Printf("Created subscription %s with ID: %s\n", subscription.Name, subscriptionID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up subscription: %s\n", subscriptionID)

		deleteErr := client.DeleteSubscription(ctx, subscriptionID)

		switch {
		case deleteErr == nil:
			GinkgoWriter.Printf("Successfully deleted subscription: %s\n", subscriptionID)
		case errors.Is(deleteErr, notifications.ErrNotFound):
			GinkgoWriter.Printf("Subscription %s already deleted\n", subscriptionID)
		default:
			GinkgoWriter.Printf("Warning: Failed to delete subscription %s: %v\n", subscriptionID, deleteErr)
		}
	})

	return subscription, subscriptionID
}

// VerifySubscription verifies a stored subscription reflects its request.
func VerifySubscription(request *openapi.Subscription, response *openapi.SubscriptionResponse) {
	Expect(verify.Subscription(request, response)).To(Succeed())
}

// VerifySpecificationEcho verifies the subscription holds the specification exactly.
func VerifySpecificationEcho(response *openapi.SubscriptionResponse, specification openapi.SpecificationRequest) {
	Expect(verify.SpecificationEcho(response, verify.RequestTuple(specification))).To(Succeed())
}

// VerifySameSubscription verifies a subscription read back is the one created.
func VerifySameSubscription(created, fetched *openapi.SubscriptionResponse) {
	Expect(verify.SameSubscription(created, fetched)).To(Succeed())
}

// maxPages bounds how far FindSubscription pages before giving up.
const maxPages = 100

// FindSubscription pages through subscriptions, sorted by name, until the
// identifier is found or the list runs out.  Offsets count items from one.
func FindSubscription(client *notifications.Client, ctx context.Context, subscriptionID string) (*openapi.SubscriptionResponse, bool) {
	page := notifications.DefaultPage()

	for range maxPages {
		subscriptions, err := client.ListSubscriptions(ctx, page)
		Expect(err).NotTo(HaveOccurred())
		Expect(len(subscriptions)).To(BeNumerically("<=", *page.Limit))

		for i := range subscriptions {
			if subscriptions[i].Id == subscriptionID {
				return &subscriptions[i], true
			}
		}

		if len(subscriptions) < *page.Limit {
			return nil, false
		}

		*page.Offset += len(subscriptions)
	}

	return nil, false
}

// DefaultPageQuery encodes the default paging the way the generated client does.
func DefaultPageQuery() url.Values {
	page := notifications.DefaultPage()

	values := url.Values{}
	values.Set("offset", strconv.Itoa(*page.Offset))
	values.Set("limit", strconv.Itoa(*page.Limit))
	values.Set("sort", *page.Sort)

	return values
}

// VerifyDeleted verifies a deleted subscription can no longer be read.
func VerifyDeleted(client *notifications.Client, ctx context.Context, subscriptionID string) {
	_, err := client.GetSubscription(ctx, subscriptionID)
	Expect(err).To(MatchError(notifications.ErrNotFound), "subscription %s still readable after deletion", subscriptionID)
}

// VerifyNotifications verifies a page of notifications against its query.
func VerifyNotifications(query notifications.NotificationQuery, wrapper *openapi.NotificationsWrapper) {
	Expect(verify.Notifications(query, wrapper)).To(Succeed())

	if len(wrapper.Notifications) == 0 {
		GinkgoWriter.Printf("No notifications in window %s - %s\n", query.StartDate.Format(time.RFC3339), query.EndDate.Format(time.RFC3339))
	}
}

// VerifyFieldMappings verifies the catalog contains the known entries.
func VerifyFieldMappings(catalog openapi.FieldMappings) {
	Expect(verify.FieldMappings(catalog, verify.KnownFieldMappings())).To(Succeed())
}

// NotificationQuery returns a query for the default window, optionally
// restricted to the configured subscriptions and push status.
func NotificationQuery(config *TestConfig, withNames, withPushStatus bool) notifications.NotificationQuery {
	end := time.Now()

	query := notifications.NotificationQuery{
		StartDate: end.Add(-notifications.DefaultWindow),
		EndDate:   end,
	}

	if withNames {
		if len(config.NotificationSubscriptions) == 0 {
			Skip("TEST_NOTIFICATION_SUBSCRIPTIONS is not set")
		}

		query.SubscriptionNames = config.NotificationSubscriptions
	}

	if withPushStatus {
		query.PushStatus = []string{config.PushStatus}
	}

	return query
}

// RawNotificationQuery encodes a query the way the generated client does.
func RawNotificationQuery(query notifications.NotificationQuery) url.Values {
	values := url.Values{}
	values.Set("startDate", query.StartDate.UTC().Format(time.RFC3339))
	values.Set("endDate", query.EndDate.UTC().Format(time.RFC3339))

	for _, name := range query.SubscriptionNames {
		values.Add("subscriptionNames", name)
	}

	for _, status := range query.PushStatus {
		values.Add("pushStatus", status)
	}

	return values
}

// SubscriptionName returns a readable description for test output.
func SubscriptionName(subscription *openapi.SubscriptionResponse) string {
	return fmt.Sprintf("%s (%s)", subscription.Name, subscription.Id)
}
