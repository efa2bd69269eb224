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

package notifications_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"

	cenclient "github.com/unikorn-cloud/notifications/pkg/client"
	"github.com/unikorn-cloud/notifications/pkg/notifications"
	"github.com/unikorn-cloud/notifications/pkg/openapi"
	"github.com/unikorn-cloud/notifications/pkg/testing/fake"
	"github.com/unikorn-cloud/notifications/pkg/verify"

	"k8s.io/utils/ptr"
)

var testingT *testing.T //nolint:gochecknoglobals

func TestContracts(t *testing.T) { //nolint:paralleltest
	testingT = t

	RegisterFailHandler(Fail)
	RunSpecs(t, "Notifications Consumer Contract Suite")
}

// createClient creates a notifications client for the mock server, with the
// full transport chain and response validation.
func createClient(ctx context.Context, config consumer.MockServerConfig) (*notifications.Client, error) {
	options := cenclient.NewOptions()
	options.BaseURL = fmt.Sprintf("http://%s", net.JoinHostPort(config.Host, fmt.Sprintf("%d", config.Port)))
	options.ValidateResponses = true

	api, err := cenclient.NewWithSigner(ctx, options, fake.Signer{})
	if err != nil {
		return nil, err
	}

	return notifications.New(api), nil
}

// signed matches the header every request must carry.
func signed(b *consumer.V4RequestBuilder) *consumer.V4RequestBuilder {
	return b.
		Header("Authorization", matchers.Regex(`OAuth oauth_consumer_key="fake",oauth_signature="fake"`, `^OAuth .+`)).
		Query("Format", matchers.S("JSON"))
}

var _ = Describe("Commercial Event Notifications Contract", func() {
	var (
		pact *consumer.V4HTTPMockProvider
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		pact, err = consumer.NewV4Pact(consumer.MockHTTPProviderConfig{
			Consumer: "cen-notifications",
			Provider: "commercial-event-notifications",
			PactDir:  "../pacts",
		})
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Describe("PostSubscriptions", func() {
		Context("when the request is valid", func() {
			It("returns the stored subscription", func() {
				name := "OpenAPITest_SUBSC_NAME_DONT_DELETE_contract"

				pact.AddInteraction().
					Given("the caller is authorized").
					UponReceiving("a request to create a subscription with a field specification").
					WithRequest("POST", "/subscriptions", func(b *consumer.V4RequestBuilder) {
						signed(b).
							Header("Content-Type", matchers.S("application/json")).
							JSONBody(map[string]interface{}{
								"name":        matchers.Like(name),
								"subjectType": matchers.S("AUTHORIZATION"),
								"active":      matchers.Like(true),
								"specifications": []interface{}{
									map[string]interface{}{
										"type":             matchers.S("FIELD"),
										"operator":         matchers.S("WHERE"),
										"fieldOperator":    matchers.S("EQUALS"),
										"fieldMappingName": matchers.S("purchaseRequest.rcnAlias"),
										"expectedContent": map[string]interface{}{
											"contentType": matchers.S("TEXT"),
											"value":       matchers.S("RcnAliasText"),
										},
										"children": []interface{}{},
									},
								},
							})
					}).
					WillRespondWith(201, func(b *consumer.V4ResponseBuilder) {
						b.Header("Content-Type", matchers.S("application/json")).
							JSONBody(map[string]interface{}{
								"id":          matchers.UUID(),
								"name":        matchers.Like(name),
								"subjectType": matchers.S("AUTHORIZATION"),
								"active":      matchers.Like(true),
								"specifications": []interface{}{
									map[string]interface{}{
										"id":            matchers.UUID(),
										"type":          matchers.S("FIELD"),
										"operator":      matchers.S("WHERE"),
										"fieldOperator": matchers.S("EQUALS"),
										"fieldMapping": map[string]interface{}{
											"name": matchers.S("purchaseRequest.rcnAlias"),
										},
										"expectedContent": map[string]interface{}{
											"contentType": matchers.S("TEXT"),
											"value":       matchers.S("RcnAliasText"),
										},
									},
								},
							})
					})

				test := func(config consumer.MockServerConfig) error {
					client, err := createClient(ctx, config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					spec := notifications.FieldEquals("purchaseRequest.rcnAlias", notifications.ContentTypeText, "RcnAliasText")
					request := notifications.NewSubscription(name, openapi.SubscriptionSubjectTypeAUTHORIZATION, spec)

					subscription, err := client.CreateSubscription(ctx, request)
					if err != nil {
						return fmt.Errorf("creating subscription: %w", err)
					}

					Expect(verify.Subscription(request, subscription)).To(Succeed())
					Expect(verify.SpecificationEcho(subscription, verify.RequestTuple(spec))).To(Succeed())

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("DeleteSubscriptionsId", func() {
		Context("when the subscription exists", func() {
			It("returns no content", func() {
				id := "64b4b1c4-0c9e-4b9a-8d8c-5a1e1f0d2b3a"

				pact.AddInteraction().
					Given("subscription exists").
					UponReceiving("a request to delete a subscription").
					WithRequest("DELETE", "/subscriptions/"+id, func(b *consumer.V4RequestBuilder) {
						signed(b)
					}).
					WillRespondWith(204)

				test := func(config consumer.MockServerConfig) error {
					client, err := createClient(ctx, config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					return client.DeleteSubscription(ctx, id)
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})

		Context("when the subscription does not exist", func() {
			It("returns not found", func() {
				id := "00000000-0000-0000-0000-000000000000"

				pact.AddInteraction().
					Given("subscription does not exist").
					UponReceiving("a request to delete a missing subscription").
					WithRequest("DELETE", "/subscriptions/"+id, func(b *consumer.V4RequestBuilder) {
						signed(b)
					}).
					WillRespondWith(404, func(b *consumer.V4ResponseBuilder) {
						b.Header("Content-Type", matchers.S("application/json")).
							JSONBody(map[string]interface{}{
								"Errors": map[string]interface{}{
									"Error": matchers.EachLike(map[string]interface{}{
										"Source":      matchers.S("commercial-event-notifications"),
										"ReasonCode":  matchers.S("NOT_FOUND"),
										"Description": matchers.Like("Subscription not found"),
										"Recoverable": matchers.Like(false),
									}, 1),
								},
							})
					})

				test := func(config consumer.MockServerConfig) error {
					client, err := createClient(ctx, config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					err = client.DeleteSubscription(ctx, id)
					Expect(err).To(MatchError(notifications.ErrNotFound))
					Expect(err.Error()).To(ContainSubstring("NOT_FOUND: Subscription not found"))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("GetNotifications", func() {
		Context("when notifications were delivered in the window", func() {
			It("returns a page of polymorphic notifications", func() {
				end := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
				start := end.Add(-notifications.DefaultWindow)
				name := "OpenAPITest_SUBSC_NAME_DONT_DELETE"

				pact.AddInteraction().
					Given("notifications exist").
					UponReceiving("a request for delivered notifications of a subscription").
					WithRequest("GET", "/notifications", func(b *consumer.V4RequestBuilder) {
						signed(b).
							Query("startDate", matchers.S("2026-10-07T12:00:00Z")).
							Query("endDate", matchers.S("2026-10-14T12:00:00Z")).
							Query("subscriptionNames", matchers.S(name)).
							Query("pushStatus", matchers.S("DELIVERED"))
					}).
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.Header("Content-Type", matchers.S("application/json")).
							JSONBody(map[string]interface{}{
								"count":  matchers.Like(2),
								"total":  matchers.Like(2),
								"offset": matchers.Like(1),
								"limit":  matchers.Like(5),
								"notifications": []interface{}{
									map[string]interface{}{
										"id":               matchers.UUID(),
										"subject":          matchers.S("PAYMENT_AUTHORIZATION"),
										"subscriptionName": matchers.S(name),
										"pushStatus":       matchers.S("DELIVERED"),
										"content": map[string]interface{}{
											"messageTypeIndicator": matchers.Like("0100"),
										},
									},
									map[string]interface{}{
										"id":               matchers.UUID(),
										"subject":          matchers.S("PAYMENT_UPDATE"),
										"subscriptionName": matchers.S(name),
										"pushStatus":       matchers.S("DELIVERED"),
										"content": map[string]interface{}{
											"purchaseRequestId": matchers.Like("1234"),
											"status":            matchers.Like("APPROVED"),
										},
									},
								},
							})
					})

				test := func(config consumer.MockServerConfig) error {
					client, err := createClient(ctx, config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					query := notifications.NotificationQuery{
						StartDate:         start,
						EndDate:           end,
						SubscriptionNames: []string{name},
						PushStatus:        []string{notifications.PushStatusDelivered},
					}

					wrapper, err := client.ListNotifications(ctx, query)
					if err != nil {
						return fmt.Errorf("listing notifications: %w", err)
					}

					Expect(verify.Notifications(query, wrapper)).To(Succeed())
					Expect(wrapper.Notifications).To(HaveLen(2))

					content, err := notifications.DecodeContent(wrapper.Notifications[1])
					Expect(err).NotTo(HaveOccurred())
					Expect(content).To(BeAssignableToTypeOf(&notifications.PaymentUpdateContent{}))
					Expect(ptr.Deref(content.(*notifications.PaymentUpdateContent).Status, "")).To(Equal("APPROVED"))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("GetFieldmappings", func() {
		Context("when the catalog is populated", func() {
			It("returns the field mappings", func() {
				pact.AddInteraction().
					Given("the caller is authorized").
					UponReceiving("a request for the field mapping catalog").
					WithRequest("GET", "/fieldmappings", func(b *consumer.V4RequestBuilder) {
						signed(b)
					}).
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.Header("Content-Type", matchers.S("application/json")).
							JSONBody(matchers.EachLike(map[string]interface{}{
								"name":        matchers.S("purchaseRequest.rcnAlias"),
								"displayName": matchers.S("Purchase request RCN alias"),
								"subjectType": matchers.S("PAYMENT_AUTHORIZATION"),
								"contentType": matchers.S("TEXT"),
							}, 1))
					})

				test := func(config consumer.MockServerConfig) error {
					client, err := createClient(ctx, config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					catalog, err := client.ListFieldMappings(ctx)
					if err != nil {
						return fmt.Errorf("listing field mappings: %w", err)
					}

					Expect(verify.FieldMappings(catalog, verify.KnownFieldMappings()[2:3])).To(Succeed())

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})
})
