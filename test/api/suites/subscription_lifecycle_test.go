//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/notifications/pkg/notifications"
	"github.com/unikorn-cloud/notifications/pkg/openapi"
	"github.com/unikorn-cloud/notifications/test/api"
)

var _ = Describe("Subscription Lifecycle", func() {
	for _, subjectType := range []openapi.SubscriptionSubjectType{
		openapi.SubscriptionSubjectTypeAUTHORIZATION,
		openapi.SubscriptionSubjectTypePAYMENTUPDATE,
	} {
		Context("When creating a "+string(subjectType)+" subscription", func() {
			Describe("Given no specifications", func() {
				It("should echo the request", func() {
					request := api.NewSubscriptionPayload(config, subjectType).Build()

					subscription, subscriptionID := api.CreateSubscriptionWithCleanup(client, ctx, request)

					Expect(subscriptionID).NotTo(BeEmpty())
					api.VerifySubscription(request, subscription)
					Expect(*subscription.Specifications).To(BeEmpty())
				})
			})

			Describe("Given it is inactive", func() {
				It("should echo the active flag", func() {
					request := api.NewSubscriptionPayload(config, subjectType).
						WithActive(false).
						Build()

					subscription, _ := api.CreateSubscriptionWithCleanup(client, ctx, request)

					api.VerifySubscription(request, subscription)
					Expect(subscription.Active).To(BeFalse())
				})
			})

			Describe("Given a field specification", func() {
				It("should echo the specification exactly", func() {
					request := api.NewSubscriptionPayload(config, subjectType).
						WithRcnAlias().
						Build()

					subscription, _ := api.CreateSubscriptionWithCleanup(client, ctx, request)

					api.VerifySubscription(request, subscription)
					api.VerifySpecificationEcho(subscription, api.RcnAliasSpecification())
				})
			})
		})

		Context("When listing "+string(subjectType)+" subscriptions", func() {
			Describe("Given a subscription was created", func() {
				It("should be found by paging by name", func() {
					request := api.NewSubscriptionPayload(config, subjectType).Build()

					created, subscriptionID := api.CreateSubscriptionWithCleanup(client, ctx, request)

					found, ok := api.FindSubscription(client, ctx, subscriptionID)
					Expect(ok).To(BeTrue(), "subscription %s not found in any page", api.SubscriptionName(created))

					api.VerifySubscription(request, found)
				})
			})

			Describe("Given the default paging", func() {
				It("should accept it from an independent request", func() {
					subscriptions, err := raw.ListSubscriptions(ctx, api.DefaultPageQuery())
					Expect(err).NotTo(HaveOccurred())
					Expect(len(subscriptions)).To(BeNumerically("<=", notifications.DefaultLimit))
				})
			})
		})

		Context("When updating a "+string(subjectType)+" subscription", func() {
			Describe("Given the subscription exists", func() {
				var (
					request        *openapi.Subscription
					subscriptionID string
				)

				BeforeEach(func() {
					request = api.NewSubscriptionPayload(config, subjectType).Build()
					_, subscriptionID = api.CreateSubscriptionWithCleanup(client, ctx, request)
				})

				It("should deactivate it", func() {
					update := *request
					update.Active = false

					updated, err := client.UpdateSubscription(ctx, subscriptionID, &update)
					Expect(err).NotTo(HaveOccurred())

					api.VerifySubscription(&update, updated)
					Expect(updated.Id).To(Equal(subscriptionID))

					fetched, err := client.GetSubscription(ctx, subscriptionID)
					Expect(err).NotTo(HaveOccurred())
					Expect(fetched.Active).To(BeFalse())

					api.VerifySubscription(&update, fetched)
					api.VerifySameSubscription(updated, fetched)
				})

				It("should add a specification", func() {
					update := api.NewSubscriptionPayload(config, subjectType).WithRcnAlias().Build()
					update.Name = request.Name

					updated, err := client.UpdateSubscription(ctx, subscriptionID, update)
					Expect(err).NotTo(HaveOccurred())

					api.VerifySubscription(update, updated)
					api.VerifySpecificationEcho(updated, api.RcnAliasSpecification())
				})
			})
		})

		Context("When retrieving a "+string(subjectType)+" subscription", func() {
			Describe("Given the subscription exists", func() {
				It("should return the stored subscription", func() {
					created, subscriptionID := api.CreateSubscriptionWithCleanup(client, ctx,
						api.NewSubscriptionPayload(config, subjectType).WithRcnAlias().Build())

					fetched, err := client.GetSubscription(ctx, subscriptionID)
					Expect(err).NotTo(HaveOccurred())
					Expect(fetched.Id).To(Equal(subscriptionID), "unexpected subscription %s", api.SubscriptionName(fetched))

					api.VerifySameSubscription(created, fetched)

					untyped, err := raw.GetSubscription(ctx, subscriptionID)
					Expect(err).NotTo(HaveOccurred())
					Expect(untyped).To(HaveKeyWithValue("id", subscriptionID))
					Expect(untyped).To(HaveKeyWithValue("subjectType", string(subjectType)))
				})
			})
		})

		Context("When deleting a "+string(subjectType)+" subscription", func() {
			Describe("Given the subscription exists", func() {
				It("should delete it permanently", func() {
					_, subscriptionID := api.CreateSubscriptionWithCleanup(client, ctx,
						api.NewSubscriptionPayload(config, subjectType).Build())

					Expect(client.DeleteSubscription(ctx, subscriptionID)).To(Succeed())

					api.VerifyDeleted(client, ctx, subscriptionID)

					status, err := raw.SubscriptionStatus(ctx, subscriptionID)
					Expect(err).NotTo(HaveOccurred())
					Expect(status).To(Equal(http.StatusNotFound))
				})
			})

			Describe("Given an independent request", func() {
				It("should answer no content", func() {
					_, subscriptionID := api.CreateSubscriptionWithCleanup(client, ctx,
						api.NewSubscriptionPayload(config, subjectType).Build())

					Expect(raw.DeleteSubscription(ctx, subscriptionID)).To(Succeed())

					api.VerifyDeleted(client, ctx, subscriptionID)
				})
			})

			Describe("Given the subscription does not exist", func() {
				It("should report not found", func() {
					err := client.DeleteSubscription(ctx, "00000000-0000-0000-0000-000000000000")
					Expect(err).To(MatchError(notifications.ErrNotFound))
				})
			})
		})
	}

	Context("When creating a subscription with an unknown subject type", func() {
		It("should be rejected before it is sent", func() {
			_, err := client.CreateSubscription(ctx, api.NewSubscriptionPayload(config, "REFUND").Build())
			Expect(err).To(MatchError(openapi.ErrInvalidSubjectType))
		})
	})
})
