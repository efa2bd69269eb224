//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/notifications/pkg/notifications"
	"github.com/unikorn-cloud/notifications/pkg/verify"
	"github.com/unikorn-cloud/notifications/test/api"

	"k8s.io/utils/ptr"
)

var _ = Describe("Notification Retrieval", func() {
	Context("When listing notifications", func() {
		Describe("Given only a date window", func() {
			It("should return a consistent page", func() {
				query := api.NotificationQuery(config, false, false)

				wrapper, err := client.ListNotifications(ctx, query)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyNotifications(query, wrapper)
			})

			It("should agree with an independent request", func() {
				query := api.NotificationQuery(config, false, false)

				untyped, err := raw.ListNotifications(ctx, api.RawNotificationQuery(query))
				Expect(err).NotTo(HaveOccurred())
				Expect(untyped).To(HaveKey("notifications"))
				Expect(untyped).To(HaveKey("count"))
				Expect(untyped).To(HaveKey("total"))
			})
		})

		Describe("Given a window and subscription names", func() {
			It("should only return notifications for those subscriptions", func() {
				query := api.NotificationQuery(config, true, false)

				wrapper, err := client.ListNotifications(ctx, query)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyNotifications(query, wrapper)
			})
		})

		Describe("Given a window, subscription names and push status", func() {
			It("should only return notifications in that state", func() {
				query := api.NotificationQuery(config, true, true)

				wrapper, err := client.ListNotifications(ctx, query)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyNotifications(query, wrapper)

				for _, n := range wrapper.Notifications {
					Expect(ptr.Deref(n.PushStatus, config.PushStatus)).To(Equal(config.PushStatus))
				}
			})
		})

		Describe("Given explicit paging", func() {
			It("should echo the requested paging", func() {
				query := api.NotificationQuery(config, false, false)
				query.Offset = ptr.To(notifications.DefaultOffset)
				query.Limit = ptr.To(2)

				wrapper, err := client.ListNotifications(ctx, query)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyNotifications(query, wrapper)
				Expect(len(wrapper.Notifications)).To(BeNumerically("<=", 2))
			})
		})

		Describe("Given notifications were returned", func() {
			It("should decode content according to the subject", func() {
				query := api.NotificationQuery(config, false, false)

				wrapper, err := client.ListNotifications(ctx, query)
				Expect(err).NotTo(HaveOccurred())

				if len(wrapper.Notifications) == 0 {
					Skip("no notifications in the window")
				}

				for _, n := range wrapper.Notifications {
					Expect(verify.Content(n)).To(Succeed())

					content, err := notifications.DecodeContent(n)
					if err != nil {
						Expect(err).To(MatchError(notifications.ErrUnknownSubject))
						GinkgoWriter.Printf("Unknown subject %s\n", n.Subject)

						continue
					}

					Expect(string(content.Subject())).To(Equal(n.Subject))
				}
			})
		})

		Describe("Given the start is after the end", func() {
			It("should be rejected before it is sent", func() {
				query := api.NotificationQuery(config, false, false)
				query.StartDate, query.EndDate = query.EndDate, query.StartDate

				_, err := client.ListNotifications(ctx, query)
				Expect(err).To(MatchError(notifications.ErrInvalidWindow))
			})
		})
	})
})
