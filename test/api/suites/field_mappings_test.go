//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/notifications/test/api"
)

var _ = Describe("Field Mapping Catalog", func() {
	Context("When listing field mappings", func() {
		It("should contain the known entries", func() {
			catalog, err := client.ListFieldMappings(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(catalog).NotTo(BeEmpty())

			api.VerifyFieldMappings(catalog)
		})

		It("should agree with an independent request", func() {
			catalog, err := client.ListFieldMappings(ctx)
			Expect(err).NotTo(HaveOccurred())

			untyped, err := raw.ListFieldMappings(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(untyped).To(HaveLen(len(catalog)))

			for _, mapping := range untyped {
				Expect(mapping).To(HaveKey("name"))
			}
		})
	})
})
