package suites

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/notifications/pkg/notifications"
	"github.com/unikorn-cloud/notifications/test/api"
)

var (
	client *notifications.Client
	raw    *api.APIClient
	ctx    context.Context
	config *api.TestConfig
)

var _ = BeforeEach(func() {
	var err error

	config, err = api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	if config.SkipIntegration {
		Skip("SKIP_INTEGRATION is set")
	}

	var cancel context.CancelFunc

	ctx, cancel = context.WithTimeout(context.Background(), config.TestTimeout)
	DeferCleanup(cancel)

	client, err = api.NewNotificationsClient(ctx, config)
	Expect(err).NotTo(HaveOccurred())

	raw, err = api.NewAPIClientWithConfig(config)
	Expect(err).NotTo(HaveOccurred())
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Test Suites")
}
