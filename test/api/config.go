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
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/unikorn-cloud/notifications/pkg/client"
	"github.com/unikorn-cloud/notifications/pkg/notifications"
)

const (
	// DefaultSubscriptionPrefix names every subscription the suites create,
	// so they can be told apart from anything else on the account.
	DefaultSubscriptionPrefix = "OpenAPITest_SUBSC_NAME_DONT_DELETE"
)

type TestConfig struct {
	Client                    *client.Options
	TestTimeout               time.Duration
	SubscriptionPrefix        string
	NotificationSubscriptions []string
	PushStatus                string
	SkipIntegration           bool
	LogRequests               bool
	LogResponses              bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	if err := client.LoadEnvFile(envPaths()...); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	options := client.NewOptions()
	options.ApplyEnvironment()

	config := &TestConfig{
		Client:                    options,
		TestTimeout:               client.GetDurationWithDefault("TEST_TIMEOUT", 5*time.Minute),
		SubscriptionPrefix:        getStringWithDefault("TEST_SUBSCRIPTION_PREFIX", DefaultSubscriptionPrefix),
		NotificationSubscriptions: getListWithDefault("TEST_NOTIFICATION_SUBSCRIPTIONS", nil),
		PushStatus:                getStringWithDefault("TEST_PUSH_STATUS", notifications.PushStatusDelivered),
		SkipIntegration:           client.GetBoolWithDefault("SKIP_INTEGRATION", false),
		LogRequests:               client.GetBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:              client.GetBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.SkipIntegration {
		return config, nil
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("%w. Please set these environment variables or add them to a .env file, or the gh secrets", err)
	}

	return config, nil
}

// envPaths is where .env files are looked for, relative to the test/api/suites
// and test/api directories.
func envPaths() []string {
	return []string{
		"../../.env",
		"../.env",
	}
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getListWithDefault gets a comma separated list from environment variable or returns default.
func getListWithDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var list []string

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}

	return list
}
