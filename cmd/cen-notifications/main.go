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

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unikorn-cloud/notifications/pkg/client"
	"github.com/unikorn-cloud/notifications/pkg/constants"
	"github.com/unikorn-cloud/notifications/pkg/notifications"
	"github.com/unikorn-cloud/notifications/pkg/openapi"
	"github.com/unikorn-cloud/notifications/pkg/verify"

	"k8s.io/utils/ptr"
)

// flags are the command specific options, client options are handled
// by the client package.
type flags struct {
	start             string
	end               string
	subscriptionNames []string
	pushStatus        []string
	offset            int
	limit             int
	fieldMappings     bool
	verbosity         int
}

func (f *flags) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.start, "start", "", "Window start as RFC3339, defaults to 7 days before the end.")
	fs.StringVar(&f.end, "end", "", "Window end as RFC3339, defaults to now.")
	fs.StringSliceVar(&f.subscriptionNames, "subscription-name", nil, "Only list notifications for these subscriptions.")
	fs.StringSliceVar(&f.pushStatus, "push-status", nil, "Only list notifications in these delivery states.")
	fs.IntVar(&f.offset, "offset", 0, "Page offset, the service default is used when unset.")
	fs.IntVar(&f.limit, "limit", 0, "Page size, the service default is used when unset.")
	fs.BoolVar(&f.fieldMappings, "field-mappings", false, "Also check the field mapping catalog.")
	fs.IntVarP(&f.verbosity, "verbose", "v", 0, "Log verbosity.")
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", s, err)
	}

	return t, nil
}

func (f *flags) query() (notifications.NotificationQuery, error) {
	start, err := parseTime(f.start)
	if err != nil {
		return notifications.NotificationQuery{}, err
	}

	end, err := parseTime(f.end)
	if err != nil {
		return notifications.NotificationQuery{}, err
	}

	query := notifications.NotificationQuery{
		StartDate:         start,
		EndDate:           end,
		SubscriptionNames: f.subscriptionNames,
		PushStatus:        f.pushStatus,
	}

	if f.offset > 0 {
		query.Offset = ptr.To(f.offset)
	}

	if f.limit > 0 {
		query.Limit = ptr.To(f.limit)
	}

	return query, nil
}

func newLogger(verbosity int) (logr.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))

	zl, err := config.Build()
	if err != nil {
		return logr.Discard(), err
	}

	return zapr.NewLogger(zl), nil
}

// item is a decoded notification.
type item struct {
	ID               string                `json:"id,omitempty"`
	Subject          string                `json:"subject"`
	SubscriptionName string                `json:"subscriptionName,omitempty"`
	PushStatus       string                `json:"pushStatus,omitempty"`
	Content          notifications.Content `json:"content,omitempty"`
}

// report is what gets printed.
type report struct {
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Count           int       `json:"count"`
	Total           int       `json:"total"`
	Notifications   []item    `json:"notifications"`
	UnknownSubjects []string  `json:"unknownSubjects,omitempty"`
	Violations      []string  `json:"violations,omitempty"`
}

func decode(wrapper *openapi.NotificationsWrapper) ([]item, []string) {
	items := make([]item, 0, len(wrapper.Notifications))

	var unknown []string

	for _, n := range wrapper.Notifications {
		i := item{
			ID:               ptr.Deref(n.Id, ""),
			Subject:          n.Subject,
			SubscriptionName: ptr.Deref(n.SubscriptionName, ""),
			PushStatus:       ptr.Deref(n.PushStatus, ""),
		}

		content, err := notifications.DecodeContent(n)
		if err == nil {
			i.Content = content
		} else if errors.Is(err, notifications.ErrUnknownSubject) && !slices.Contains(unknown, n.Subject) {
			unknown = append(unknown, n.Subject)
		}

		items = append(items, i)
	}

	return items, unknown
}

func violations(err error) []string {
	var out []string

	for _, e := range multierr.Errors(err) {
		out = append(out, e.Error())
	}

	return out
}

func run(ctx context.Context, options *client.Options, f *flags) (*report, error) {
	query, err := f.query()
	if err != nil {
		return nil, err
	}

	api, err := client.New(ctx, options)
	if err != nil {
		return nil, err
	}

	cli := notifications.New(api)

	start, end, err := query.Window(time.Now())
	if err != nil {
		return nil, err
	}

	query.StartDate = start
	query.EndDate = end

	wrapper, err := cli.ListNotifications(ctx, query)
	if err != nil {
		return nil, err
	}

	items, unknown := decode(wrapper)

	r := &report{
		StartDate:       start.UTC(),
		EndDate:         end.UTC(),
		Count:           wrapper.Count,
		Total:           wrapper.Total,
		Notifications:   items,
		UnknownSubjects: unknown,
		Violations:      violations(verify.Notifications(query, wrapper)),
	}

	if f.fieldMappings {
		catalog, err := cli.ListFieldMappings(ctx)
		if err != nil {
			return nil, err
		}

		r.Violations = append(r.Violations, violations(verify.FieldMappings(catalog, verify.KnownFieldMappings()))...)
	}

	return r, nil
}

func main() {
	if err := client.LoadEnvFile(".env"); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	options := client.NewOptions()
	options.ApplyEnvironment()
	options.AddFlags(pflag.CommandLine)

	var f flags

	f.addFlags(pflag.CommandLine)

	pflag.Parse()

	logger, err := newLogger(f.verbosity)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger.WithName("init").Info("starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = logr.NewContext(ctx, logger)

	r, err := run(ctx, options, &f)
	if err != nil {
		logger.Error(err, "listing notifications failed")
		cancel()
		os.Exit(1) //nolint:gocritic
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(r); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if len(r.Violations) > 0 {
		os.Exit(2) //nolint:gocritic
	}
}
