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

	"github.com/unikorn-cloud/notifications/pkg/openapi"

	"k8s.io/utils/ptr"
)

// Page selects a page of subscriptions.  Unset fields are omitted and the
// service applies its own defaults.
type Page struct {
	Offset *int
	Limit  *int
	Sort   *string
}

// DefaultPage returns the documented default paging.
func DefaultPage() Page {
	return Page{
		Offset: ptr.To(DefaultOffset),
		Limit:  ptr.To(DefaultLimit),
		Sort:   ptr.To(DefaultSort),
	}
}

func (p Page) params() *openapi.GetAllSubscriptionParams {
	return &openapi.GetAllSubscriptionParams{
		Offset: p.Offset,
		Limit:  p.Limit,
		Sort:   p.Sort,
	}
}

// NotificationQuery selects notifications delivered within a window.
type NotificationQuery struct {
	// StartDate defaults to DefaultWindow before EndDate.
	StartDate time.Time
	// EndDate defaults to now.
	EndDate time.Time
	// SubscriptionNames restricts results to these subscriptions.
	SubscriptionNames []string
	// PushStatus restricts results to these delivery states.
	PushStatus []string
	// Offset and Limit are omitted when unset.
	Offset *int
	Limit  *int
}

// Window returns the effective start and end dates.
func (q NotificationQuery) Window(now time.Time) (time.Time, time.Time, error) {
	end := q.EndDate
	if end.IsZero() {
		end = now
	}

	start := q.StartDate
	if start.IsZero() {
		start = end.Add(-DefaultWindow)
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvalidWindow
	}

	return start, end, nil
}

// EffectiveOffset is the offset the service is expected to apply.
func (q NotificationQuery) EffectiveOffset() int {
	if q.Offset != nil {
		return *q.Offset
	}

	return DefaultOffset
}

// EffectiveLimit is the limit the service is expected to apply.
func (q NotificationQuery) EffectiveLimit() int {
	if q.Limit != nil {
		return *q.Limit
	}

	return DefaultLimit
}

// Params converts the query to request parameters, with empty filters omitted.
func (q NotificationQuery) Params(now time.Time) (*openapi.GetNotificationsParams, error) {
	start, end, err := q.Window(now)
	if err != nil {
		return nil, err
	}

	params := &openapi.GetNotificationsParams{
		StartDate: start.UTC(),
		EndDate:   end.UTC(),
		Offset:    q.Offset,
		Limit:     q.Limit,
	}

	if len(q.SubscriptionNames) > 0 {
		params.SubscriptionNames = ptr.To(q.SubscriptionNames)
	}

	if len(q.PushStatus) > 0 {
		params.PushStatus = ptr.To(q.PushStatus)
	}

	return params, nil
}
