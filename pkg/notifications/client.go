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

// Package notifications provides typed access to subscriptions,
// notifications and the field mapping catalog.
package notifications

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/notifications/pkg/openapi"
)

// Client wraps the generated API with status handling and defaults.
type Client struct {
	client openapi.ClientWithResponsesInterface
	now    func() time.Time
}

// New returns a new client.
func New(client openapi.ClientWithResponsesInterface) *Client {
	return &Client{
		client: client,
		now:    time.Now,
	}
}

func validateSubscription(request *openapi.Subscription) error {
	if !request.SubjectType.Valid() {
		return fmt.Errorf("%w: %q", openapi.ErrInvalidSubjectType, request.SubjectType)
	}

	return nil
}

// CreateSubscription creates a subscription and returns it as stored.
func (c *Client) CreateSubscription(ctx context.Context, request *openapi.Subscription) (*openapi.SubscriptionResponse, error) {
	if err := validateSubscription(request); err != nil {
		return nil, err
	}

	resp, err := c.client.PostSubscriptionsWithResponse(ctx, *request)
	if err != nil {
		return nil, err
	}

	var result *openapi.SubscriptionResponse

	switch resp.StatusCode() {
	case http.StatusOK:
		result = resp.JSON200
	case http.StatusCreated:
		result = resp.JSON201
	default:
		return nil, extractError(resp.HTTPResponse, resp.Body)
	}

	if result == nil {
		return nil, fmt.Errorf("%w: create subscription returned no subscription", ErrMalformedResponse)
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("subscription created", "id", result.Id, "name", result.Name)

	return result, nil
}

// ListSubscriptions lists a page of subscriptions.
func (c *Client) ListSubscriptions(ctx context.Context, page Page) (openapi.SubscriptionResponses, error) {
	resp, err := c.client.GetAllSubscriptionWithResponse(ctx, page.params())
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, extractError(resp.HTTPResponse, resp.Body)
	}

	if resp.JSON200 == nil {
		return nil, fmt.Errorf("%w: list subscriptions returned no collection", ErrMalformedResponse)
	}

	return *resp.JSON200, nil
}

// GetSubscription reads a subscription by ID.
func (c *Client) GetSubscription(ctx context.Context, id string) (*openapi.SubscriptionResponse, error) {
	resp, err := c.client.GetSubscriptionWithResponse(ctx, id)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, extractError(resp.HTTPResponse, resp.Body)
	}

	if resp.JSON200 == nil {
		return nil, fmt.Errorf("%w: get subscription returned no subscription", ErrMalformedResponse)
	}

	return resp.JSON200, nil
}

// UpdateSubscription replaces all mutable fields of a subscription.
func (c *Client) UpdateSubscription(ctx context.Context, id string, request *openapi.Subscription) (*openapi.SubscriptionResponse, error) {
	if err := validateSubscription(request); err != nil {
		return nil, err
	}

	resp, err := c.client.UpdateSubscriptionWithResponse(ctx, id, *request)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, extractError(resp.HTTPResponse, resp.Body)
	}

	if resp.JSON200 == nil {
		return nil, fmt.Errorf("%w: update subscription returned no subscription", ErrMalformedResponse)
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("subscription updated", "id", id, "active", resp.JSON200.Active)

	return resp.JSON200, nil
}

// DeleteSubscription deletes a subscription.  Only 204 No Content is success.
func (c *Client) DeleteSubscription(ctx context.Context, id string) error {
	resp, err := c.client.DeleteSubscriptionsIdWithResponse(ctx, id)
	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusNoContent {
		return extractError(resp.HTTPResponse, resp.Body)
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("subscription deleted", "id", id)

	return nil
}

// ListNotifications lists notifications delivered within the query window.
// An inverted window is rejected before any request is made.
func (c *Client) ListNotifications(ctx context.Context, query NotificationQuery) (*openapi.NotificationsWrapper, error) {
	params, err := query.Params(c.now())
	if err != nil {
		return nil, err
	}

	resp, err := c.client.GetNotificationsWithResponse(ctx, params)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, extractError(resp.HTTPResponse, resp.Body)
	}

	if resp.JSON200 == nil {
		return nil, fmt.Errorf("%w: list notifications returned no wrapper", ErrMalformedResponse)
	}

	return resp.JSON200, nil
}

// ListFieldMappings returns the whole field mapping catalog.
func (c *Client) ListFieldMappings(ctx context.Context) (openapi.FieldMappings, error) {
	resp, err := c.client.GetFieldmappingsWithResponse(ctx)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, extractError(resp.HTTPResponse, resp.Body)
	}

	if resp.JSON200 == nil {
		return nil, fmt.Errorf("%w: list field mappings returned no catalog", ErrMalformedResponse)
	}

	return *resp.JSON200, nil
}
