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

// Package fake provides an in-memory stand in for the notifications
// service, with just enough behaviour to exercise clients in unit tests.
package fake

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/unikorn-cloud/notifications/pkg/openapi"

	"k8s.io/utils/ptr"
)

const (
	defaultOffset = 1
	defaultLimit  = 5
)

// Server holds the service state.
type Server struct {
	lock          sync.Mutex
	subscriptions map[string]openapi.SubscriptionResponse
	notifications []openapi.Notification
	fieldMappings openapi.FieldMappings
	requests      []*http.Request

	requireJSON          bool
	requireAuthorization bool
}

// Option configures the server.
type Option func(*Server)

// WithoutFormatCheck accepts requests without Format=JSON.
func WithoutFormatCheck() Option {
	return func(s *Server) {
		s.requireJSON = false
	}
}

// WithoutAuthorization accepts requests that carry no OAuth1 header.
func WithoutAuthorization() Option {
	return func(s *Server) {
		s.requireAuthorization = false
	}
}

// WithNotifications seeds delivered notifications.
func WithNotifications(notifications ...openapi.Notification) Option {
	return func(s *Server) {
		s.notifications = append(s.notifications, notifications...)
	}
}

// WithFieldMappings replaces the field mapping catalog.
func WithFieldMappings(fieldMappings openapi.FieldMappings) Option {
	return func(s *Server) {
		s.fieldMappings = fieldMappings
	}
}

// New returns a new server with the standard field mapping catalog.
func New(opts ...Option) *Server {
	s := &Server{
		subscriptions:        map[string]openapi.SubscriptionResponse{},
		fieldMappings:        Catalog(),
		requireJSON:          true,
		requireAuthorization: true,
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// Catalog returns the field mappings served by default.
func Catalog() openapi.FieldMappings {
	mapping := func(name, displayName, contentType string) openapi.FieldMapping {
		return openapi.FieldMapping{
			Name:        name,
			DisplayName: ptr.To(displayName),
			SubjectType: ptr.To("PAYMENT_AUTHORIZATION"),
			ContentType: ptr.To(contentType),
		}
	}

	return openapi.FieldMappings{
		mapping("messageTypeIndicator", "Message type indicator", "TEXT"),
		mapping("inControlOnBehalfServiceResult.vcnAuthorizationCode", "In Control VCN service result code", "TEXT"),
		mapping("purchaseRequest.rcnAlias", "Purchase request RCN alias", "TEXT"),
		mapping("purchaseRequest.companyId", "Purchase request company id", "INTEGER"),
		mapping("purchaseRequest.companyGuid", "Purchase request company GUID", "TEXT"),
		mapping("purchaseRequest.issuerGuid", "Purchase request issuer GUID", "TEXT"),
		mapping("purchaseRequest.currencyCode", "Purchase request currency code", "TEXT"),
	}
}

// Handler returns the HTTP interface.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(s.record, s.checkFormat, s.checkAuthorization)

	router.Get("/subscriptions", s.listSubscriptions)
	router.Post("/subscriptions", s.createSubscription)
	router.Get("/subscriptions/{id}", s.getSubscription)
	router.Put("/subscriptions/{id}", s.updateSubscription)
	router.Delete("/subscriptions/{id}", s.deleteSubscription)
	router.Get("/notifications", s.listNotifications)
	router.Get("/fieldmappings", s.listFieldMappings)

	return router
}

// Requests returns every request received so far.
func (s *Server) Requests() []*http.Request {
	s.lock.Lock()
	defer s.lock.Unlock()

	return slices.Clone(s.requests)
}

// Subscription returns a stored subscription.
func (s *Server) Subscription(id string) (openapi.SubscriptionResponse, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	subscription, ok := s.subscriptions[id]

	return subscription, ok
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		s.requests = append(s.requests, r.Clone(r.Context()))
		s.lock.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) checkFormat(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.requireJSON && r.URL.Query().Get("Format") != "JSON" {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<Errors><Error><Description>XML is not supported by this fake</Description></Error></Errors>"))

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) checkAuthorization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.requireAuthorization && !strings.HasPrefix(r.Header.Get("Authorization"), "OAuth ") {
			writeError(w, http.StatusUnauthorized, "AUTHENTICATION_FAILED", "missing OAuth1 authorization")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, reason, description string) {
	errs := openapi.Errors{
		Errors: &struct {
			Error *[]openapi.Error `json:"Error,omitempty"`
		}{
			Error: &[]openapi.Error{
				{
					Source:      ptr.To("CEN"),
					ReasonCode:  ptr.To(reason),
					Description: ptr.To(description),
					Recoverable: ptr.To(false),
				},
			},
		},
	}

	writeJSON(w, status, errs)
}

func intParameter(r *http.Request, name string, defaultValue, minimum int) (int, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return defaultValue, true
	}

	i, err := strconv.Atoi(value)
	if err != nil || i < minimum {
		return 0, false
	}

	return i, true
}

func timeParameter(r *http.Request, name string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, r.URL.Query().Get(name))
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// paginate applies a one based offset.
func paginate[T any](items []T, offset, limit int) []T {
	start := min(offset-1, len(items))
	end := min(start+limit, len(items))

	return items[start:end]
}

func (s *Server) fieldMapping(name string) (openapi.FieldMapping, bool) {
	for _, mapping := range s.fieldMappings {
		if mapping.Name == name {
			return mapping, true
		}
	}

	return openapi.FieldMapping{}, false
}

func (s *Server) specifications(in []openapi.SpecificationRequest) ([]openapi.SpecificationResponse, bool) {
	out := make([]openapi.SpecificationResponse, 0, len(in))

	for _, request := range in {
		response := openapi.SpecificationResponse{
			Id:              ptr.To(uuid.NewString()),
			Type:            request.Type,
			Operator:        request.Operator,
			FieldOperator:   request.FieldOperator,
			ExpectedContent: request.ExpectedContent,
		}

		if request.FieldMappingName != nil {
			mapping, ok := s.fieldMapping(*request.FieldMappingName)
			if !ok {
				return nil, false
			}

			response.FieldMapping = &mapping
		}

		if request.Children != nil {
			children, ok := s.specifications(*request.Children)
			if !ok {
				return nil, false
			}

			response.Children = &children
		}

		out = append(out, response)
	}

	return out, true
}

// store validates and converts a request, holding the lock.
func (s *Server) store(w http.ResponseWriter, r *http.Request, id string) (openapi.SubscriptionResponse, bool) {
	var request openapi.Subscription

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())

		return openapi.SubscriptionResponse{}, false
	}

	if request.Name == "" || !request.SubjectType.Valid() {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "name and a valid subjectType are required")

		return openapi.SubscriptionResponse{}, false
	}

	var specifications []openapi.SpecificationRequest

	if request.Specifications != nil {
		specifications = *request.Specifications
	}

	responses, ok := s.specifications(specifications)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_FIELD_MAPPING", "specification references an unknown field mapping")

		return openapi.SubscriptionResponse{}, false
	}

	subscription := openapi.SubscriptionResponse{
		Id:             id,
		Name:           request.Name,
		SubjectType:    request.SubjectType,
		Active:         request.Active,
		Specifications: &responses,
	}

	s.subscriptions[id] = subscription

	return subscription, true
}

func (s *Server) createSubscription(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	subscription, ok := s.store(w, r, uuid.NewString())
	if !ok {
		return
	}

	writeJSON(w, http.StatusCreated, subscription)
}

func (s *Server) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	offset, ok := intParameter(r, "offset", defaultOffset, 0)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_OFFSET", "offset must be a non-negative integer")

		return
	}

	limit, ok := intParameter(r, "limit", defaultLimit, 1)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer")

		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	subscriptions := make(openapi.SubscriptionResponses, 0, len(s.subscriptions))

	for _, subscription := range s.subscriptions {
		subscriptions = append(subscriptions, subscription)
	}

	slices.SortFunc(subscriptions, func(a, b openapi.SubscriptionResponse) int {
		return strings.Compare(a.Name, b.Name)
	})

	writeJSON(w, http.StatusOK, paginate(subscriptions, max(offset, 1), limit))
}

func (s *Server) getSubscription(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	subscription, ok := s.subscriptions[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "subscription not found")

		return
	}

	writeJSON(w, http.StatusOK, subscription)
}

func (s *Server) updateSubscription(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	id := chi.URLParam(r, "id")

	if _, ok := s.subscriptions[id]; !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "subscription not found")

		return
	}

	subscription, ok := s.store(w, r, id)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, subscription)
}

func (s *Server) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	id := chi.URLParam(r, "id")

	if _, ok := s.subscriptions[id]; !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "subscription not found")

		return
	}

	delete(s.subscriptions, id)

	w.WriteHeader(http.StatusNoContent)
}

//nolint:cyclop
func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	start, ok := timeParameter(r, "startDate")
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_START_DATE", "startDate is required")

		return
	}

	end, ok := timeParameter(r, "endDate")
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_END_DATE", "endDate is required")

		return
	}

	if start.After(end) {
		writeError(w, http.StatusBadRequest, "INVALID_DATE_RANGE", "startDate must not be after endDate")

		return
	}

	offset, ok := intParameter(r, "offset", defaultOffset, 0)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_OFFSET", "offset must be a non-negative integer")

		return
	}

	limit, ok := intParameter(r, "limit", defaultLimit, 1)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer")

		return
	}

	names := r.URL.Query()["subscriptionNames"]
	pushStatus := r.URL.Query()["pushStatus"]

	s.lock.Lock()
	defer s.lock.Unlock()

	var matched []openapi.Notification

	for _, notification := range s.notifications {
		if notification.CreatedDate != nil && (notification.CreatedDate.Before(start) || notification.CreatedDate.After(end)) {
			continue
		}

		if len(names) > 0 && (notification.SubscriptionName == nil || !slices.Contains(names, *notification.SubscriptionName)) {
			continue
		}

		if len(pushStatus) > 0 && (notification.PushStatus == nil || !slices.Contains(pushStatus, *notification.PushStatus)) {
			continue
		}

		matched = append(matched, notification)
	}

	page := paginate(matched, max(offset, 1), limit)

	if page == nil {
		page = []openapi.Notification{}
	}

	writeJSON(w, http.StatusOK, openapi.NotificationsWrapper{
		Count:         len(page),
		Offset:        offset,
		Limit:         limit,
		Total:         len(matched),
		Notifications: page,
	})
}

func (s *Server) listFieldMappings(w http.ResponseWriter, _ *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, http.StatusOK, s.fieldMappings)
}
