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
	"fmt"

	"github.com/unikorn-cloud/notifications/pkg/openapi"
)

// Content is the decoded, subject specific payload of a notification.
type Content interface {
	Subject() Subject
}

// AuthorizationContent is carried by PAYMENT_AUTHORIZATION notifications.
type AuthorizationContent struct {
	openapi.NotificationContent
}

func (*AuthorizationContent) Subject() Subject {
	return SubjectPaymentAuthorization
}

// PaymentUpdateContent is carried by PAYMENT_UPDATE notifications.
type PaymentUpdateContent struct {
	openapi.CommercialBpsNotificationContent
}

func (*PaymentUpdateContent) Subject() Subject {
	return SubjectPaymentUpdate
}

// DecodeContent decodes a notification's content according to its subject.
// Unrecognised subjects yield ErrUnknownSubject, payloads that cannot be
// decoded yield ErrContentDecode.
func DecodeContent(notification openapi.Notification) (Content, error) {
	switch Subject(notification.Subject) {
	case SubjectPaymentAuthorization:
		content, err := notification.Content.AsNotificationContent()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrContentDecode, notification.Subject, err)
		}

		return &AuthorizationContent{content}, nil
	case SubjectPaymentUpdate:
		content, err := notification.Content.AsCommercialBpsNotificationContent()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrContentDecode, notification.Subject, err)
		}

		return &PaymentUpdateContent{content}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownSubject, notification.Subject)
}
