package openapi

import (
	"bytes"
	"errors"
)

var ErrInvalidSubjectType = errors.New("invalid subject type: must be one of AUTHORIZATION or PAYMENT_UPDATE")

// Valid reports whether the subject type is one the service accepts.
func (t SubscriptionSubjectType) Valid() bool {
	switch t {
	case SubscriptionSubjectTypeAUTHORIZATION, SubscriptionSubjectTypePAYMENTUPDATE:
		return true
	}

	return false
}

// IsEmpty is true when the content was absent, null or an empty object.
func (t Notification_Content) IsEmpty() bool {
	trimmed := bytes.TrimSpace(t.union)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("{}"))
}
