// Package service defines interfaces for external collaborators.
package service

import (
	"context"
	"errors"
)

// ErrInvalidDeviceToken is returned by PushSender when the provider reports
// the device token invalid or unregistered. The caller is expected to drop
// the token from the recipient's profile.
var ErrInvalidDeviceToken = errors.New("invalid or unregistered device token")

// PushSender delivers push notifications to a single device token.
// Delivery is best-effort and never on the critical path of a mutation.
type PushSender interface {
	// Send submits one push message. The data payload carries the deep link
	// and a dedup tag so the client can collapse repeated deliveries.
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}
