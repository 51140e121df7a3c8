// Package notification delivers push messages through Firebase Cloud
// Messaging.
package notification

import (
	"context"
	"log/slog"

	"forno/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

type fcmSender struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewPushSender creates a PushSender backed by Firebase Cloud Messaging.
func NewPushSender(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.PushSender, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmSender{client: client, logger: logger}, nil
}

// Send pushes a single message to the given device token. A token FCM no
// longer recognizes is reported as service.ErrInvalidDeviceToken so the
// caller can drop it.
func (s *fcmSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	response, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsRegistrationTokenNotRegistered(err) || messaging.IsInvalidArgument(err) {
			return service.ErrInvalidDeviceToken
		}

		return errors.Wrap(err, "failed to send push message")
	}

	s.logger.Debug("push message sent", slog.String("response", response))

	return nil
}
