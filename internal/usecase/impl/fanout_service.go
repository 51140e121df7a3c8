package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"forno/config"
	"forno/internal/domain/entity"
	"forno/internal/domain/repository"
	"forno/internal/domain/service"
	"forno/internal/usecase"

	"github.com/pkg/errors"
)

type fanoutService struct {
	logger           *slog.Logger
	staffRepo        repository.StaffRepository
	notificationRepo repository.NotificationRepository
	pushSender       service.PushSender // nil when push delivery is disabled
	cfg              *config.NotificationsConfig
}

// NewEventFanout creates the notification fan-out engine.
func NewEventFanout(
	logger *slog.Logger,
	staffRepo repository.StaffRepository,
	notificationRepo repository.NotificationRepository,
	pushSender service.PushSender,
	cfg *config.NotificationsConfig,
) usecase.EventFanout {
	return &fanoutService{
		logger:           logger,
		staffRepo:        staffRepo,
		notificationRepo: notificationRepo,
		pushSender:       pushSender,
		cfg:              cfg,
	}
}

// Dispatch resolves the audience for the event and delivers one persisted
// notification plus a best-effort push per recipient. Failures are logged
// and swallowed: fan-out must never fail the mutation that raised the event.
func (s *fanoutService) Dispatch(ctx context.Context, event entity.Event) {
	recipients, err := s.resolveAudience(ctx, event)
	if err != nil {
		s.logger.Error("fan-out audience resolution failed",
			slog.String("event", string(event.Type)),
			slog.Any("error", err),
		)

		return
	}

	if len(recipients) == 0 {
		return
	}

	title, message := composeMessage(event)
	relatedURL := s.relatedURL(event)
	priority := event.Type.Priority()
	tag := dedupTag(event)

	var wg sync.WaitGroup
	for _, recipient := range recipients {
		wg.Add(1)
		go func(recipient *entity.StaffProfile) {
			defer wg.Done()
			s.notifyRecipient(ctx, recipient, title, message, relatedURL, priority, tag)
		}(recipient)
	}
	wg.Wait()
}

// resolveAudience computes the deduplicated recipient set for the event.
func (s *fanoutService) resolveAudience(ctx context.Context, event entity.Event) ([]*entity.StaffProfile, error) {
	var roles []entity.StaffRole

	switch event.Type {
	case entity.EventOrderCreated, entity.EventOrderEdited, entity.EventOrderReady, entity.EventOrderCancelled:
		roles = []entity.StaffRole{entity.RoleAdministrator, entity.RoleEmployee}
	case entity.EventOrderDelivered, entity.EventNewUserRegistered:
		roles = []entity.StaffRole{entity.RoleAdministrator}
	case entity.EventUserStatusChanged:
		// Only the affected account is notified, and only for a decision.
		if event.Staff == nil {
			return nil, errors.New("user status event carries no subject")
		}
		if event.Staff.Status != entity.StaffApproved && event.Staff.Status != entity.StaffRejected {
			return nil, nil
		}

		return []*entity.StaffProfile{event.Staff}, nil
	default:
		return nil, errors.Errorf("unknown event type %q", event.Type)
	}

	matched, err := s.staffRepo.FindApprovedByRoles(ctx, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query audience")
	}

	// A profile matching through multiple roles is notified exactly once.
	seen := make(map[string]struct{}, len(matched))
	recipients := make([]*entity.StaffProfile, 0, len(matched))
	for _, profile := range matched {
		if _, ok := seen[profile.ID]; ok {
			continue
		}
		seen[profile.ID] = struct{}{}
		recipients = append(recipients, profile)
	}

	return recipients, nil
}

// notifyRecipient persists the in-app notification and attempts the push.
// The two side effects are independent: a failed write does not stop the
// push attempt, and vice versa.
func (s *fanoutService) notifyRecipient(
	ctx context.Context,
	recipient *entity.StaffProfile,
	title, message, relatedURL string,
	priority entity.NotificationPriority,
	tag string,
) {
	notification := &entity.Notification{
		UserID:     recipient.ID,
		Message:    message,
		RelatedURL: relatedURL,
		IsRead:     false,
		Timestamp:  time.Now().UTC(),
		Priority:   priority,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Error("failed to persist notification",
			slog.String("recipient", recipient.ID),
			slog.Any("error", err),
		)
	}

	if s.pushSender == nil || recipient.FCMToken == "" {
		return
	}

	data := map[string]string{
		"url":  relatedURL,
		"tag":  tag,
		"icon": s.cfg.Icon,
	}

	if err := s.pushSender.Send(ctx, recipient.FCMToken, title, message, data); err != nil {
		if errors.Is(err, service.ErrInvalidDeviceToken) {
			// Self-heal: drop the dead token so we stop pushing into the void.
			if clearErr := s.staffRepo.ClearFCMToken(ctx, recipient.ID); clearErr != nil {
				s.logger.Error("failed to clear invalid device token",
					slog.String("recipient", recipient.ID),
					slog.Any("error", clearErr),
				)
			}

			return
		}

		s.logger.Warn("push delivery failed",
			slog.String("recipient", recipient.ID),
			slog.Any("error", err),
		)
	}
}

// composeMessage builds the notification title and body for the event.
func composeMessage(event entity.Event) (title, message string) {
	switch event.Type {
	case entity.EventOrderCreated:
		return "New order", fmt.Sprintf("New order #%d from %s", event.Order.OrderNumber, event.Order.CustomerName)
	case entity.EventOrderEdited:
		return "Order edited", fmt.Sprintf("Order #%d was edited", event.Order.OrderNumber)
	case entity.EventOrderReady:
		return "Order ready", fmt.Sprintf("Order #%d is ready", event.Order.OrderNumber)
	case entity.EventOrderCancelled:
		return "Order cancelled", fmt.Sprintf("Order #%d was cancelled", event.Order.OrderNumber)
	case entity.EventOrderDelivered:
		return "Order delivered", fmt.Sprintf("Order #%d was delivered", event.Order.OrderNumber)
	case entity.EventUserStatusChanged:
		if event.Staff.Status == entity.StaffApproved {
			return "Account approved", "Your account has been approved, welcome aboard"
		}

		return "Account rejected", "Your account registration was rejected"
	case entity.EventNewUserRegistered:
		return "New registration", fmt.Sprintf("%s registered and is awaiting approval", event.Staff.Name)
	default:
		return "", ""
	}
}

// relatedURL builds the deep link the notification points at.
func (s *fanoutService) relatedURL(event entity.Event) string {
	switch event.Type {
	case entity.EventUserStatusChanged:
		return s.cfg.BaseURL + "/profile"
	case entity.EventNewUserRegistered:
		return s.cfg.BaseURL + "/admin/users"
	default:
		return s.cfg.BaseURL + "/orders"
	}
}

// dedupTag lets the client collapse repeated pushes for one event+subject.
func dedupTag(event entity.Event) string {
	if event.Order != nil {
		return fmt.Sprintf("%s-%s", event.Type, event.Order.ID)
	}
	if event.Staff != nil {
		return fmt.Sprintf("%s-%s", event.Type, event.Staff.ID)
	}

	return string(event.Type)
}
