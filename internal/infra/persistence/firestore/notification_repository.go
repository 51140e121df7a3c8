package firestore

import (
	"context"
	"sort"

	"forno/internal/domain/entity"
	"forno/internal/domain/repository"
	"forno/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type notificationRepository struct {
	client *fs.Client
}

// NewNotificationRepository creates a Firestore-backed notification repository.
func NewNotificationRepository(client *fs.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	doc, _, err := r.client.Collection(notificationsCollection).Add(ctx, model.FromNotificationEntity(notification))
	if err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	notification.ID = doc.ID

	return nil
}

func (r *notificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	snap, err := r.client.Collection(notificationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to get notification")
	}

	var m model.Notification
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode notification")
	}

	return m.ToEntity(snap.Ref.ID), nil
}

func (r *notificationRepository) FindUnreadByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	iter := r.client.Collection(notificationsCollection).
		Where("userId", "==", userID).
		Where("isRead", "==", false).
		Documents(ctx)
	defer iter.Stop()

	var notifications []*entity.Notification
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to query unread notifications")
		}

		var m model.Notification
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification")
		}
		notifications = append(notifications, m.ToEntity(snap.Ref.ID))
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})

	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection(notificationsCollection).Doc(id).Update(ctx, []fs.Update{
		{Path: "isRead", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

func (r *notificationRepository) MarkAllReadForUser(ctx context.Context, userID string) error {
	iter := r.client.Collection(notificationsCollection).
		Where("userId", "==", userID).
		Where("isRead", "==", false).
		Documents(ctx)
	defer iter.Stop()

	var refs []*fs.DocumentRef
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to query unread notifications")
		}
		refs = append(refs, snap.Ref)
	}

	for start := 0; start < len(refs); start += maxBatchWrites {
		end := start + maxBatchWrites
		if end > len(refs) {
			end = len(refs)
		}

		batch := r.client.Batch()
		for _, ref := range refs[start:end] {
			batch.Update(ref, []fs.Update{{Path: "isRead", Value: true}})
		}

		if _, err := batch.Commit(ctx); err != nil {
			return errors.Wrap(err, "failed to commit mark-all-read batch")
		}
	}

	return nil
}
