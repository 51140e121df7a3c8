package firestore

import (
	"context"

	"forno/internal/domain/entity"
	"forno/internal/domain/repository"
	"forno/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type staffRepository struct {
	client *fs.Client
}

// NewStaffRepository creates a Firestore-backed staff repository. Profiles
// are keyed by the identity provider's user id rather than a generated one.
func NewStaffRepository(client *fs.Client) repository.StaffRepository {
	return &staffRepository{client: client}
}

func (r *staffRepository) Create(ctx context.Context, profile *entity.StaffProfile) error {
	_, err := r.client.Collection(usersCollection).Doc(profile.ID).Set(ctx, model.FromStaffEntity(profile))
	if err != nil {
		return errors.Wrap(err, "failed to create staff profile")
	}

	return nil
}

func (r *staffRepository) FindByID(ctx context.Context, id string) (*entity.StaffProfile, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to get staff profile")
	}

	var m model.StaffProfile
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode staff profile")
	}

	return m.ToEntity(snap.Ref.ID), nil
}

func (r *staffRepository) FindAll(ctx context.Context) ([]*entity.StaffProfile, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)

	return collectStaff(iter, "failed to list staff profiles")
}

func (r *staffRepository) FindApprovedByRoles(ctx context.Context, roles []entity.StaffRole) ([]*entity.StaffProfile, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	roleValues := make([]string, 0, len(roles))
	for _, role := range roles {
		roleValues = append(roleValues, string(role))
	}

	iter := r.client.Collection(usersCollection).
		Where("status", "==", string(entity.StaffApproved)).
		Where("role", "in", roleValues).
		Documents(ctx)

	return collectStaff(iter, "failed to query approved staff")
}

func (r *staffRepository) Update(ctx context.Context, profile *entity.StaffProfile) error {
	_, err := r.client.Collection(usersCollection).Doc(profile.ID).Set(ctx, model.FromStaffEntity(profile))
	if err != nil {
		return errors.Wrap(err, "failed to update staff profile")
	}

	return nil
}

func (r *staffRepository) SetFCMToken(ctx context.Context, id, token string) error {
	_, err := r.client.Collection(usersCollection).Doc(id).Update(ctx, []fs.Update{
		{Path: "fcmToken", Value: token},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrStaffNotFound
		}

		return errors.Wrap(err, "failed to set device token")
	}

	return nil
}

func (r *staffRepository) ClearFCMToken(ctx context.Context, id string) error {
	_, err := r.client.Collection(usersCollection).Doc(id).Update(ctx, []fs.Update{
		{Path: "fcmToken", Value: fs.Delete},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrStaffNotFound
		}

		return errors.Wrap(err, "failed to clear device token")
	}

	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(usersCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete staff profile")
	}

	return nil
}

func collectStaff(iter *fs.DocumentIterator, failMsg string) ([]*entity.StaffProfile, error) {
	defer iter.Stop()

	var profiles []*entity.StaffProfile
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, failMsg)
		}

		var m model.StaffProfile
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode staff profile")
		}
		profiles = append(profiles, m.ToEntity(snap.Ref.ID))
	}

	return profiles, nil
}
