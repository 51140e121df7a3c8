package impl

import (
	"context"
	"log/slog"
	"strings"

	"forno/internal/domain/entity"
	domainerrors "forno/internal/domain/errors"
	"forno/internal/domain/repository"
	"forno/internal/usecase"

	"github.com/pkg/errors"
)

type staffService struct {
	logger    *slog.Logger
	staffRepo repository.StaffRepository
	fanout    usecase.EventFanout
}

// NewStaffService creates the staff account service.
func NewStaffService(
	logger *slog.Logger,
	staffRepo repository.StaffRepository,
	fanout usecase.EventFanout,
) usecase.StaffUsecase {
	return &staffService{
		logger:    logger,
		staffRepo: staffRepo,
		fanout:    fanout,
	}
}

// Register creates a Pending Employee profile for a fresh identity. Calling
// it again for a known identity just returns the existing profile, so a
// re-login never duplicates accounts.
func (s *staffService) Register(ctx context.Context, uid string, input usecase.RegisterStaffInput) (*entity.StaffProfile, error) {
	existing, err := s.staffRepo.FindByID(ctx, uid)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrStaffNotFound) {
		return nil, errors.Wrap(err, "failed to look up staff profile")
	}

	profile := &entity.StaffProfile{
		ID:       uid,
		Name:     input.Name,
		Email:    input.Email,
		Role:     entity.RoleEmployee,
		Status:   entity.StaffPending,
		Avatar:   input.Avatar,
		Fallback: initials(input.Name),
	}

	if err := s.staffRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create staff profile")
	}

	s.fanout.Dispatch(ctx, entity.Event{Type: entity.EventNewUserRegistered, Staff: profile})

	return profile, nil
}

// GetProfile returns the profile for an identity id.
func (s *staffService) GetProfile(ctx context.Context, uid string) (*entity.StaffProfile, error) {
	profile, err := s.staffRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to load staff profile")
	}

	return profile, nil
}

// List returns all staff profiles.
func (s *staffService) List(ctx context.Context) ([]*entity.StaffProfile, error) {
	profiles, err := s.staffRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff profiles")
	}

	return profiles, nil
}

// Update applies role/status/name changes and notifies the affected account
// when its approval status was decided.
func (s *staffService) Update(ctx context.Context, id string, input usecase.UpdateStaffInput) (*entity.StaffProfile, error) {
	profile, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to load staff profile")
	}

	statusChanged := false
	if input.Name != nil {
		profile.Name = *input.Name
		profile.Fallback = initials(*input.Name)
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
		}
		profile.Role = *input.Role
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status")
		}
		statusChanged = *input.Status != profile.Status
		profile.Status = *input.Status
	}

	if err := s.staffRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update staff profile")
	}

	if statusChanged {
		s.fanout.Dispatch(ctx, entity.Event{Type: entity.EventUserStatusChanged, Staff: profile})
	}

	return profile, nil
}

// Delete removes a staff profile.
func (s *staffService) Delete(ctx context.Context, id string) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return domainerrors.ErrStaffNotFound
		}

		return errors.Wrap(err, "failed to delete staff profile")
	}

	return nil
}

// SetDeviceToken registers the caller's push token.
func (s *staffService) SetDeviceToken(ctx context.Context, uid, token string) error {
	if strings.TrimSpace(token) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("device token must not be empty")
	}

	if err := s.staffRepo.SetFCMToken(ctx, uid, token); err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return domainerrors.ErrStaffNotFound
		}

		return errors.Wrap(err, "failed to store device token")
	}

	return nil
}

// initials derives the avatar fallback from the display name, e.g.
// "Mario Rossi" becomes "MR".
func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		b.WriteRune(runes[0])
		if b.Len() >= 2 {
			break
		}
	}

	return strings.ToUpper(b.String())
}
