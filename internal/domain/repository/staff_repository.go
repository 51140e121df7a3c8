package repository

import (
	"context"
	"errors"

	"forno/internal/domain/entity"
)

// ErrStaffNotFound is returned when a staff profile is not found.
var ErrStaffNotFound = errors.New("staff profile not found")

// StaffRepository defines the interface for staff account store operations.
type StaffRepository interface {
	// Create persists a new staff profile under its identity id.
	Create(ctx context.Context, profile *entity.StaffProfile) error

	// FindByID retrieves a staff profile by its identity id.
	FindByID(ctx context.Context, id string) (*entity.StaffProfile, error)

	// FindAll retrieves all staff profiles.
	FindAll(ctx context.Context) ([]*entity.StaffProfile, error)

	// FindApprovedByRoles retrieves Approved profiles holding any of the
	// given roles.
	FindApprovedByRoles(ctx context.Context, roles []entity.StaffRole) ([]*entity.StaffProfile, error)

	// Update rewrites an existing staff profile document.
	Update(ctx context.Context, profile *entity.StaffProfile) error

	// SetFCMToken stores the device push token on the profile.
	SetFCMToken(ctx context.Context, id, token string) error

	// ClearFCMToken removes the device push token from the profile. Used to
	// self-heal after the push provider reports the token invalid.
	ClearFCMToken(ctx context.Context, id string) error

	// Delete removes a staff profile document.
	Delete(ctx context.Context, id string) error
}
