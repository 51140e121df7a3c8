package usecase

import (
	"context"

	"forno/internal/domain/entity"
)

// RegisterStaffInput is the payload for a first-time staff registration.
type RegisterStaffInput struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Avatar string `json:"avatar,omitempty"`
}

// UpdateStaffInput is the payload for an administrator updating an account.
// Nil fields are left untouched.
type UpdateStaffInput struct {
	Name   *string             `json:"name,omitempty"`
	Role   *entity.StaffRole   `json:"role,omitempty" validate:"omitempty,oneof=Administrator Employee"`
	Status *entity.StaffStatus `json:"status,omitempty" validate:"omitempty,oneof=Approved Pending Rejected"`
}

// StaffUsecase owns staff account management.
type StaffUsecase interface {
	// Register creates a Pending Employee profile for a fresh identity and
	// notifies approved administrators.
	Register(ctx context.Context, uid string, input RegisterStaffInput) (*entity.StaffProfile, error)

	// GetProfile returns the profile for an identity id.
	GetProfile(ctx context.Context, uid string) (*entity.StaffProfile, error)

	// List returns all staff profiles.
	List(ctx context.Context) ([]*entity.StaffProfile, error)

	// Update applies role/status/name changes. An approval-status change
	// raises UserStatusChanged towards the affected account.
	Update(ctx context.Context, id string, input UpdateStaffInput) (*entity.StaffProfile, error)

	// Delete removes a staff profile.
	Delete(ctx context.Context, id string) error

	// SetDeviceToken registers the caller's push token.
	SetDeviceToken(ctx context.Context, uid, token string) error
}
