package model

import "forno/internal/domain/entity"

// StaffProfile is the Firestore document shape of a staff account. The
// document ID is the identity provider's user id.
type StaffProfile struct {
	Name     string `firestore:"name"`
	Email    string `firestore:"email"`
	Role     string `firestore:"role"`
	Status   string `firestore:"status"`
	Avatar   string `firestore:"avatar,omitempty"`
	Fallback string `firestore:"fallback,omitempty"`
	FCMToken string `firestore:"fcmToken,omitempty"`
}

// FromStaffEntity converts a domain staff profile to its document shape.
func FromStaffEntity(profile *entity.StaffProfile) *StaffProfile {
	return &StaffProfile{
		Name:     profile.Name,
		Email:    profile.Email,
		Role:     string(profile.Role),
		Status:   string(profile.Status),
		Avatar:   profile.Avatar,
		Fallback: profile.Fallback,
		FCMToken: profile.FCMToken,
	}
}

// ToEntity converts the document back to a domain staff profile.
func (m *StaffProfile) ToEntity(id string) *entity.StaffProfile {
	return &entity.StaffProfile{
		ID:       id,
		Name:     m.Name,
		Email:    m.Email,
		Role:     entity.StaffRole(m.Role),
		Status:   entity.StaffStatus(m.Status),
		Avatar:   m.Avatar,
		Fallback: m.Fallback,
		FCMToken: m.FCMToken,
	}
}
