package entity

// StaffRole gates which mutations a staff member may perform.
type StaffRole string

const (
	RoleAdministrator StaffRole = "Administrator"
	RoleEmployee      StaffRole = "Employee"
)

// Valid reports whether the role is one of the known values.
func (r StaffRole) Valid() bool {
	return r == RoleAdministrator || r == RoleEmployee
}

// StaffStatus is the approval state of a staff account. Only Approved
// accounts may operate the dashboard.
type StaffStatus string

const (
	StaffApproved StaffStatus = "Approved"
	StaffPending  StaffStatus = "Pending"
	StaffRejected StaffStatus = "Rejected"
)

// Valid reports whether the status is one of the known values.
func (s StaffStatus) Valid() bool {
	return s == StaffApproved || s == StaffPending || s == StaffRejected
}

// StaffProfile is a dashboard account, keyed by the identity provider's
// stable user id.
type StaffProfile struct {
	ID       string      `json:"id"` // Stable identity id issued by the auth provider.
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     StaffRole   `json:"role"`
	Status   StaffStatus `json:"status"`
	Avatar   string      `json:"avatar,omitempty"`
	Fallback string      `json:"fallback,omitempty"`  // Initials shown when the avatar is missing.
	FCMToken string      `json:"fcm_token,omitempty"` // Device push token, empty when none registered.
}
