package domain

// Role values stored on account records. RoleAdmin is the only marker the
// role gate accepts.
const (
	RoleAdmin       = "Admin"
	RoleParticipant = "Participant"
)

// Account field names the services read.
const (
	FieldEmail = "email"
	FieldRole  = "role"
)

// NextRole returns the role a toggle moves to: Admin becomes Participant and
// anything else becomes Admin.
func NextRole(current string) string {
	if current == RoleAdmin {
		return RoleParticipant
	}
	return RoleAdmin
}

// IsAdmin reports whether the account document carries the admin marker.
// A nil document is never admin.
func IsAdmin(account Document) bool {
	if account == nil {
		return false
	}
	return account.String(FieldRole) == RoleAdmin
}
