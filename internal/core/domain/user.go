package domain

// UserRole is the application-level role stored on the user profile.
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleClient     UserRole = "CLIENT"
	RoleAccountant UserRole = "ACCOUNTANT"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleAccountant:
		return true
	}
	return false
}

// CanManageAnyCompany reports whether the role may act on companies it does not own.
func (r UserRole) CanManageAnyCompany() bool {
	return r == RoleAdmin || r == RoleAccountant
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"id"` // Primary Key (UUID)
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	Plan         string   `json:"plan"`
	Status       string   `json:"status"`
	PasswordHash string   `json:"-"`
	AuditFields
}

// SessionUser is the caller identity resolved from a session cookie.
type SessionUser struct {
	UserID string   `json:"id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
}
