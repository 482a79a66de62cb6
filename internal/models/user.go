package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	RoleMerchant = "MERCHANT"
	RoleOwner    = "WAREHOUSE_OWNER"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Email         string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string         `gorm:"not null" json:"-"`
	Roles         pq.StringArray `gorm:"type:text[];not null" json:"roles"`
	ContactNumber *string        `json:"contact_number,omitempty"`
	IsActive      bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// HasRole reports whether the user's role set contains role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole is the capability check: the caller passes the set of roles an
// operation permits, and membership of any one of them grants access.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}

// PrimaryRole projects a role set onto the single legacy label external
// consumers expect. Precedence: ADMIN > WAREHOUSE_OWNER > MERCHANT > default.
// The set stays the source of truth; this label is never stored.
func PrimaryRole(roles []string) string {
	has := func(want string) bool {
		for _, r := range roles {
			if r == want {
				return true
			}
		}
		return false
	}
	switch {
	case has(RoleAdmin):
		return "admin"
	case has(RoleOwner):
		return "owner"
	case has(RoleMerchant):
		return "merchant"
	default:
		return "user"
	}
}
