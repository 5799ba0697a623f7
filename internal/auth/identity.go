package auth

import (
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
)

// Identity is an authenticated caller context. A nil *Identity means
// the caller is anonymous.
type Identity struct {
	UserID   string
	Username string
	Roles    []string
}

// HasRole reports whether the identity carries the given role
func (i *Identity) HasRole(role string) bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the identity carries the Admin role
func (i *Identity) IsAdmin() bool {
	return i.HasRole(models.RoleAdmin)
}
