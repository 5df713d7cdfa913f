package auth

import (
	"errors"
	"slices"

	"autozar_backend/internal/models"
)

const (
	RoleAdmin  = string(models.UserRoleAdmin)
	RoleSeller = string(models.UserRoleSeller)
)

const (
	PermListingsWriteSelf = "listings:write:self"
	PermListingsReadSelf  = "listings:read:self"
	PermListingsModerate  = "listings:moderate"
	PermFavoritesSelf     = "favorites:write:self"
)

// Permissions maps a role to what it may do.
var Permissions = map[string][]string{
	RoleAdmin: {
		PermListingsWriteSelf,
		PermListingsReadSelf,
		PermListingsModerate,
		PermFavoritesSelf,
	},
	RoleSeller: {
		PermListingsWriteSelf,
		PermListingsReadSelf,
		PermFavoritesSelf,
	},
}

func HasPermission(role, permission string) bool {
	return slices.Contains(Permissions[role], permission)
}

func CanPerformAction(claims *Claims, permission string) bool {
	return claims != nil && HasPermission(claims.Role, permission)
}

func IsAdmin(claims *Claims) bool {
	return claims != nil && claims.Role == RoleAdmin
}

func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RoleSeller:
		return nil
	default:
		return errors.New("invalid role")
	}
}
