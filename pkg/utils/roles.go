package utils

import "fmt"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Stored role ids. The storefront sends and receives these as role_id.
const (
	AdminRoleID = 1
	UserRoleID  = 2
)

func RoleFromID(id int) (Role, error) {
	switch id {
	case AdminRoleID:
		return RoleAdmin, nil
	case UserRoleID:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("%w: role_id %d", ErrInvalidRole, id)
	}
}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

func (r Role) ID() int {
	if r == RoleAdmin {
		return AdminRoleID
	}
	return UserRoleID
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }
