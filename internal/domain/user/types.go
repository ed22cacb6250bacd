package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the platform-level actor role carried in access tokens.
// Token issuance itself belongs to the external auth service; this service
// only validates tokens and enforces the role hierarchy.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleShopOwner Role = "shop_owner"
	RoleAdmin     Role = "admin"
)

func NewRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleCustomer, RoleShopOwner, RoleAdmin:
		return Role(raw), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
