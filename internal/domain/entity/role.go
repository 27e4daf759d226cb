// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer places and pays orders.
	RoleCustomer Role = "Customer"
	// RoleSeller lists products and sees orders containing them.
	RoleSeller Role = "Seller"
	// RoleAdmin manages products and sees orders containing their products.
	RoleAdmin Role = "Admin"
	// RoleSuperAdmin sees everything and administers accounts.
	RoleSuperAdmin Role = "SuperAdmin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// CanManageProducts reports whether the role may create and edit catalog entries.
func (r Role) CanManageProducts() bool {
	return r == RoleSeller || r == RoleAdmin || r == RoleSuperAdmin
}

// IsStaff reports whether the role is administered through the staff endpoints.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSeller
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for query parameters.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// SelfRegistrableRoles are the roles a user may pick at signup.
var SelfRegistrableRoles = Roles{RoleCustomer, RoleSeller}
