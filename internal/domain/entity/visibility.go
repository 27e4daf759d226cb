package entity

import "github.com/google/uuid"

// VisibilityScope selects which orders a requester may list or view.
type VisibilityScope int

const (
	// ScopeAll grants access to every order.
	ScopeAll VisibilityScope = iota
	// ScopeProductOwner grants access to orders with at least one line on a product the user owns.
	ScopeProductOwner
	// ScopeOrderOwner grants access to the orders the user placed.
	ScopeOrderOwner
)

// Visibility is the resolved order visibility of one requester.
type Visibility struct {
	Scope  VisibilityScope
	UserID uuid.UUID
}

// VisibilityFor is the single order visibility policy, evaluated per request.
func VisibilityFor(p Principal) Visibility {
	switch p.Role {
	case RoleSuperAdmin:
		return Visibility{Scope: ScopeAll, UserID: p.UserID}
	case RoleAdmin, RoleSeller:
		return Visibility{Scope: ScopeProductOwner, UserID: p.UserID}
	default:
		return Visibility{Scope: ScopeOrderOwner, UserID: p.UserID}
	}
}

// Allows reports whether the order is inside the visibility. productOwners maps
// the order's product ids to their owners; it is only consulted for ScopeProductOwner.
func (v Visibility) Allows(order *Order, productOwners map[uuid.UUID]uuid.UUID) bool {
	switch v.Scope {
	case ScopeAll:
		return true
	case ScopeProductOwner:
		for _, line := range order.Lines {
			if owner, ok := productOwners[line.ProductID]; ok && owner == v.UserID {
				return true
			}
		}

		return false
	default:
		return order.OwnerID == v.UserID
	}
}
