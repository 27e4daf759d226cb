package entity

import "github.com/google/uuid"

// Principal is the authenticated caller of an operation, resolved once per request.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// IsZero reports whether no identity was resolved.
func (p Principal) IsZero() bool {
	return p.UserID == uuid.Nil
}
