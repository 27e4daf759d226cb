package entity

import (
	"time"

	"github.com/google/uuid"
)

// MinLevel is the lowest administrative ranking a user can hold.
const MinLevel = 1

// User is an account of the system.
type User struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Username      string     // Unique login name.
	PasswordHash  string     // bcrypt hash of the password.
	Role          Role       // Exactly one role per account.
	IsActive      bool       // Deactivated users cannot log in and their products are hidden.
	Level         int        // Administrative ranking, never below MinLevel.
	DeactivatedAt *time.Time // When the account was last deactivated.
	DeactivatedBy *uuid.UUID // Who deactivated the account.
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int // Optimistic concurrency stamp.
}

// Deactivate marks the user inactive. It returns false when the user already was.
func (u *User) Deactivate(by uuid.UUID, now time.Time) bool {
	if !u.IsActive {
		return false
	}

	u.IsActive = false
	u.DeactivatedAt = &now
	u.DeactivatedBy = &by
	u.UpdatedAt = now

	return true
}

// Activate re-enables the user and clears the deactivation audit fields.
func (u *User) Activate(now time.Time) {
	u.IsActive = true
	u.DeactivatedAt = nil
	u.DeactivatedBy = nil
	u.UpdatedAt = now
}

// Promote raises the level by one.
func (u *User) Promote(now time.Time) {
	u.Level++
	u.UpdatedAt = now
}

// Demote lowers the level by one, stopping at MinLevel.
func (u *User) Demote(now time.Time) {
	u.Level = max(MinLevel, u.Level-1)
	u.UpdatedAt = now
}
