// Package service declares the domain's outbound ports: hashing, tokens,
// receipt QR codes and order event publishing.
package service

// PasswordHasher hashes account passwords and enforces the password policy.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Any hash error counts as a mismatch.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns ErrPasswordStrength listing every unmet rule.
	ValidatePasswordStrength(password string) error
}
