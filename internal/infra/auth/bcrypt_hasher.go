// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"inventory/config"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt only reads the first 72 bytes of the input.
	maxBcryptPasswordLength = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	strength := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength, MaxLength: maxBcryptPasswordLength}
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}
	if strength.MaxLength <= 0 || strength.MaxLength > maxBcryptPasswordLength {
		strength.MaxLength = maxBcryptPasswordLength
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength validates password meets the configured requirements.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var problems []string

	if len(password) < h.strength.MinLength {
		problems = append(problems, fmt.Sprintf("at least %d characters", h.strength.MinLength))
	}
	if len(password) > h.strength.MaxLength {
		problems = append(problems, fmt.Sprintf("at most %d characters", h.strength.MaxLength))
	}

	var hasUpper, hasLower, hasNumber bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}

	if h.strength.RequireUppercase && !hasUpper {
		problems = append(problems, "an uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		problems = append(problems, "a lowercase letter")
	}
	if h.strength.RequireNumbers && !hasNumber {
		problems = append(problems, "a number")
	}

	if len(problems) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs " + strings.Join(problems, ", "))
	}

	return nil
}
