package auth

import (
	"testing"

	"inventory/config"
	domainerrors "inventory/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	validPasswords := []string{"StrongPass123", "MySecurePass1", "Complex9Secret"}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	weakPasswords := []string{
		"Ab1",         // Too short
		"PASSWORD123", // No lowercase
		"password123", // No uppercase
		"PasswordABC", // No numbers
	}
	for _, password := range weakPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength, password)
	}
}

func TestNewBcryptHasher_Defaults(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	assert.Equal(t, defaultMinPasswordLength, hasher.strength.MinLength)
	assert.Equal(t, maxBcryptPasswordLength, hasher.strength.MaxLength)
	assert.NoError(t, hasher.ValidatePasswordStrength("longenough"))
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
}
