package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// seedSuperAdmin creates the first SuperAdmin. Public signup cannot grant the role.
func seedSuperAdmin(ctx context.Context, deps *migrateDeps, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("-username is required")
	}
	if password == "" {
		return errors.Errorf("%s must be set", superAdminPasswordEnv)
	}

	if err := deps.Hasher.ValidatePasswordStrength(password); err != nil {
		return errors.Wrap(err, "password rejected")
	}

	_, err := deps.UserRepo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return errors.Errorf("user %q already exists", username)
	case !errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(err, "failed to look up user")
	}

	hash, err := deps.Hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         entity.RoleSuperAdmin,
		IsActive:     true,
		Level:        entity.MinLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
	if err := deps.UserRepo.Create(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	deps.Logger.Info("SuperAdmin created", slog.String("user_id", user.ID.String()), slog.String("username", username))

	return nil
}
