package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{
	"id", "username", "password_hash", "role", "is_active", "level",
	"deactivated_at", "deactivated_by", "created_at", "updated_at", "version",
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(q(`SELECT * FROM "users" WHERE "users"."username" = $1 ORDER BY "users"."id" LIMIT $2`)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "alice", "hash", "Seller", true, 1, nil, nil, now, now, 3))

	user, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, entity.RoleSeller, user.Role)
	assert.Equal(t, 3, user.Version)
	assert.Nil(t, user.DeactivatedAt)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(q(`SELECT * FROM "users" WHERE "users"."id" = $1 ORDER BY "users"."id" LIMIT $2`)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(q(`INSERT INTO "users"`)).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`))

	err := repo.Create(context.Background(), &entity.User{ID: uuid.New(), Username: "alice", Role: entity.RoleCustomer})
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestUserRepository_ListByRoles(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(q(`SELECT * FROM "users" WHERE "users"."role" IN ($1,$2) ORDER BY "users"."created_at" DESC`)).
		WithArgs("Admin", "Seller").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(uuid.NewString(), "bob", "h", "Admin", true, 2, nil, nil, now, now, 1))

	users, err := repo.ListByRoles(context.Background(), entity.Roles{entity.RoleAdmin, entity.RoleSeller})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)
}

func TestUserRepository_Update(t *testing.T) {
	t.Run("bumps version", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)
		user := &entity.User{ID: uuid.New(), Role: entity.RoleSeller, Level: 2, Version: 4}

		mock.ExpectExec(q(`UPDATE "users" SET`) + `.+` + q(`WHERE "users"."id" = $8 AND "users"."version" = $9`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(context.Background(), user, 4))
		assert.Equal(t, 5, user.Version)
	})

	t.Run("conflict", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)
		user := &entity.User{ID: uuid.New(), Role: entity.RoleSeller, Version: 4}

		mock.ExpectExec(q(`UPDATE "users" SET`)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), user, 4)
		assert.ErrorIs(t, err, repository.ErrUserVersionConflict)
	})
}

func TestUserRepository_CountActiveByRole(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(q(`SELECT count(*) FROM "users" WHERE "users"."role" = $1 AND "users"."is_active" = $2 AND "users"."id" <> $3`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActiveByRole(context.Background(), entity.RoleSuperAdmin, uuid.New())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
