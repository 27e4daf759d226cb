// Package postgres implements the domain repositories on PostgreSQL through GORM.
package postgres

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"
	"inventory/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// FindByUsername retrieves a single user by username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.Username.Eq(username)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(userM), nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUsernameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// ListByRoles returns the users holding any of the roles, newest first.
func (repo *userRepository) ListByRoles(ctx context.Context, roles entity.Roles) ([]*entity.User, error) {
	u := repo.q.UserModel

	userModels, err := u.WithContext(ctx).
		Where(u.Role.In(roles.ToStrings()...)).
		Order(u.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by roles")
	}

	users := make([]*entity.User, len(userModels))
	for i, userM := range userModels {
		users[i] = toUserDomain(userM)
	}

	return users, nil
}

// CountActiveByRole counts active users of a role, excluding one id.
func (repo *userRepository) CountActiveByRole(ctx context.Context, role entity.Role, excludeID uuid.UUID) (int64, error) {
	u := repo.q.UserModel

	count, err := u.WithContext(ctx).
		Where(u.Role.Eq(role.String()), u.IsActive.Is(true), u.ID.Neq(excludeID)).
		Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active users")
	}

	return count, nil
}

// Update writes the mutable user fields guarded by the version stamp.
func (repo *userRepository) Update(ctx context.Context, user *entity.User, expectedVersion int) error {
	u := repo.q.UserModel
	now := time.Now().UTC()

	result, err := u.WithContext(ctx).
		Where(u.ID.Eq(user.ID), u.Version.Eq(expectedVersion)).
		Updates(map[string]any{
			"role":           user.Role.String(),
			"is_active":      user.IsActive,
			"level":          user.Level,
			"deactivated_at": user.DeactivatedAt,
			"deactivated_by": user.DeactivatedBy,
			"updated_at":     now,
			"version":        expectedVersion + 1,
		})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserVersionConflict
	}

	user.UpdatedAt = now
	user.Version = expectedVersion + 1

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Username:      data.Username,
		PasswordHash:  data.PasswordHash,
		Role:          entity.Role(data.Role),
		IsActive:      data.IsActive,
		Level:         data.Level,
		DeactivatedAt: data.DeactivatedAt,
		DeactivatedBy: data.DeactivatedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Version:       data.Version,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Username:      data.Username,
		PasswordHash:  data.PasswordHash,
		Role:          data.Role.String(),
		IsActive:      data.IsActive,
		Level:         data.Level,
		DeactivatedAt: data.DeactivatedAt,
		DeactivatedBy: data.DeactivatedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Version:       data.Version,
	}
}
