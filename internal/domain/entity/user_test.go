package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_DeactivateActivate(t *testing.T) {
	now := time.Now()
	admin := uuid.New()
	u := &User{IsActive: true, Level: 1}

	assert.True(t, u.Deactivate(admin, now))
	assert.False(t, u.IsActive)
	assert.Equal(t, admin, *u.DeactivatedBy)
	assert.Equal(t, now, *u.DeactivatedAt)

	assert.False(t, u.Deactivate(uuid.New(), now.Add(time.Minute)))
	assert.Equal(t, admin, *u.DeactivatedBy)

	u.Activate(now)
	assert.True(t, u.IsActive)
	assert.Nil(t, u.DeactivatedAt)
	assert.Nil(t, u.DeactivatedBy)
}

func TestUser_LevelFloor(t *testing.T) {
	u := &User{Level: 1}

	u.Promote(time.Now())
	assert.Equal(t, 2, u.Level)

	u.Demote(time.Now())
	u.Demote(time.Now())
	assert.Equal(t, MinLevel, u.Level)
}

func TestRole(t *testing.T) {
	assert.True(t, RoleSeller.CanManageProducts())
	assert.True(t, RoleSuperAdmin.CanManageProducts())
	assert.False(t, RoleCustomer.CanManageProducts())
	assert.True(t, RoleAdmin.IsStaff())
	assert.False(t, RoleSuperAdmin.IsStaff())
	assert.False(t, Role("root").IsValid())
	assert.True(t, SelfRegistrableRoles.Contains(RoleSeller))
	assert.False(t, SelfRegistrableRoles.Contains(RoleAdmin))
}
