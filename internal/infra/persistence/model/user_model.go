// Package model holds the GORM persistence models. They never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is a row of users. Version backs optimistic locking on updates.
type UserModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username      string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash  string     `gorm:"type:varchar(255);not null"`
	Role          string     `gorm:"type:varchar(20);not null"`
	IsActive      bool       `gorm:"not null"`
	Level         int        `gorm:"not null"`
	DeactivatedAt *time.Time
	DeactivatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
