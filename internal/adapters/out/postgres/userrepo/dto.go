// Package userrepo maps the user directory table for read-only lookups.
package userrepo

import (
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents one user directory row.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255)"`
	Role string    `gorm:"type:varchar(32);not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// toDomain converts a database row to a user entity.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, user.Role(dto.Role))
}
