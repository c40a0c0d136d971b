// Package user models the marketplace user directory as seen by the order
// workflows. Users are referenced for farmer/admin resolution and role checks
// but are never created or mutated here.
package user

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser")

// Role distinguishes user privilege levels.
type Role string

const (
	// RoleAdmin marks users allowed to manage orders.
	RoleAdmin Role = "admin"

	// RoleFarmer marks producers selling on the marketplace.
	RoleFarmer Role = "farmer"
)

// Validate checks that the role is one of the accepted literals.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleFarmer {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// User is a read-only view of a directory entry.
type User struct {
	id   kernel.UUID
	name string
	role Role

	isConstructed bool
}

// RestoreUser reconstructs a user from the directory store.
func RestoreUser(id kernel.UUID, name string, role Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	u.name = name

	return u, nil
}

// Validate ensures the user was created through RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
