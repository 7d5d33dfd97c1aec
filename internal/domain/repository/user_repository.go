// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userauth/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
//
// Lookups return ErrUserNotFound when no row matches; write conflicts on the
// unique email index return domainerrors.ErrUserAlreadyExists; every other
// failure is a domainerrors.DatabaseExecuteError.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the assigned ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// CreateMany persists several users in one statement.
	CreateMany(ctx context.Context, users []*entity.User) error

	// Update saves the email and password hash of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given ID.
	Delete(ctx context.Context, id int64) error

	// DeleteAll removes every user.
	DeleteAll(ctx context.Context) error
}
