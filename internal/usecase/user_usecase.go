// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"userauth/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserInput defines a partial update of a user. Nil fields are left untouched;
// a non-nil empty string counts as supplied.
type UpdateUserInput struct {
	ID      int64
	Changes entity.UserChanges
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	Token  string
	UserID int64
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)
	// DeleteUser removes the user and returns the record as it was before deletion.
	DeleteUser(ctx context.Context, id int64) (*entity.User, error)
}
