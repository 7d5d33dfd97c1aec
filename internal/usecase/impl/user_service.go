// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "userauth/internal/delivery/context"
	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/repository"
	"userauth/internal/domain/service"
	"userauth/internal/errors"
	"userauth/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

			return nil, domainerrors.ErrUnknownIdentifier
		}

		srv.log(ctx).Error("Failed to load user for login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		Token:  token,
		UserID: user.ID,
	}, nil
}

// Register creates a new user after checking that the email is free.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingRequiredFields
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		newUser := &entity.User{
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}

		// A concurrent insert of the same email surfaces here as ErrUserAlreadyExists.
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.logFailure(ctx, "Registration failed", err, slog.String("email", input.Email))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", registeredUser.ID))

	return registeredUser, nil
}

// GetUser loads a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserLookupNotFound
		}

		srv.log(ctx).Error("Failed to load user", slog.Int64("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateUser applies the supplied fields. The existence check runs before the
// empty-input check, so an unknown ID is always reported as not found.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if input.Changes.IsEmpty() {
			return domainerrors.ErrNoUpdateData
		}

		if input.Changes.Email != nil {
			user.Email = *input.Changes.Email
		}
		if input.Changes.Password != nil {
			hashedPassword, err := srv.hasher.Hash(*input.Changes.Password)
			if err != nil {
				return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
			}
			user.PasswordHash = hashedPassword
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to update user")
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		srv.logFailure(ctx, "Update failed", err, slog.Int64("userID", input.ID))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	srv.log(ctx).Debug("User updated", slog.Int64("userID", updatedUser.ID))

	return updatedUser, nil
}

// DeleteUser removes a user and returns the deleted record.
func (srv *userService) DeleteUser(ctx context.Context, id int64) (*entity.User, error) {
	var deletedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if err := userRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to delete user")
		}

		deletedUser = user

		return nil
	})
	if err != nil {
		srv.logFailure(ctx, "Delete failed", err, slog.Int64("userID", id))

		return nil, errors.Wrap(err, "failed to execute user delete transaction")
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userID", id))

	return deletedUser, nil
}

// logFailure logs client errors at warn level and everything else at error level.
func (srv *userService) logFailure(ctx context.Context, msg string, err error, attrs ...any) {
	level := slog.LevelError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		level = slog.LevelWarn
	}

	srv.log(ctx).Log(ctx, level, msg, append(attrs, slog.Any("error", err))...)
}
