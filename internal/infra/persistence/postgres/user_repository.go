package postgres

import (
	"context"

	"gorm.io/gorm"

	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/repository"
	"userauth/internal/errors"
	"userauth/internal/infra/persistence/model"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity and copies back the generated ID and timestamps.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateUserWriteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// CreateMany persists several users in one INSERT.
func (repo *userRepository) CreateMany(ctx context.Context, users []*entity.User) error {
	if len(users) == 0 {
		return nil
	}

	userMs := make([]*model.UserModel, 0, len(users))
	for _, user := range users {
		userMs = append(userMs, fromUserDomain(user))
	}

	if err := repo.db.WithContext(ctx).Create(&userMs).Error; err != nil {
		return translateUserWriteError(err, "failed to create users")
	}

	for i, userM := range userMs {
		users[i].ID = userM.ID
		users[i].CreatedAt = userM.CreatedAt
		users[i].UpdatedAt = userM.UpdatedAt
	}

	return nil
}

// Update writes the email and password hash of an existing user.
// Zero values are written as-is.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(userM).
		Select("email", "password").
		Updates(userM)
	if result.Error != nil {
		return translateUserUpdateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes the user with the given ID.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DeleteAll removes every user.
func (repo *userRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.UserModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete users")
	}

	return nil
}

// translateUserUpdateError reports every update failure as a store fault,
// an email taken by another user included.
func translateUserUpdateError(err error) error {
	return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
}

// translateUserWriteError converts PostgreSQL errors raised by inserts to domain errors.
func translateUserWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrMissingRequiredFields.WrapMessage("missing required user information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.Password,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Email:     data.Email,
		Password:  data.PasswordHash,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
