package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"userauth/config"
	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/repository"
	"userauth/internal/errors"
	"userauth/internal/infra/auth"
	"userauth/internal/usecase"
)

// memoryUserStore is an in-process UserRepository used to run whole flows
// against the real hasher and token service.
type memoryUserStore struct {
	nextID int64
	users  map[int64]*entity.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[int64]*entity.User)}
}

func (s *memoryUserStore) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := *user

	return &found, nil
}

func (s *memoryUserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			found := *user

			return &found, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (s *memoryUserStore) Create(_ context.Context, user *entity.User) error {
	s.nextID++
	user.ID = s.nextID
	stored := *user
	s.users[user.ID] = &stored

	return nil
}

func (s *memoryUserStore) CreateMany(ctx context.Context, users []*entity.User) error {
	for _, user := range users {
		if err := s.Create(ctx, user); err != nil {
			return err
		}
	}

	return nil
}

func (s *memoryUserStore) Update(_ context.Context, user *entity.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	stored := *user
	s.users[user.ID] = &stored

	return nil
}

func (s *memoryUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(s.users, id)

	return nil
}

func (s *memoryUserStore) DeleteAll(context.Context) error {
	s.users = make(map[int64]*entity.User)

	return nil
}

func (s *memoryUserStore) UserRepo() repository.UserRepository { return s }

func (s *memoryUserStore) CatalogRepo() repository.CatalogRepository { return nil }

func (s *memoryUserStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

type flowFixtures struct {
	service usecase.UserUsecase
	store   *memoryUserStore
	cfg     *config.Config
}

func newFlowFixtures(t *testing.T) flowFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "flow-secret"
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := newMemoryUserStore()
	svc := NewUserService(UserServiceParams{
		TxManager:    store,
		UserRepo:     store,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenService,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return flowFixtures{service: svc, store: store, cfg: cfg}
}

func TestUserFlow_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()

	credentials := []struct {
		email    string
		password string
	}{
		{email: "admin@gmail.com", password: "admin"},
		{email: "Mixed.Case@Example.com", password: "p@ss w0rd with spaces"},
		{email: "unicode@b.c", password: "mot-de-passe-été"},
	}

	fx := newFlowFixtures(t)
	tokenService, err := auth.NewJWTService(fx.cfg)
	require.NoError(t, err)

	for _, cred := range credentials {
		t.Run(cred.email, func(t *testing.T) {
			created, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: cred.email, Password: cred.password})
			require.NoError(t, err)
			assert.NotEqual(t, cred.password, created.PasswordHash)

			output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: cred.email, Password: cred.password})
			require.NoError(t, err)
			assert.Equal(t, created.ID, output.UserID)

			claims, err := tokenService.Verify(output.Token)
			require.NoError(t, err)
			assert.Equal(t, created.ID, claims.UserID)
		})
	}
}

func TestUserFlow_LoginStatuses(t *testing.T) {
	ctx := context.Background()
	fx := newFlowFixtures(t)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "known@b.c", Password: "right"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    usecase.LoginInput
		wantCode int
	}{
		{name: "unknown email", input: usecase.LoginInput{Email: "ghost@b.c", Password: "right"}, wantCode: 201},
		{name: "wrong password", input: usecase.LoginInput{Email: "known@b.c", Password: "wrong"}, wantCode: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Login(ctx, &tt.input)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.HTTPCode())
			assert.Equal(t, "Invalid identifiers", appErr.Message())
		})
	}
}

func TestUserFlow_SecondDeleteIsNotFound(t *testing.T) {
	ctx := context.Background()
	fx := newFlowFixtures(t)

	created, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "gone@b.c", Password: "pw"})
	require.NoError(t, err)

	deleted, err := fx.service.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "gone@b.c", deleted.Email)

	_, err = fx.service.DeleteUser(ctx, created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserFlow_UpdatedPasswordLogsIn(t *testing.T) {
	ctx := context.Background()
	fx := newFlowFixtures(t)

	created, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "rotate@b.c", Password: "old"})
	require.NoError(t, err)

	newPassword := "new"
	_, err = fx.service.UpdateUser(ctx, &usecase.UpdateUserInput{
		ID:      created.ID,
		Changes: entity.UserChanges{Password: &newPassword},
	})
	require.NoError(t, err)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "rotate@b.c", Password: "old"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "rotate@b.c", Password: "new"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, output.UserID)
}
