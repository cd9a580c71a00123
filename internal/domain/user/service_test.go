package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/arcadiareads/bookstore-backend/internal/config"
	"github.com/arcadiareads/bookstore-backend/internal/domain/user"
)

type UserStoreMock struct{ mock.Mock }

func (m *UserStoreMock) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserStoreMock) FindByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *UserStoreMock) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *UserStoreMock) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:             "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	store := new(UserStoreMock)
	svc := user.NewService(store, testConfig())

	store.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, user.ErrNotFound)
	store.On("Create", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
		return u.Email == "jane@example.com" &&
			u.Role == user.RoleCustomer &&
			u.IsActive &&
			u.Password != "secret123"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*user.User).ID = 7
	}).Return(nil)
	store.On("UpdateLastLogin", mock.Anything, uint(7), mock.Anything).Return(nil)

	resp, err := svc.Register(ctx, &user.RegisterRequest{
		Name:     "Jane Reader",
		Email:    "Jane@Example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Empty(t, resp.User.Password)
	assert.Equal(t, user.RoleCustomer, resp.User.Role)
	store.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := new(UserStoreMock)
	svc := user.NewService(store, testConfig())

	store.On("FindByEmail", mock.Anything, "jane@example.com").Return(&user.User{ID: 7}, nil)

	_, err := svc.Register(ctx, &user.RegisterRequest{
		Name:     "Jane Reader",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	ctx := context.Background()
	store := new(UserStoreMock)
	svc := user.NewService(store, testConfig())

	store.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, user.ErrNotFound)

	_, err := svc.Register(ctx, &user.RegisterRequest{
		Name:     "Jane Reader",
		Email:    "jane@example.com",
		Password: "short",
	})
	assert.ErrorContains(t, err, "at least 8 characters")
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	store := new(UserStoreMock)
	svc := user.NewService(store, testConfig())

	store.On("FindByEmail", mock.Anything, "jane@example.com").Return(&user.User{
		ID:       7,
		Email:    "jane@example.com",
		Password: hashFor(t, "secret123"),
		Role:     user.RoleCustomer,
		IsActive: true,
	}, nil)
	store.On("UpdateLastLogin", mock.Anything, uint(7), mock.Anything).Return(nil)

	resp, err := svc.Login(ctx, &user.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Empty(t, resp.User.Password)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	store := new(UserStoreMock)
	svc := user.NewService(store, testConfig())

	store.On("FindByEmail", mock.Anything, "jane@example.com").Return(&user.User{
		ID:       7,
		Email:    "jane@example.com",
		Password: hashFor(t, "secret123"),
		IsActive: true,
	}, nil)

	_, err := svc.Login(ctx, &user.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	store := new(UserStoreMock)
	svc := user.NewService(store, testConfig())

	store.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, user.ErrNotFound)

	_, err := svc.Login(ctx, &user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	ctx := context.Background()
	store := new(UserStoreMock)
	svc := user.NewService(store, testConfig())

	store.On("FindByEmail", mock.Anything, "jane@example.com").Return(&user.User{
		ID:       7,
		Password: hashFor(t, "secret123"),
		IsActive: false,
	}, nil)

	_, err := svc.Login(ctx, &user.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_IsAdmin(t *testing.T) {
	ctx := context.Background()
	store := new(UserStoreMock)
	svc := user.NewService(store, testConfig())

	store.On("FindByID", mock.Anything, uint(1)).Return(&user.User{ID: 1, Role: user.RoleAdmin}, nil)
	store.On("FindByID", mock.Anything, uint(2)).Return(&user.User{ID: 2, Role: user.RoleCustomer}, nil)

	isAdmin, err := svc.IsAdmin(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(ctx, 2)
	assert.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestUserService_GetProfile_ClearsPassword(t *testing.T) {
	ctx := context.Background()
	store := new(UserStoreMock)
	svc := user.NewService(store, testConfig())

	store.On("FindByID", mock.Anything, uint(7)).Return(&user.User{
		ID:       7,
		Password: "hashed",
	}, nil)

	profile, err := svc.GetProfile(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, profile.Password)
}
