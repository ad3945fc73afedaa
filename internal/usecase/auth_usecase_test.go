package usecase

import (
	"context"
	"testing"
	"time"

	"blood-bank-backend/config"
	"blood-bank-backend/internal/delivery/dto"
	"blood-bank-backend/internal/domain/entity"
	"blood-bank-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUsecase(userRepo *fakeUserRepo) AuthUsecase {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: 24 * time.Hour,
	})
	return NewAuthUsecase(testLogger(), userRepo, jwtService)
}

func TestAuthRegister(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUsecase(userRepo)

	user, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "admin@college.edu",
		Password: "secret123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@college.edu", user.Email)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.NotEmpty(t, user.ID)

	stored := userRepo.users["admin@college.edu"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password, "password must be stored hashed")
}

func TestAuthRegisterDefaultsRole(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo())

	user, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "donor@college.edu",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo())

	req := &dto.RegisterRequest{Email: "dup@college.edu", Password: "secret123"}
	_, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUsecase(userRepo)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "login@college.edu",
		Password: "secret123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	result, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "login@college.edu",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, int64((24 * time.Hour).Seconds()), result.ExpiresIn)
	assert.Equal(t, "login@college.edu", result.User.Email)
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo())

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "known@college.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Unknown email and wrong password produce the same error so the
	// endpoint does not leak which accounts exist.
	_, unknownErr := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "unknown@college.edu",
		Password: "secret123",
	})
	_, wrongErr := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "known@college.edu",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
}
