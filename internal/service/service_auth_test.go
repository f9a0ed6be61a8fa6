package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dsemenov/go-shield/internal/config"
	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/store"
	"github.com/dsemenov/go-shield/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() AuthService {
	return NewAuthService(
		store.NewMemoryUserRepository(logger.Nop()),
		config.Auth{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "go-shield-test",
			TokenDuration: time.Hour,
		},
		logger.Nop(),
	)
}

func validRegistration() models.RegisterRequest {
	return models.RegisterRequest{
		Username: "john",
		Email:    "john@example.com",
		Password: "a long enough password",
	}
}

func TestRegisterUser_Success(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.RegisterUser(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, models.RoleUser, token.UserRole)
	assert.Positive(t, token.UserID)
}

func TestRegisterUser_ValidationFailures(t *testing.T) {
	svc := newTestAuthService()

	tests := []struct {
		name   string
		mutate func(*models.RegisterRequest)
		field  string
	}{
		{name: "short username", mutate: func(r *models.RegisterRequest) { r.Username = "jo" }, field: "username"},
		{name: "long username", mutate: func(r *models.RegisterRequest) { r.Username = string(make([]byte, 51)) }, field: "username"},
		{name: "dangerous username", mutate: func(r *models.RegisterRequest) { r.Username = "john<script>" }, field: "username"},
		{name: "missing email", mutate: func(r *models.RegisterRequest) { r.Email = "" }, field: "email"},
		{name: "invalid email", mutate: func(r *models.RegisterRequest) { r.Email = "not-an-email" }, field: "email"},
		{name: "short password", mutate: func(r *models.RegisterRequest) { r.Password = "short" }, field: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validRegistration()
			tt.mutate(&request)

			_, err := svc.RegisterUser(context.Background(), request)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.NotEmpty(t, validationErr.Violations)
			assert.Equal(t, tt.field, validationErr.Violations[0].Field)
		})
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)

	duplicate := validRegistration()
	duplicate.Email = "other@example.com"

	_, err = svc.RegisterUser(ctx, duplicate)
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)

	duplicate := validRegistration()
	duplicate.Username = "jane"

	_, err = svc.RegisterUser(ctx, duplicate)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)

	token, err := svc.Login(ctx, models.LoginRequest{
		Username: "john",
		Password: "a long enough password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "john", Password: "wrong password entirely"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "whatever password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials,
		"unknown username must be indistinguishable from wrong password")
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	issued, err := svc.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)

	principal, err := svc.VerifyToken(ctx, issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, issued.UserID, principal.UserID)
	assert.Equal(t, models.RoleUser, principal.UserRole)
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.VerifyToken(context.Background(), "not.a.token")
	assert.Error(t, err)
}

func TestVerifyToken_DeletedUser(t *testing.T) {
	repo := store.NewMemoryUserRepository(logger.Nop())
	svc := NewAuthService(repo, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-shield-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
	ctx := context.Background()

	issued, err := svc.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)

	// a token whose subject does not exist in this repository: the other
	// repository has two users, ours has one
	other := newTestAuthService()
	_, err = other.RegisterUser(ctx, validRegistration())
	require.NoError(t, err)
	foreign, err := other.RegisterUser(ctx, models.RegisterRequest{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "another long password",
	})
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, issued.SignedString)
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, foreign.SignedString)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
