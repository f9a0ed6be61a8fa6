package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/dsemenov/go-shield/internal/config"
	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/store"
	"github.com/dsemenov/go-shield/internal/utils"
	"github.com/dsemenov/go-shield/internal/validate"
	"github.com/dsemenov/go-shield/models"
)

// Credential length bounds enforced at registration.
const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 12
	maxPasswordLength = 128
	maxEmailLength    = 254
)

// authService is the concrete implementation of [AuthService].
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and Argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new [AuthService] wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account and issues its first token.
//
// The username and password are validated before any repository call: length
// bounds, the dangerous-pattern denylist for the username, and a
// syntactically valid email address. New accounts always receive the regular
// user role; there is no way to request a privileged role through this
// operation.
//
// Returns the signed token or:
//   - *ValidationError if any credential field fails validation.
//   - store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists when the
//     account collides with an existing one.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := validateRegistration(request); err != nil {
		log.Error().Str("username", request.Username).Msg("invalid registration data provided")
		return models.Token{}, err
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issueToken(ctx, registeredUser)
}

// Login authenticates an existing user and issues a fresh token.
//
// Unknown username and wrong password both collapse into
// [ErrInvalidCredentials] so the response never reveals which part of the
// credentials was wrong.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" {
		return models.Token{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(request.Password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.issueToken(ctx, foundUser)
}

// VerifyToken validates a bearer token string and resolves it to a live
// principal.
//
// The account is re-read from the repository so that a token issued before
// an account was removed stops working immediately; the stored role wins
// over the role claim.
//
// Returns the parsed token or:
//   - an opaque validation error when the token is malformed, expired,
//     mis-signed or carries an unknown issuer or role.
//   - [ErrUserNotFound] when the referenced account no longer exists.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Token{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrUserNotFound
		}
		log.Err(err).Int64("id", token.UserID).Msg("user lookup by token subject failed")
		return models.Token{}, fmt.Errorf("user lookup by token subject failed: %w", err)
	}

	token.UserRole = user.Role
	return token, nil
}

func (a *authService) issueToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	return token, nil
}

// validateRegistration checks the registration request against the
// credential bounds and the string denylist. All failures are collected so
// the client sees every problem at once.
func validateRegistration(request models.RegisterRequest) error {
	violations := make([]FieldViolation, 0, 3)

	if outcome := validate.CheckLength(request.Username, minUsernameLength, maxUsernameLength); !outcome.OK {
		violations = append(violations, FieldViolation{Field: "username", Message: outcome.Message})
	} else if outcome = validate.CheckFormat(request.Username); !outcome.OK {
		violations = append(violations, FieldViolation{Field: "username", Message: outcome.Message})
	}

	if outcome := validate.CheckLength(request.Email, 1, maxEmailLength); !outcome.OK {
		violations = append(violations, FieldViolation{Field: "email", Message: outcome.Message})
	} else if _, err := mail.ParseAddress(request.Email); err != nil {
		violations = append(violations, FieldViolation{Field: "email", Message: "invalid email address"})
	}

	if outcome := validate.CheckLength(request.Password, minPasswordLength, maxPasswordLength); !outcome.OK {
		violations = append(violations, FieldViolation{Field: "password", Message: outcome.Message})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
