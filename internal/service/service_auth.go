package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/store"
	"github.com/MKhiriev/soul-scribe/internal/utils"
	"github.com/MKhiriev/soul-scribe/internal/validators"
	"github.com/MKhiriev/soul-scribe/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, password verification with bcrypt, and
// credential issuing and resolution through a TokenIssuer.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokens issues credentials at login and resolves them on every
	// authenticated request.
	tokens TokenIssuer

	validator validators.Validator

	// bcryptCost is the work factor used when hashing new passwords.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over userRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokens TokenIssuer, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		validator:      validators.NewRequestValidator(),
		bcryptCost:     bcrypt.DefaultCost,
		logger:         logger,
	}
}

// Register creates a new user account with an empty profile.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
//   - a wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login verifies credentials and issues a bearer credential.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrWrongPassword if the user does not exist or the password does not
//     match. Both cases look the same to the caller.
//   - a wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Msg("invalid credentials provided")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Err(err).Str("func", "*authService.Login").Str("username", credentials.Username).Msg("unknown username")
		return models.User{}, models.Token{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().
			Str("func", "*authService.Login").
			Int64("user_id", foundUser.UserID).
			Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	token, err := a.tokens.Issue(foundUser)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", foundUser.UserID).Msg("token issuing failed")
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// Authenticate implements the session authenticator. The header must be
// "<scheme> <credential>" with a case-insensitive "bearer" scheme; the
// credential must parse with the configured TokenIssuer; and the user id it
// asserts must exist. Anything else yields (models.User{}, false).
func (a *authService) Authenticate(ctx context.Context, authorizationHeader string) (models.User, bool) {
	log := logger.FromContext(ctx)

	credential, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		return models.User{}, false
	}

	userID, err := a.tokens.Parse(credential)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.Authenticate").Msg("credential rejected")
		return models.User{}, false
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Err(err).Str("func", "*authService.Authenticate").Int64("user_id", userID).Msg("user lookup failed")
		}
		return models.User{}, false
	}

	return user, true
}
