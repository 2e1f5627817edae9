package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. The profile document is stored as JSON text in
// profile_data.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser inserts a new user with an empty profile.
//
// Error handling:
//   - unique constraint on username → [ErrUsernameAlreadyExists].
//   - any other driver error → [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ProfileData = models.Profile{}
	user.DateJoined = time.Now().UTC()

	query, args, err := r.buildInsertUserQuery(user.Username, user.PasswordHash, "{}", user.DateJoined)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if r.isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already taken")
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByUsername returns the user with the given username or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", sq.Eq{"username": username})
}

// FindUserByID returns the user with the given id or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"user_id": userID})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectUserQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user        models.User
		profileData string
	)
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).
			Scan(&user.UserID, &user.Username, &user.PasswordHash, &profileData, &user.DateJoined)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to select user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.ProfileData = models.ParseProfile(profileData)
	return user, nil
}

// GetProfileData returns the stored profile text exactly as persisted. The
// caller decides how to treat malformed content.
func (r *userRepository) GetProfileData(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectProfileQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetProfileData").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profileData sql.NullString
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&profileData)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetProfileData").Int64("user_id", userID).Msg("failed to select profile")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profileData.String, nil
}

// UpdateProfileData merges partial into the stored profile.
//
// The read, merge and write run in one transaction with the user row
// locked, so concurrent updates to different keys of the same user are not
// lost. A malformed stored document is treated as empty. Any failure rolls
// the transaction back.
func (r *userRepository) UpdateProfileData(ctx context.Context, userID int64, partial models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfileData").Int64("user_id", userID).Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	selectQuery, selectArgs, err := r.buildSelectProfileForUpdateQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfileData").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored sql.NullString
	err = tx.QueryRowContext(ctx, selectQuery, selectArgs...).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfileData").Int64("user_id", userID).Msg("failed to select profile for update")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	merged := models.ParseProfile(stored.String).Merge(partial)
	encoded, err := merged.Encode()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfileData").Int64("user_id", userID).Msg("failed to encode merged profile")
		return nil, fmt.Errorf("%w: %w", ErrEncodingProfile, err)
	}

	updateQuery, updateArgs, err := r.buildUpdateProfileQuery(userID, encoded)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfileData").Msg("failed to build update query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfileData").Int64("user_id", userID).Msg("failed to update profile")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*userRepository.UpdateProfileData").Int64("user_id", userID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return merged, nil
}
