package store

import (
	"context"

	"github.com/MKhiriev/soul-scribe/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their profile documents.
type UserRepository interface {
	// CreateUser inserts a user with an empty profile and returns it with
	// UserID and DateJoined populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// GetProfileData returns the raw stored profile text.
	GetProfileData(ctx context.Context, userID int64) (string, error)
	// UpdateProfileData merges partial into the stored profile inside one
	// transaction and returns the merged document.
	UpdateProfileData(ctx context.Context, userID int64, partial models.Profile) (models.Profile, error)
}

// MoodRepository is the append-only mood log.
type MoodRepository interface {
	AddMood(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error)
	// GetMoodHistory returns all entries oldest first.
	GetMoodHistory(ctx context.Context, userID int64) ([]models.MoodEntry, error)
	// GetRecentMoods returns at most limit entries newest first.
	GetRecentMoods(ctx context.Context, userID int64, limit uint64) ([]models.MoodEntry, error)
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
