package service

import (
	"context"

	"github.com/MKhiriev/soul-scribe/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
	// Authenticate resolves an Authorization header value to a user. It
	// never returns an error: every failure means "no identity".
	Authenticate(ctx context.Context, authorizationHeader string) (models.User, bool)
}

type ProfileService interface {
	GetProfile(ctx context.Context, user models.User) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User, update models.ProfileUpdate) (models.Profile, error)
}

type MoodService interface {
	LogMood(ctx context.Context, user models.User, mood models.Mood) (models.MoodEntry, error)
	GetMoodHistory(ctx context.Context, user models.User) ([]models.MoodEntry, error)
}

// ContextAssembler builds the per-request chat context. It is best effort
// and has no error return.
type ContextAssembler interface {
	Assemble(ctx context.Context, user models.User) models.ContextBlock
}

type ChatService interface {
	Chat(ctx context.Context, user models.User, message string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// TokenIssuer issues and verifies bearer credentials.
type TokenIssuer interface {
	Issue(user models.User) (models.Token, error)
	// Parse returns the user id a credential asserts.
	Parse(credential string) (int64, error)
}
