package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/store"
	"github.com/MKhiriev/soul-scribe/internal/validators"
	"github.com/MKhiriev/soul-scribe/models"
)

type profileService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

// GetProfile re-reads the user so the profile reflects the latest committed
// update. Stored documents that fail to parse come back empty.
func (p *profileService) GetProfile(ctx context.Context, user models.User) (models.User, error) {
	found, err := p.userRepository.FindUserByID(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.GetProfile").Int64("user_id", user.UserID).Msg("failed to load profile")
		return models.User{}, fmt.Errorf("failed to load profile: %w", err)
	}

	if found.ProfileData == nil {
		found.ProfileData = models.Profile{}
	}
	return found, nil
}

// UpdateProfile merges a JSON object into the stored profile: new keys are
// added, existing keys overwritten, others kept.
func (p *profileService) UpdateProfile(ctx context.Context, user models.User, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Str("func", "*profileService.UpdateProfile").Msg("invalid profile update")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	partial, err := models.DecodeProfile(update.ProfileData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	merged, err := p.userRepository.UpdateProfileData(ctx, user.UserID, partial)
	if err != nil {
		log.Err(err).Str("func", "*profileService.UpdateProfile").Int64("user_id", user.UserID).Msg("failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return merged, nil
}
