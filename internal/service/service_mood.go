// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/store"
	"github.com/MKhiriev/soul-scribe/internal/validators"
	"github.com/MKhiriev/soul-scribe/models"
)

type moodService struct {
	moodRepository store.MoodRepository
	validator      validators.Validator
	now            func() time.Time
	logger         *logger.Logger
}

func NewMoodService(moodRepository store.MoodRepository, logger *logger.Logger) MoodService {
	return &moodService{
		moodRepository: moodRepository,
		validator:      validators.NewRequestValidator(),
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// LogMood appends mood for user, stamped with the current UTC time.
// Labels outside the vocabulary fail with ErrInvalidDataProvided.
func (m *moodService) LogMood(ctx context.Context, user models.User, mood models.Mood) (models.MoodEntry, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, mood); err != nil {
		log.Debug().Err(err).Str("func", "*moodService.LogMood").Msg("invalid mood")
		return models.MoodEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entry, err := m.moodRepository.AddMood(ctx, models.MoodEntry{
		UserID:    user.UserID,
		MoodName:  mood,
		Timestamp: m.now(),
	})
	if err != nil {
		log.Err(err).Str("func", "*moodService.LogMood").Int64("user_id", user.UserID).Msg("failed to log mood")
		return models.MoodEntry{}, fmt.Errorf("failed to log mood: %w", err)
	}

	return entry, nil
}

// GetMoodHistory returns every entry of user, oldest first.
func (m *moodService) GetMoodHistory(ctx context.Context, user models.User) ([]models.MoodEntry, error) {
	entries, err := m.moodRepository.GetMoodHistory(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*moodService.GetMoodHistory").Int64("user_id", user.UserID).Msg("failed to load mood history")
		return nil, fmt.Errorf("failed to load mood history: %w", err)
	}

	return entries, nil
}
