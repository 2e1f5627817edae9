package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/store"
	"github.com/MKhiriev/soul-scribe/models"
)

// Values substituted into the context block when data is missing or could
// not be read.
const (
	CopingNotSpecified   = "Not specified"
	NoRecentMoods        = "No recent moods logged"
	MoodsNotRetrieved    = "Could not retrieve"
	RecentMoodsLimit     = 5
	moodSummarySeparator = ", "
)

type contextAssembler struct {
	userRepository store.UserRepository
	moodRepository store.MoodRepository
	logger         *logger.Logger
}

func NewContextAssembler(userRepository store.UserRepository, moodRepository store.MoodRepository, logger *logger.Logger) ContextAssembler {
	return &contextAssembler{
		userRepository: userRepository,
		moodRepository: moodRepository,
		logger:         logger,
	}
}

// Assemble reads the user's coping mechanism and up to five most recent
// moods. Degradation is part of the contract: any store error or panic
// while gathering yields {"Not specified", "Could not retrieve"} and a
// warning in the log, never an error.
func (c *contextAssembler) Assemble(ctx context.Context, user models.User) (block models.ContextBlock) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Warn().
				Str("func", "*contextAssembler.Assemble").
				Int64("user_id", user.UserID).
				Str("panic", fmt.Sprint(r)).
				Msg("could not load chat context")
			block = degradedContext()
		}
	}()

	block, err := c.gather(ctx, user.UserID)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*contextAssembler.Assemble").
			Int64("user_id", user.UserID).
			Msg("could not load chat context")
		return degradedContext()
	}

	return block
}

func (c *contextAssembler) gather(ctx context.Context, userID int64) (models.ContextBlock, error) {
	rawProfile, err := c.userRepository.GetProfileData(ctx, userID)
	if err != nil {
		return models.ContextBlock{}, fmt.Errorf("reading profile: %w", err)
	}

	coping := models.ParseProfile(rawProfile).CopingMechanism()
	if coping == "" {
		coping = CopingNotSpecified
	}

	recent, err := c.moodRepository.GetRecentMoods(ctx, userID, RecentMoodsLimit)
	if err != nil {
		return models.ContextBlock{}, fmt.Errorf("reading recent moods: %w", err)
	}

	return models.ContextBlock{
		CopingMechanism: coping,
		MoodSummary:     summarizeMoods(recent),
	}, nil
}

// summarizeMoods joins labels in the given (newest first) order.
func summarizeMoods(entries []models.MoodEntry) string {
	if len(entries) == 0 {
		return NoRecentMoods
	}
	if len(entries) > RecentMoodsLimit {
		entries = entries[:RecentMoodsLimit]
	}

	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, string(e.MoodName))
	}
	return strings.Join(labels, moodSummarySeparator)
}

func degradedContext() models.ContextBlock {
	return models.ContextBlock{
		CopingMechanism: CopingNotSpecified,
		MoodSummary:     MoodsNotRetrieved,
	}
}
