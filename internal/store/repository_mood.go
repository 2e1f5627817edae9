// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/models"
)

// moodRepository is the SQL implementation of [MoodRepository] over the
// "mood_logs" table. Entries are never updated or deleted.
type moodRepository struct {
	*DB
	logger *logger.Logger
}

// NewMoodRepository constructs a [MoodRepository] backed by db.
func NewMoodRepository(db *DB, logger *logger.Logger) MoodRepository {
	logger.Debug().Msg("creating mood repository")
	return &moodRepository{
		DB:     db,
		logger: logger,
	}
}

// AddMood appends entry. A zero Timestamp is replaced with the current UTC
// time.
func (m *moodRepository) AddMood(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error) {
	log := logger.FromContext(ctx)

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	query, args, err := m.buildInsertMoodQuery(moodRow{
		UserID:    entry.UserID,
		MoodName:  string(entry.MoodName),
		Timestamp: entry.Timestamp,
	})
	if err != nil {
		log.Err(err).Str("func", "*moodRepository.AddMood").Msg("failed to build query")
		return models.MoodEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = m.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		log.Err(err).
			Str("func", "*moodRepository.AddMood").
			Int64("user_id", entry.UserID).
			Str("mood", string(entry.MoodName)).
			Msg("failed to insert mood entry")
		return models.MoodEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// GetMoodHistory returns every entry of the user ordered oldest first.
func (m *moodRepository) GetMoodHistory(ctx context.Context, userID int64) ([]models.MoodEntry, error) {
	return m.selectMoods(ctx, "*moodRepository.GetMoodHistory", userID, false, 0)
}

// GetRecentMoods returns up to limit entries ordered newest first.
func (m *moodRepository) GetRecentMoods(ctx context.Context, userID int64, limit uint64) ([]models.MoodEntry, error) {
	return m.selectMoods(ctx, "*moodRepository.GetRecentMoods", userID, true, limit)
}

func (m *moodRepository) selectMoods(ctx context.Context, funcName string, userID int64, newestFirst bool, limit uint64) ([]models.MoodEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.buildSelectMoodsQuery(userID, newestFirst, limit)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entries []models.MoodEntry
	err = m.withRetry(ctx, func() error {
		var queryErr error
		entries, queryErr = m.queryMoods(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("failed to select mood entries")
		return nil, err
	}

	return entries, nil
}

// queryMoods runs query and drains the result set before returning.
func (m *moodRepository) queryMoods(ctx context.Context, query string, args []any) ([]models.MoodEntry, error) {
	rows, err := m.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.MoodEntry, 0, 16)
	for rows.Next() {
		var (
			entry    models.MoodEntry
			moodName string
		)
		if err = rows.Scan(&entry.ID, &entry.UserID, &moodName, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entry.MoodName = models.Mood(moodName)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
