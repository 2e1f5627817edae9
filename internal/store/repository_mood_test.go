package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/soul-scribe/models"
)

var moodRowColumns = []string{"id", "user_id", "mood_name", "timestamp"}

func TestAddMood(t *testing.T) {
	repo, mock := newTestMoodRepo(t)
	ts := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO mood_logs (user_id,mood_name,timestamp) VALUES ($1,$2,$3) RETURNING id")).
		WithArgs(int64(2), "calm", ts).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	entry, err := repo.AddMood(context.Background(), models.MoodEntry{UserID: 2, MoodName: models.MoodCalm, Timestamp: ts})

	require.NoError(t, err)
	assert.Equal(t, int64(11), entry.ID)
	assert.Equal(t, models.MoodCalm, entry.MoodName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddMood_StampsCurrentTime(t *testing.T) {
	repo, mock := newTestMoodRepo(t)

	mock.ExpectQuery("INSERT INTO mood_logs").
		WithArgs(int64(2), "sad", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	before := time.Now().UTC()
	entry, err := repo.AddMood(context.Background(), models.MoodEntry{UserID: 2, MoodName: models.MoodSad})

	require.NoError(t, err)
	assert.False(t, entry.Timestamp.Before(before))
	assert.Equal(t, time.UTC, entry.Timestamp.Location())
}

func TestAddMood_Error(t *testing.T) {
	repo, mock := newTestMoodRepo(t)

	mock.ExpectQuery("INSERT INTO mood_logs").WillReturnError(errors.New("boom"))

	_, err := repo.AddMood(context.Background(), models.MoodEntry{UserID: 2, MoodName: models.MoodSad})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestGetMoodHistory_OrderedOldestFirst(t *testing.T) {
	repo, mock := newTestMoodRepo(t)
	t0 := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, mood_name, timestamp FROM mood_logs WHERE user_id = $1 ORDER BY timestamp ASC, id ASC")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(moodRowColumns).
			AddRow(1, 2, "happy", t0).
			AddRow(2, 2, "sad", t0.Add(time.Minute)))

	entries, err := repo.GetMoodHistory(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.MoodHappy, entries[0].MoodName)
	assert.Equal(t, models.MoodSad, entries[1].MoodName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMoodHistory_Empty(t *testing.T) {
	repo, mock := newTestMoodRepo(t)

	mock.ExpectQuery("FROM mood_logs").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(moodRowColumns))

	entries, err := repo.GetMoodHistory(context.Background(), 2)

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestGetRecentMoods_NewestFirstWithLimit(t *testing.T) {
	repo, mock := newTestMoodRepo(t)
	t0 := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM mood_logs WHERE user_id = $1 ORDER BY timestamp DESC, id DESC LIMIT 5")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(moodRowColumns).
			AddRow(9, 2, "neutral", t0.Add(4*time.Minute)).
			AddRow(8, 2, "tired", t0.Add(3*time.Minute)))

	entries, err := repo.GetRecentMoods(context.Background(), 2, 5)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.MoodNeutral, entries[0].MoodName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentMoods_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newTestMoodRepo(t)
		mock.ExpectQuery("FROM mood_logs").WillReturnError(errors.New("boom"))

		_, err := repo.GetRecentMoods(context.Background(), 2, 5)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan", func(t *testing.T) {
		repo, mock := newTestMoodRepo(t)
		mock.ExpectQuery("FROM mood_logs").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		_, err := repo.GetRecentMoods(context.Background(), 2, 5)
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("iteration", func(t *testing.T) {
		repo, mock := newTestMoodRepo(t)
		mock.ExpectQuery("FROM mood_logs").
			WillReturnRows(sqlmock.NewRows(moodRowColumns).
				AddRow(1, 2, "sad", time.Now()).
				RowError(0, errors.New("broken row")))

		_, err := repo.GetRecentMoods(context.Background(), 2, 5)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}
