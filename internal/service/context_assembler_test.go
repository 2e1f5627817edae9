package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/mock"
	"github.com/MKhiriev/soul-scribe/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestAssembler(ctrl *gomock.Controller) (ContextAssembler, *mock.MockUserRepository, *mock.MockMoodRepository) {
	users := mock.NewMockUserRepository(ctrl)
	moods := mock.NewMockMoodRepository(ctrl)
	return NewContextAssembler(users, moods, logger.Nop()), users, moods
}

func moodEntries(labels ...models.Mood) []models.MoodEntry {
	entries := make([]models.MoodEntry, 0, len(labels))
	for _, l := range labels {
		entries = append(entries, models.MoodEntry{MoodName: l})
	}
	return entries
}

func TestContextAssembler_Assemble(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		moods   []models.MoodEntry
		want    models.ContextBlock
	}{
		{
			name:    "coping and five moods newest first",
			profile: `{"coping_mechanism":"deep breathing"}`,
			moods: moodEntries(models.MoodNeutral, models.MoodTired, models.MoodAngry,
				models.MoodCalm, models.MoodSad),
			want: models.ContextBlock{
				CopingMechanism: "deep breathing",
				MoodSummary:     "neutral, tired, angry, calm, sad",
			},
		},
		{
			name:    "no coping mechanism and no moods",
			profile: `{}`,
			want: models.ContextBlock{
				CopingMechanism: "Not specified",
				MoodSummary:     "No recent moods logged",
			},
		},
		{
			name:    "empty coping mechanism",
			profile: `{"coping_mechanism":""}`,
			moods:   moodEntries(models.MoodHappy),
			want: models.ContextBlock{
				CopingMechanism: "Not specified",
				MoodSummary:     "happy",
			},
		},
		{
			name:    "unparseable profile",
			profile: `not json`,
			moods:   moodEntries(models.MoodSad, models.MoodSad),
			want: models.ContextBlock{
				CopingMechanism: "Not specified",
				MoodSummary:     "sad, sad",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			assembler, users, moods := newTestAssembler(ctrl)

			users.EXPECT().GetProfileData(gomock.Any(), int64(1)).Return(tt.profile, nil)
			moods.EXPECT().GetRecentMoods(gomock.Any(), int64(1), uint64(RecentMoodsLimit)).Return(tt.moods, nil)

			got := assembler.Assemble(context.Background(), models.User{UserID: 1})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContextAssembler_Assemble_TruncatesToLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	assembler, users, moods := newTestAssembler(ctrl)

	users.EXPECT().GetProfileData(gomock.Any(), int64(1)).Return(`{}`, nil)
	moods.EXPECT().GetRecentMoods(gomock.Any(), int64(1), gomock.Any()).Return(
		moodEntries("a", "b", "c", "d", "e", "f", "g"), nil)

	got := assembler.Assemble(context.Background(), models.User{UserID: 1})
	assert.Equal(t, "a, b, c, d, e", got.MoodSummary)
}

func TestContextAssembler_Assemble_ProfileReadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	assembler, users, moods := newTestAssembler(ctrl)

	users.EXPECT().GetProfileData(gomock.Any(), int64(1)).Return("", errors.New("db down"))
	moods.EXPECT().GetRecentMoods(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got := assembler.Assemble(context.Background(), models.User{UserID: 1})
	assert.Equal(t, models.ContextBlock{CopingMechanism: "Not specified", MoodSummary: "Could not retrieve"}, got)
}

func TestContextAssembler_Assemble_MoodReadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	assembler, users, moods := newTestAssembler(ctrl)

	users.EXPECT().GetProfileData(gomock.Any(), int64(1)).Return(`{"coping_mechanism":"music"}`, nil)
	moods.EXPECT().GetRecentMoods(gomock.Any(), int64(1), gomock.Any()).Return(nil, errors.New("timeout"))

	got := assembler.Assemble(context.Background(), models.User{UserID: 1})
	assert.Equal(t, models.ContextBlock{CopingMechanism: "Not specified", MoodSummary: "Could not retrieve"}, got)
}

func TestContextAssembler_Assemble_RecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	assembler, users, _ := newTestAssembler(ctrl)

	users.EXPECT().GetProfileData(gomock.Any(), int64(1)).DoAndReturn(
		func(context.Context, int64) (string, error) {
			panic("driver bug")
		},
	)

	got := assembler.Assemble(context.Background(), models.User{UserID: 1})
	assert.Equal(t, models.ContextBlock{CopingMechanism: "Not specified", MoodSummary: "Could not retrieve"}, got)
}
