// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Mood is a label from the closed mood vocabulary.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodCalm        Mood = "calm"
	MoodEnergized   Mood = "energized"
	MoodNeutral     Mood = "neutral"
	MoodAnxious     Mood = "anxious"
	MoodSad         Mood = "sad"
	MoodFrustrated  Mood = "frustrated"
	MoodOverwhelmed Mood = "overwhelmed"
	MoodAngry       Mood = "angry"
	MoodTired       Mood = "tired"
)

// MoodVocabulary lists every accepted mood label.
var MoodVocabulary = []Mood{
	MoodHappy,
	MoodCalm,
	MoodEnergized,
	MoodNeutral,
	MoodAnxious,
	MoodSad,
	MoodFrustrated,
	MoodOverwhelmed,
	MoodAngry,
	MoodTired,
}

// IsValid reports whether m belongs to [MoodVocabulary]. Matching is exact
// and case-sensitive.
func (m Mood) IsValid() bool {
	for _, known := range MoodVocabulary {
		if m == known {
			return true
		}
	}
	return false
}

// MoodEntry is a single append-only record of the mood log.
type MoodEntry struct {
	ID        int64     `json:"-"`
	UserID    int64     `json:"-"`
	MoodName  Mood      `json:"mood_name"`
	Timestamp time.Time `json:"timestamp"`
}

// MoodRequest is the body of the mood logging endpoint.
type MoodRequest struct {
	Mood Mood `json:"mood"`
}

// MoodHistoryItem is one element of the mood history response.
type MoodHistoryItem struct {
	MoodName  Mood   `json:"mood_name"`
	Timestamp string `json:"timestamp"`
}
