// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/soul-scribe/internal/config"
)

const (
	usersTable    = "users"
	moodLogsTable = "mood_logs"
)

var userColumns = []string{"user_id", "username", "password_hash", "profile_data", "date_joined"}

func (db *DB) buildInsertUserQuery(username, passwordHash, profileData string, joined time.Time) (string, []any, error) {
	return db.builder().
		Insert(usersTable).
		Columns("username", "password_hash", "profile_data", "date_joined").
		Values(username, passwordHash, profileData, joined).
		Suffix("RETURNING user_id").
		ToSql()
}

func (db *DB) buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder().
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

// buildSelectProfileForUpdateQuery locks the user row on PostgreSQL. SQLite
// has no row locks; its write transaction serializes instead.
func (db *DB) buildSelectProfileForUpdateQuery(userID int64) (string, []any, error) {
	query := db.builder().
		Select("profile_data").
		From(usersTable).
		Where(sq.Eq{"user_id": userID})

	if db.dialect == config.DriverPostgres {
		query = query.Suffix("FOR UPDATE")
	}

	return query.ToSql()
}

func (db *DB) buildSelectProfileQuery(userID int64) (string, []any, error) {
	return db.builder().
		Select("profile_data").
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildUpdateProfileQuery(userID int64, profileData string) (string, []any, error) {
	return db.builder().
		Update(usersTable).
		Set("profile_data", profileData).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildInsertMoodQuery(entry moodRow) (string, []any, error) {
	return db.builder().
		Insert(moodLogsTable).
		Columns("user_id", "mood_name", "timestamp").
		Values(entry.UserID, entry.MoodName, entry.Timestamp).
		Suffix("RETURNING id").
		ToSql()
}

// buildSelectMoodsQuery orders by timestamp and breaks ties by id so entries
// logged within the same clock tick keep insertion order.
func (db *DB) buildSelectMoodsQuery(userID int64, newestFirst bool, limit uint64) (string, []any, error) {
	query := db.builder().
		Select("id", "user_id", "mood_name", "timestamp").
		From(moodLogsTable).
		Where(sq.Eq{"user_id": userID})

	if newestFirst {
		query = query.OrderBy("timestamp DESC", "id DESC")
	} else {
		query = query.OrderBy("timestamp ASC", "id ASC")
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	return query.ToSql()
}

// moodRow is the column set written to mood_logs.
type moodRow struct {
	UserID    int64
	MoodName  string
	Timestamp time.Time
}
