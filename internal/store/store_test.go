package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/soul-scribe/internal/config"
	"github.com/MKhiriev/soul-scribe/internal/logger"
)

func newTestDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect == config.DriverSQLite {
		classifier = NewSQLiteErrorClassifier()
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t, config.DriverPostgres)
	return &userRepository{DB: db, logger: logger.Nop()}, mock
}

func newTestMoodRepo(t *testing.T) (*moodRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t, config.DriverPostgres)
	return &moodRepository{DB: db, logger: logger.Nop()}, mock
}
