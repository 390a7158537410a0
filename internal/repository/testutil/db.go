package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// SetupMockDB creates a mock database matching queries by regular expression
func SetupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	return setupMockDB(t, sqlmock.QueryMatcherRegexp)
}

// SetupExactMockDB creates a mock database matching queries verbatim.
// Useful to pin generated SQL.
func SetupExactMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	return setupMockDB(t, sqlmock.QueryMatcherEqual)
}

func setupMockDB(t *testing.T, matcher sqlmock.QueryMatcher) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	require.NoError(t, err)

	cleanup := func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	}

	return db, mock, cleanup
}
