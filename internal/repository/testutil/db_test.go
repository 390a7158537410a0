package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMockDB(t *testing.T) {
	t.Run("creates mock DB successfully", func(t *testing.T) {
		db, mock, cleanup := SetupMockDB(t)

		require.NotNil(t, db)
		require.NotNil(t, mock)
		assert.IsType(t, (*sql.DB)(nil), db)

		cleanup()
	})

	t.Run("cleanup closes database", func(t *testing.T) {
		db, _, cleanup := SetupMockDB(t)

		assert.NoError(t, db.Ping())
		cleanup()
		assert.Error(t, db.Ping())
	})

	t.Run("matches by regular expression", func(t *testing.T) {
		db, mock, cleanup := SetupMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT .* FROM coaches").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("1"))

		var id string
		require.NoError(t, db.QueryRow("SELECT id FROM coaches").Scan(&id))
		assert.Equal(t, "1", id)
	})
}

func TestSetupExactMockDB(t *testing.T) {
	db, mock, cleanup := SetupExactMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id FROM people WHERE user_id = $1").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))

	var id string
	require.NoError(t, db.QueryRow("SELECT id FROM people WHERE user_id = $1", "u1").Scan(&id))
	assert.Equal(t, "p1", id)
}
