package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/internal/database/schema"
)

func TestInitializeDatabase(t *testing.T) {
	t.Run("creates tables and indexes", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for range schema.TableDefinitions {
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
		}
		for range schema.IndexDefinitions {
			mock.ExpectExec("CREATE INDEX IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
		}

		assert.NoError(t, InitializeDatabase(db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("table creation fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS coaches").WillReturnError(errors.New("permission denied"))

		err = InitializeDatabase(db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create table")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("index creation fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for range schema.TableDefinitions {
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS").WillReturnError(errors.New("disk full"))

		err = InitializeDatabase(db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create index")
	})
}

func TestCleanDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for i := len(schema.TableNames) - 1; i >= 0; i-- {
		mock.ExpectExec("DROP TABLE IF EXISTS " + schema.TableNames[i] + " CASCADE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, CleanDatabase(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCleanDatabase_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DROP TABLE IF EXISTS mappings CASCADE").WillReturnError(errors.New("locked"))

	err = CleanDatabase(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to drop table mappings")
}
