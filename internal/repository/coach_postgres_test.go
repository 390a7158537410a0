package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/internal/repository/testutil"
)

var coachRowColumns = []string{"id", "name", "email", "clients", "session_links", "created_at", "updated_at"}

func beginTx(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock) *sql.Tx {
	t.Helper()
	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)
	return tx
}

func TestCoachRepository_ListCoaches(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCoachRepository(db)

	mock.ExpectQuery(`SELECT id, COALESCE\(name, ''\), COALESCE\(email, ''\) FROM coaches ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow("c2", "Grace", "grace@example.com").
			AddRow("c1", "Linus", "linus@example.com"))

	coaches, err := repo.ListCoaches(context.Background())
	require.NoError(t, err)
	require.Len(t, coaches, 2)
	assert.Equal(t, domain.CoachSummary{ID: "c2", Name: "Grace", Email: "grace@example.com"}, *coaches[0])

	mock.ExpectQuery(`FROM coaches`).WillReturnError(errors.New("timeout"))
	_, err = repo.ListCoaches(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list coaches")
}

func TestCoachRepository_GetCoachTx(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCoachRepository(db)
	tx := beginTx(t, db, mock)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM coaches WHERE id = \$1 FOR UPDATE`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(coachRowColumns).
			AddRow("c1", "Grace", "grace@example.com", "{u1,u2}", "https://meet.example.com/grace", now, nil))

	coach, err := repo.GetCoachTx(context.Background(), tx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, coach.Clients)
	require.NotNil(t, coach.SessionLinks)
	assert.Equal(t, "https://meet.example.com/grace", *coach.SessionLinks)
	assert.Equal(t, now, coach.CreatedAt)
	assert.True(t, coach.UpdatedAt.IsZero())

	mock.ExpectQuery(`FROM coaches WHERE id = \$1 FOR UPDATE`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(coachRowColumns))

	coach, err = repo.GetCoachTx(context.Background(), tx, "missing")
	require.Error(t, err)
	assert.Nil(t, coach)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "Coach not found", err.Error())

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
}

func TestCoachRepository_GetCoachTx_EmptyClients(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCoachRepository(db)
	tx := beginTx(t, db, mock)

	mock.ExpectQuery(`FROM coaches`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(coachRowColumns).
			AddRow("c1", "Grace", "grace@example.com", "{}", nil, nil, nil))

	coach, err := repo.GetCoachTx(context.Background(), tx, "c1")
	require.NoError(t, err)
	assert.NotNil(t, coach.Clients)
	assert.Empty(t, coach.Clients)
	assert.Nil(t, coach.SessionLinks)

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
}

func TestCoachRepository_UpdateClientsTx(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCoachRepository(db)
	tx := beginTx(t, db, mock)

	mock.ExpectExec(`UPDATE coaches SET clients = \$1, updated_at = now\(\) WHERE id = \$2`).
		WithArgs(sqlmock.AnyArg(), "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateClientsTx(context.Background(), tx, "c1", []string{"u1"}))

	mock.ExpectExec(`UPDATE coaches`).
		WithArgs(sqlmock.AnyArg(), "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateClientsTx(context.Background(), tx, "gone", nil)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	mock.ExpectExec(`UPDATE coaches`).
		WithArgs(sqlmock.AnyArg(), "c1").
		WillReturnError(errors.New("deadlock detected"))

	err = repo.UpdateClientsTx(context.Background(), tx, "c1", []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update coach clients")

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
}

func TestCoachRepository_UpsertByEmail(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCoachRepository(db)
	now := time.Now().UTC()
	link := "https://meet.example.com/grace"

	mock.ExpectQuery(`INSERT INTO coaches \(name,email,session_links\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(email\) DO UPDATE SET name = EXCLUDED.name, session_links = COALESCE\(EXCLUDED.session_links, coaches.session_links\)`).
		WithArgs("Grace", "grace@example.com", link).
		WillReturnRows(sqlmock.NewRows(coachRowColumns).
			AddRow("c1", "Grace", "grace@example.com", "{}", link, now, now))

	coach, err := repo.UpsertByEmail(context.Background(), domain.CoachInput{Name: "Grace", Email: "grace@example.com", SessionLinks: &link})
	require.NoError(t, err)
	assert.Equal(t, "c1", coach.ID)

	mock.ExpectQuery(`INSERT INTO coaches`).
		WithArgs("Linus", "linus@example.com", nil).
		WillReturnError(errors.New("boom"))

	_, err = repo.UpsertByEmail(context.Background(), domain.CoachInput{Name: "Linus", Email: "linus@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert coach linus@example.com")
}

func TestCoachRepository_UpdateCoach(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCoachRepository(db)
	now := time.Now().UTC()
	update := domain.CoachUpdate{ID: "c1", Name: "Grace H", Email: "grace@example.com"}

	mock.ExpectQuery(`UPDATE coaches SET name = \$1, email = \$2, session_links = COALESCE\(\$3, session_links\), updated_at = now\(\) WHERE id = \$4 RETURNING`).
		WithArgs("Grace H", "grace@example.com", nil, "c1").
		WillReturnRows(sqlmock.NewRows(coachRowColumns).
			AddRow("c1", "Grace H", "grace@example.com", "{u1}", "https://meet.example.com/old", now, now))

	coach, err := repo.UpdateCoach(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, "Grace H", coach.Name)
	assert.Equal(t, "https://meet.example.com/old", *coach.SessionLinks)

	mock.ExpectQuery(`UPDATE coaches`).
		WillReturnRows(sqlmock.NewRows(coachRowColumns))

	_, err = repo.UpdateCoach(context.Background(), update)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	mock.ExpectQuery(`UPDATE coaches`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.UpdateCoach(context.Background(), update)
	require.Error(t, err)
	var conflict *domain.ErrConflict
	require.True(t, errors.As(err, &conflict))
	assert.Contains(t, conflict.Message, "grace@example.com")
}

func TestCoachRepository_DeleteCoach(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewCoachRepository(db)

	mock.ExpectExec(`DELETE FROM coaches WHERE id = \$1`).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteCoach(context.Background(), "c1"))

	mock.ExpectExec(`DELETE FROM coaches`).
		WithArgs("c2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.DeleteCoach(context.Background(), "c2")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	mock.ExpectExec(`DELETE FROM coaches`).
		WithArgs("c3").
		WillReturnError(errors.New("boom"))
	err = repo.DeleteCoach(context.Background(), "c3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete coach")
}
