package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/coachdesk/coachdesk/internal/domain"
)

var coachColumns = []string{
	"id",
	"COALESCE(name, '')",
	"COALESCE(email, '')",
	"COALESCE(clients, '{}')",
	"session_links",
	"created_at",
	"updated_at",
}

type coachRepository struct {
	db *sql.DB
}

// NewCoachRepository creates a PostgreSQL coach directory
func NewCoachRepository(db *sql.DB) domain.CoachRepository {
	return &coachRepository{db: db}
}

func coachNotFound(id string) error {
	return &domain.ErrNotFound{Entity: "coach", ID: id, Message: "Coach not found"}
}

func scanCoach(row sq.RowScanner) (*domain.Coach, error) {
	var (
		c                    domain.Coach
		clients              pq.StringArray
		sessionLinks         sql.NullString
		createdAt, updatedAt sql.NullTime
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &clients, &sessionLinks, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	c.Clients = []string(clients)
	if c.Clients == nil {
		c.Clients = []string{}
	}
	c.SessionLinks = nullStringPtr(sessionLinks)
	c.CreatedAt = nullTimeValue(createdAt)
	c.UpdatedAt = nullTimeValue(updatedAt)
	return &c, nil
}

func (r *coachRepository) ListCoaches(ctx context.Context) ([]*domain.CoachSummary, error) {
	query, args, err := psql.
		Select("id", "COALESCE(name, '')", "COALESCE(email, '')").
		From("coaches").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list coaches: %w", err)
	}
	defer rows.Close()

	coaches := make([]*domain.CoachSummary, 0)
	for rows.Next() {
		var c domain.CoachSummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan coach: %w", err)
		}
		coaches = append(coaches, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coach rows: %w", err)
	}

	return coaches, nil
}

func (r *coachRepository) GetCoachTx(ctx context.Context, tx *sql.Tx, id string) (*domain.Coach, error) {
	query, args, err := psql.
		Select(coachColumns...).
		From("coaches").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	coach, err := scanCoach(tx.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, coachNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get coach: %w", err)
	}

	return coach, nil
}

func (r *coachRepository) UpdateClientsTx(ctx context.Context, tx *sql.Tx, id string, clients []string) error {
	if clients == nil {
		clients = []string{}
	}

	query, args, err := psql.
		Update("coaches").
		Set("clients", pq.Array(clients)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update coach clients: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return coachNotFound(id)
	}

	return nil
}

func (r *coachRepository) UpsertByEmail(ctx context.Context, input domain.CoachInput) (*domain.Coach, error) {
	query, args, err := psql.
		Insert("coaches").
		Columns("name", "email", "session_links").
		Values(input.Name, input.Email, input.SessionLinks).
		Suffix("ON CONFLICT (email) DO UPDATE SET " +
			"name = EXCLUDED.name, " +
			"session_links = COALESCE(EXCLUDED.session_links, coaches.session_links), " +
			"updated_at = now() " +
			"RETURNING id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(clients, '{}'), session_links, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	coach, err := scanCoach(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert coach %s: %w", input.Email, err)
	}

	return coach, nil
}

func (r *coachRepository) UpdateCoach(ctx context.Context, update domain.CoachUpdate) (*domain.Coach, error) {
	query, args, err := psql.
		Update("coaches").
		Set("name", update.Name).
		Set("email", update.Email).
		Set("session_links", sq.Expr("COALESCE(?, session_links)", update.SessionLinks)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(clients, '{}'), session_links, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	coach, err := scanCoach(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, coachNotFound(update.ID)
	}
	if isUniqueViolation(err) {
		return nil, &domain.ErrConflict{Entity: "coach", Message: fmt.Sprintf("email %s is already used by another coach", update.Email)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update coach: %w", err)
	}

	return coach, nil
}

func (r *coachRepository) DeleteCoach(ctx context.Context, id string) error {
	query, args, err := psql.
		Delete("coaches").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete coach: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return coachNotFound(id)
	}

	return nil
}
