package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/coachdesk/coachdesk/internal/domain"
)

type rosterRepository struct {
	db *sql.DB
}

// NewRosterRepository creates a PostgreSQL store for the people and coach rosters
func NewRosterRepository(db *sql.DB) domain.RosterRepository {
	return &rosterRepository{db: db}
}

// mergeData merges the incoming payload over the stored one. The WHERE
// clause keeps an id owned by another user untouched.
func mergeData(table string) string {
	return fmt.Sprintf("data = COALESCE(%[1]s.data, '{}'::jsonb) || EXCLUDED.data WHERE %[1]s.user_id = EXCLUDED.user_id", table)
}

func (r *rosterRepository) List(ctx context.Context, kind domain.RosterKind, userID string) ([]*domain.RosterEntry, error) {
	query, args, err := psql.
		Select("id", "user_id", "name", "email", "role", "data", "created_at").
		From(kind.Table()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer rows.Close()

	entries := make([]*domain.RosterEntry, 0)
	for rows.Next() {
		var (
			e                 domain.RosterEntry
			name, email, role sql.NullString
			createdAt         sql.NullTime
		)
		if err := rows.Scan(&e.ID, &e.UserID, &name, &email, &role, &e.Data, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", kind.Singular(), err)
		}
		e.Name = nullStringPtr(name)
		e.Email = nullStringPtr(email)
		e.Role = nullStringPtr(role)
		e.CreatedAt = nullTimeValue(createdAt)
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", kind, err)
	}

	return entries, nil
}

func (r *rosterRepository) InsertMany(ctx context.Context, kind domain.RosterKind, userID string, records []*domain.RosterRecord) error {
	table := kind.Table()

	return withTransaction(ctx, r.db, func(tx *sql.Tx) error {
		for _, rec := range records {
			query, args, err := psql.
				Insert(table).
				Columns("id", "user_id", "name", "email", "role", "data").
				Values(rec.ID, userID, rec.NameOrEmpty(), rec.EmailOrEmpty(), rec.RoleOrEmpty(), string(rec.Data)).
				Suffix("ON CONFLICT (id) DO UPDATE SET " + mergeData(table)).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to insert %s %s: %w", kind.Singular(), rec.ID, err)
			}
		}
		return nil
	})
}

func (r *rosterRepository) Upsert(ctx context.Context, kind domain.RosterKind, userID string, rec *domain.RosterRecord) error {
	table := kind.Table()

	query, args, err := psql.
		Insert(table).
		Columns("id", "user_id", "name", "email", "role", "data").
		Values(rec.ID, userID, rec.Name, rec.Email, rec.Role, string(rec.Data)).
		Suffix(fmt.Sprintf("ON CONFLICT (id) DO UPDATE SET "+
			"name = COALESCE(EXCLUDED.name, %[1]s.name), "+
			"email = COALESCE(EXCLUDED.email, %[1]s.email), "+
			"role = COALESCE(EXCLUDED.role, %[1]s.role), ", table) + mergeData(table)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert %s %s: %w", kind.Singular(), rec.ID, err)
	}

	return nil
}

// Delete removes the owner's row. Deleting a missing row is not an error.
func (r *rosterRepository) Delete(ctx context.Context, kind domain.RosterKind, userID, id string) error {
	query, args, err := psql.
		Delete(kind.Table()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", kind.Singular(), id, err)
	}

	return nil
}
