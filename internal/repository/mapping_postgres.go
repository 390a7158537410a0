package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/coachdesk/coachdesk/internal/domain"
)

type mappingRepository struct {
	db *sql.DB
}

// NewMappingRepository creates a PostgreSQL store for person to coach mappings
func NewMappingRepository(db *sql.DB) domain.MappingRepository {
	return &mappingRepository{db: db}
}

func (r *mappingRepository) List(ctx context.Context, userID string) ([]*domain.Mapping, error) {
	query, args, err := psql.
		Select("mapping_id", "user_id", "person_id", "coach_email", "person_data", "mapped_at").
		From("mappings").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("mapped_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	defer rows.Close()

	mappings := make([]*domain.Mapping, 0)
	for rows.Next() {
		var (
			m        domain.Mapping
			mappedAt sql.NullTime
		)
		if err := rows.Scan(&m.MappingID, &m.UserID, &m.PersonID, &m.CoachEmail, &m.PersonData, &mappedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mapping: %w", err)
		}
		m.MappedAt = nullTimeValue(mappedAt)
		mappings = append(mappings, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mapping rows: %w", err)
	}

	return mappings, nil
}

func (r *mappingRepository) Upsert(ctx context.Context, userID, personID, coachEmail string, personData domain.RawJSON) error {
	var snapshot interface{}
	if len(personData) > 0 {
		snapshot = string(personData)
	}

	query, args, err := psql.
		Insert("mappings").
		Columns("mapping_id", "user_id", "person_id", "coach_email", "person_data", "mapped_at").
		Values(personID, userID, personID, coachEmail, snapshot, sq.Expr("now()")).
		Suffix("ON CONFLICT (mapping_id) DO UPDATE SET " +
			"coach_email = EXCLUDED.coach_email, " +
			"person_data = COALESCE(EXCLUDED.person_data, mappings.person_data), " +
			"mapped_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert mapping for %s: %w", personID, err)
	}

	return nil
}

func (r *mappingRepository) Delete(ctx context.Context, userID, personID string) error {
	query, args, err := psql.
		Delete("mappings").
		Where(sq.Eq{"user_id": userID, "person_id": personID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete mapping for %s: %w", personID, err)
	}

	return nil
}
