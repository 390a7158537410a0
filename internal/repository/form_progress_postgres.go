package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/coachdesk/coachdesk/internal/domain"
)

type formProgressRepository struct {
	db *sql.DB
}

// NewFormProgressRepository creates a PostgreSQL store for schedule-call records
func NewFormProgressRepository(db *sql.DB) domain.FormProgressRepository {
	return &formProgressRepository{db: db}
}

func (r *formProgressRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.db, fn)
}

// GetScheduleCallTx locks the client's schedule-call record. A pending record
// wins over an assigned one; among equals the latest update wins.
func (r *formProgressRepository) GetScheduleCallTx(ctx context.Context, tx *sql.Tx, userID string) (*domain.FormProgress, error) {
	query, args, err := psql.
		Select("id", "user_id", "session_id", "form_id", "status", "score", "completed_at", "updated_at", "insights").
		From("user_session_form_progress").
		Where(sq.Eq{
			"user_id": userID,
			"form_id": domain.FormIDScheduleCall,
			"status":  domain.ScheduleCallStatuses,
		}).
		OrderBy("(status = 'pending') DESC", "updated_at DESC").
		Limit(1).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var (
		form        domain.FormProgress
		score       sql.NullInt64
		completedAt sql.NullString
	)
	err = tx.QueryRowContext(ctx, query, args...).Scan(
		&form.ID, &form.UserID, &form.SessionID, &form.FormID, &form.Status,
		&score, &completedAt, &form.UpdatedAt, &form.Insights,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrScheduleCallNotFound(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule-call form: %w", err)
	}

	form.Score = nullIntPtr(score)
	form.CompletedAt = nullStringPtr(completedAt)
	return &form, nil
}

func (r *formProgressRepository) UpdateTx(ctx context.Context, tx *sql.Tx, form *domain.FormProgress) error {
	insights, err := form.Insights.Value()
	if err != nil {
		return fmt.Errorf("failed to encode insights: %w", err)
	}

	query, args, err := psql.
		Update("user_session_form_progress").
		Set("status", form.Status).
		Set("insights", insights).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": form.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = tx.QueryRowContext(ctx, query, args...).Scan(&form.UpdatedAt)
	if err == sql.ErrNoRows {
		return domain.ErrScheduleCallNotFound(form.UserID)
	}
	if err != nil {
		return fmt.Errorf("failed to update schedule-call form: %w", err)
	}

	return nil
}
