package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/coachdesk/coachdesk/internal/domain"
)

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a PostgreSQL reader over the coaching app's users
func NewClientRepository(db *sql.DB) domain.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) ListClients(ctx context.Context) ([]*domain.Client, error) {
	query, args, err := psql.
		Select("id", "COALESCE(name, '')", "email", "created_at").
		From(`"User"`).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	query, args, err := psql.
		Select("id", "COALESCE(name, '')", "email", "created_at").
		From(`"User"`).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var c domain.Client
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "client", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &c, nil
}

// journeyQuery joins each client with one open schedule-call record: the
// latest pending one, else the latest assigned one. The lateral subquery
// keeps one row per client.
func journeyQuery() (string, []interface{}, error) {
	latest, latestArgs, err := sq.
		Select("f.session_id", "f.status", "f.insights").
		From("user_session_form_progress f").
		Where("f.user_id = u.id").
		Where(sq.Eq{
			"f.form_id": domain.FormIDScheduleCall,
			"f.status":  domain.ScheduleCallStatuses,
		}).
		OrderBy("(f.status = 'pending') DESC", "f.updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return psql.
		Select(
			"u.id",
			"COALESCE(u.name, '')",
			"u.email",
			"sf.session_id",
			"u.created_at",
			"jp.current_session",
			"jp.total_score",
			"jp.last_active_date",
			"COALESCE(sf.status = 'pending', false) AS has_pending_schedule_call",
			"CASE WHEN sf.status = 'pending' THEN sf.insights->>'session_datetime' END AS session_datetime",
			"sf.status",
			"sf.insights->>'assignedCoachId' AS assigned_coach_id",
		).
		From(`"User" u`).
		Join("journey_progress jp ON jp.user_id = u.id").
		LeftJoin("LATERAL ("+latest+") sf ON true", latestArgs...).
		OrderBy(
			"CASE WHEN sf.status = 'pending' THEN 0 ELSE 1 END",
			"CASE WHEN sf.status = 'pending' THEN COALESCE(sf.insights->>'session_datetime', '9999-12-31') ELSE '9999-12-31' END",
			"u.created_at DESC",
		).
		ToSql()
}

func (r *clientRepository) ListJourneyClients(ctx context.Context) ([]*domain.JourneyClient, error) {
	query, args, err := journeyQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journey clients: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.JourneyClient, 0)
	for rows.Next() {
		var (
			c                         domain.JourneyClient
			sessionID, currentSession sql.NullInt64
			totalScore                sql.NullInt64
			lastActive, sessionAt     sql.NullString
			formStatus, assignedCoach sql.NullString
		)
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &sessionID, &c.CreatedAt,
			&currentSession, &totalScore, &lastActive,
			&c.HasPendingScheduleCall, &sessionAt, &formStatus, &assignedCoach,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journey client: %w", err)
		}

		c.SessionID = nullIntPtr(sessionID)
		c.CurrentSession = nullIntPtr(currentSession)
		c.TotalScore = nullIntPtr(totalScore)
		c.LastActiveDate = nullStringPtr(lastActive)
		c.SessionDatetime = nullStringPtr(sessionAt)
		c.FormStatus = nullStringPtr(formStatus)
		c.AssignedCoachID = nullStringPtr(assignedCoach)
		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journey client rows: %w", err)
	}

	return clients, nil
}
