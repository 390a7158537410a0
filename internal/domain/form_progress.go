package domain

import (
	"context"
	"database/sql"
	"time"
)

//go:generate mockgen -destination mocks/mock_form_progress_repository.go -package mocks github.com/coachdesk/coachdesk/internal/domain FormProgressRepository

const (
	FormIDScheduleCall = "schedule-call"

	FormStatusPending  = "pending"
	FormStatusAssigned = "assigned"
)

// ScheduleCallStatuses are the statuses under which a schedule-call
// record is still open for assignment and scheduling
var ScheduleCallStatuses = []string{FormStatusPending, FormStatusAssigned}

// FormProgress is a row of user_session_form_progress
type FormProgress struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	SessionID   int       `json:"sessionId"`
	FormID      string    `json:"formId"`
	Status      string    `json:"status"`
	Score       *int      `json:"score"`
	CompletedAt *string   `json:"completedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Insights    Insights  `json:"insights"`
}

// ErrScheduleCallNotFound is returned when a client has no open schedule-call record
func ErrScheduleCallNotFound(userID string) error {
	return &ErrNotFound{
		Entity:  "schedule-call form",
		ID:      userID,
		Message: "No pending schedule-call form found for this user",
	}
}

// FormProgressRepository reads and writes schedule-call records
type FormProgressRepository interface {
	// WithTransaction runs fn inside one database transaction
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error

	// GetScheduleCallTx returns the client's open schedule-call record,
	// pending before assigned, and locks it until tx ends
	GetScheduleCallTx(ctx context.Context, tx *sql.Tx, userID string) (*FormProgress, error)

	// UpdateTx persists status and insights and refreshes UpdatedAt
	UpdateTx(ctx context.Context, tx *sql.Tx, form *FormProgress) error
}
