package domain

import (
	"context"
	"database/sql"
	"time"
)

//go:generate mockgen -destination mocks/mock_coach_service.go -package mocks github.com/coachdesk/coachdesk/internal/domain CoachService
//go:generate mockgen -destination mocks/mock_coach_repository.go -package mocks github.com/coachdesk/coachdesk/internal/domain CoachRepository

// Coach is a row of the coach directory. Clients mirrors the
// assignedCoachId stored on each client's schedule-call record.
type Coach struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Clients      []string  `json:"clients"`
	SessionLinks *string   `json:"sessionLinks"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Summary returns the public projection used by dropdowns and assignment results
func (c *Coach) Summary() CoachSummary {
	return CoachSummary{ID: c.ID, Name: c.Name, Email: c.Email}
}

// AddClient appends userID, dropping any earlier occurrence first
func (c *Coach) AddClient(userID string) {
	c.RemoveClient(userID)
	c.Clients = append(c.Clients, userID)
}

// RemoveClient drops every occurrence of userID and reports whether one was found
func (c *Coach) RemoveClient(userID string) bool {
	kept := make([]string, 0, len(c.Clients))
	removed := false
	for _, id := range c.Clients {
		if id == userID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	c.Clients = kept
	return removed
}

type CoachSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CoachInput is one row of a directory bulk upsert
type CoachInput struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	SessionLinks *string `json:"sessionLinks,omitempty"`
}

// CoachUpdate replaces name and email of an existing coach.
// A nil SessionLinks keeps the stored link.
type CoachUpdate struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	SessionLinks *string `json:"sessionLinks,omitempty"`
}

// CoachRepository manages the coaches table
type CoachRepository interface {
	// ListCoaches returns id, name and email of every coach, newest first
	ListCoaches(ctx context.Context) ([]*CoachSummary, error)

	// GetCoachTx reads a coach and locks its row until tx ends
	GetCoachTx(ctx context.Context, tx *sql.Tx, id string) (*Coach, error)

	// UpdateClientsTx replaces the clients list of a coach
	UpdateClientsTx(ctx context.Context, tx *sql.Tx, id string, clients []string) error

	// UpsertByEmail inserts a coach or updates the one sharing its email
	UpsertByEmail(ctx context.Context, input CoachInput) (*Coach, error)

	UpdateCoach(ctx context.Context, update CoachUpdate) (*Coach, error)
	DeleteCoach(ctx context.Context, id string) error
}

// CoachService exposes the coach directory
type CoachService interface {
	ListCoaches(ctx context.Context) ([]*CoachSummary, error)
	UpsertCoaches(ctx context.Context, inputs []CoachInput) ([]*Coach, error)
	UpdateCoach(ctx context.Context, update CoachUpdate) (*Coach, error)
	DeleteCoach(ctx context.Context, id string) error
}
