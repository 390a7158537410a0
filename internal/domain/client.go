package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_client_service.go -package mocks github.com/coachdesk/coachdesk/internal/domain ClientService
//go:generate mockgen -destination mocks/mock_client_repository.go -package mocks github.com/coachdesk/coachdesk/internal/domain ClientRepository

// Client is a user of the coaching app. The admin API never writes it.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// JourneyClient is one dashboard row: a client with journey progress and
// the projection of their latest schedule-call record, if any
type JourneyClient struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	SessionID              *int      `json:"sessionId"`
	CreatedAt              time.Time `json:"createdAt"`
	CurrentSession         *int      `json:"currentSession"`
	TotalScore             *int      `json:"totalScore"`
	LastActiveDate         *string   `json:"lastActiveDate"`
	HasPendingScheduleCall bool      `json:"hasPendingScheduleCall"`
	SessionDatetime        *string   `json:"sessionDatetime"`
	FormStatus             *string   `json:"formStatus"`
	AssignedCoachID        *string   `json:"assignedCoachId"`
}

// ClientRepository reads clients and their journey state
type ClientRepository interface {
	// ListClients returns every client, newest first
	ListClients(ctx context.Context) ([]*Client, error)

	// ListJourneyClients returns clients that have journey progress, pending
	// schedule calls first, then by requested session time, then newest first
	ListJourneyClients(ctx context.Context) ([]*JourneyClient, error)

	GetClient(ctx context.Context, id string) (*Client, error)
}

// ClientService exposes the client roster readers
type ClientService interface {
	ListClients(ctx context.Context) ([]*Client, error)
	ListJourneyClients(ctx context.Context) ([]*JourneyClient, error)
}
