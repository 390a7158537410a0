package service

import (
	"context"
	"fmt"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/pkg/tracing"
)

type ClientService struct {
	repo domain.ClientRepository
}

func NewClientService(repo domain.ClientRepository) *ClientService {
	return &ClientService{
		repo: repo,
	}
}

func (s *ClientService) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return tracing.TraceMethodWithResult(ctx, "ClientService", "ListClients", func(ctx context.Context) ([]*domain.Client, error) {
		clients, err := s.repo.ListClients(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list clients: %w", err)
		}
		tracing.AddAttribute(ctx, "clients.count", len(clients))
		return clients, nil
	})
}

// ListJourneyClients returns the journey roster, clients waiting for a
// coach first
func (s *ClientService) ListJourneyClients(ctx context.Context) ([]*domain.JourneyClient, error) {
	return tracing.TraceMethodWithResult(ctx, "ClientService", "ListJourneyClients", func(ctx context.Context) ([]*domain.JourneyClient, error) {
		clients, err := s.repo.ListJourneyClients(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list journey clients: %w", err)
		}
		tracing.AddAttribute(ctx, "clients.count", len(clients))
		return clients, nil
	})
}
