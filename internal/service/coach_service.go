package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/pkg/tracing"
)

type CoachService struct {
	repo domain.CoachRepository
}

func NewCoachService(repo domain.CoachRepository) *CoachService {
	return &CoachService{
		repo: repo,
	}
}

func (s *CoachService) ListCoaches(ctx context.Context) ([]*domain.CoachSummary, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CoachService", "ListCoaches")
	defer tracing.EndSpan(span, nil)

	coaches, err := s.repo.ListCoaches(ctx)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to list coaches: %w", err)
	}

	return coaches, nil
}

// UpsertCoaches writes every input keyed by email. Inputs without an email
// are skipped.
func (s *CoachService) UpsertCoaches(ctx context.Context, inputs []domain.CoachInput) ([]*domain.Coach, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CoachService", "UpsertCoaches")
	defer tracing.EndSpan(span, nil)

	if len(inputs) == 0 {
		return nil, domain.NewValidationError("coaches array is required")
	}

	rows := make([]domain.CoachInput, 0, len(inputs))
	for _, in := range inputs {
		in.Email = strings.TrimSpace(in.Email)
		in.Name = strings.TrimSpace(in.Name)
		if in.Email == "" {
			continue
		}
		if !govalidator.IsEmail(in.Email) {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid coach email: %s", in.Email))
		}
		rows = append(rows, in)
	}

	inserted := make([]*domain.Coach, 0, len(rows))
	for _, in := range rows {
		coach, err := s.repo.UpsertByEmail(ctx, in)
		if err != nil {
			tracing.MarkSpanError(ctx, err)
			return nil, fmt.Errorf("failed to upsert coaches: %w", err)
		}
		inserted = append(inserted, coach)
	}

	tracing.AddAttribute(ctx, "coaches.skipped", len(inputs)-len(rows))
	return inserted, nil
}

func (s *CoachService) UpdateCoach(ctx context.Context, update domain.CoachUpdate) (*domain.Coach, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CoachService", "UpdateCoach")
	defer tracing.EndSpan(span, nil)

	update.Name = strings.TrimSpace(update.Name)
	update.Email = strings.TrimSpace(update.Email)

	if update.ID == "" {
		return nil, domain.NewValidationError("Coach id is required")
	}
	if update.Name == "" || update.Email == "" {
		return nil, domain.NewValidationError("Name and email are required")
	}
	if !govalidator.IsUUID(update.ID) {
		return nil, domain.NewValidationError("Coach id must be a UUID")
	}
	if !govalidator.IsEmail(update.Email) {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid coach email: %s", update.Email))
	}

	coach, err := s.repo.UpdateCoach(ctx, update)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		if isClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update coach: %w", err)
	}

	return coach, nil
}

func (s *CoachService) DeleteCoach(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("Coach id is required")
	}
	if !govalidator.IsUUID(id) {
		return domain.NewValidationError("Coach id must be a UUID")
	}

	return tracing.TraceMethod(ctx, "CoachService", "DeleteCoach", func(ctx context.Context) error {
		if err := s.repo.DeleteCoach(ctx, id); err != nil {
			if isClientError(err) {
				return err
			}
			return fmt.Errorf("failed to delete coach: %w", err)
		}
		return nil
	})
}
