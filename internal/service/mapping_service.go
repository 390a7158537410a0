package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/pkg/tracing"
)

type MappingService struct {
	repo domain.MappingRepository
}

func NewMappingService(repo domain.MappingRepository) *MappingService {
	return &MappingService{
		repo: repo,
	}
}

func (s *MappingService) List(ctx context.Context, userID string) ([]*domain.Mapping, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "MappingService", "List")
	defer tracing.EndSpan(span, nil)

	if strings.TrimSpace(userID) == "" {
		return nil, domain.NewValidationError("userId required")
	}

	mappings, err := s.repo.List(ctx, userID)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}

	return mappings, nil
}

// Upsert maps a person to a coach, replacing any earlier mapping of the
// person. Without a snapshot the stored person data is kept.
func (s *MappingService) Upsert(ctx context.Context, req domain.UpsertMappingRequest) error {
	ctx, span := tracing.StartServiceSpan(ctx, "MappingService", "Upsert")
	defer tracing.EndSpan(span, nil)

	userID := strings.TrimSpace(req.UserID)
	personID := strings.TrimSpace(string(req.PersonID))
	coachEmail := strings.TrimSpace(req.CoachEmail)

	if userID == "" || personID == "" || coachEmail == "" {
		return domain.NewValidationError("userId, personId and coachEmail required")
	}
	if !govalidator.IsEmail(coachEmail) {
		return domain.NewValidationError("coachEmail must be a valid email")
	}

	var snapshot domain.RawJSON
	if !isEmptyJSON(req.PersonData) {
		snapshot = domain.RawJSON(req.PersonData)
	}

	if err := s.repo.Upsert(ctx, userID, personID, coachEmail, snapshot); err != nil {
		tracing.MarkSpanError(ctx, err)
		return fmt.Errorf("failed to upsert mapping: %w", err)
	}

	return nil
}

func (s *MappingService) Delete(ctx context.Context, userID, personID string) error {
	ctx, span := tracing.StartServiceSpan(ctx, "MappingService", "Delete")
	defer tracing.EndSpan(span, nil)

	if strings.TrimSpace(userID) == "" || strings.TrimSpace(personID) == "" {
		return domain.NewValidationError("userId and personId required")
	}

	if err := s.repo.Delete(ctx, userID, personID); err != nil {
		tracing.MarkSpanError(ctx, err)
		return fmt.Errorf("failed to delete mapping: %w", err)
	}

	return nil
}
