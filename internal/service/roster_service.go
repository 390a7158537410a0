package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/pkg/tracing"
)

// RosterService stores the people and coach rows imported from spreadsheets
type RosterService struct {
	repo domain.RosterRepository
}

func NewRosterService(repo domain.RosterRepository) *RosterService {
	return &RosterService{
		repo: repo,
	}
}

func (s *RosterService) List(ctx context.Context, kind domain.RosterKind, userID string) ([]*domain.RosterEntry, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "RosterService", "List")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "roster.kind", string(kind))

	if strings.TrimSpace(userID) == "" {
		return nil, domain.NewValidationError("userId required")
	}

	entries, err := s.repo.List(ctx, kind, userID)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}

	return entries, nil
}

// InsertMany stores every record and echoes them back with their ids
func (s *RosterService) InsertMany(ctx context.Context, kind domain.RosterKind, userID string, records []json.RawMessage) ([]map[string]json.RawMessage, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "RosterService", "InsertMany")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "roster.kind", string(kind))

	if strings.TrimSpace(userID) == "" || len(records) == 0 {
		return nil, domain.NewValidationError(fmt.Sprintf("userId and %s required", kind))
	}

	parsed, err := s.insert(ctx, kind, userID, records)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}

	out := make([]map[string]json.RawMessage, 0, len(parsed))
	for _, rec := range parsed {
		out = append(out, rec.WithID())
	}
	return out, nil
}

// Update upserts a single record, which must carry its id
func (s *RosterService) Update(ctx context.Context, kind domain.RosterKind, userID string, record json.RawMessage) error {
	ctx, span := tracing.StartServiceSpan(ctx, "RosterService", "Update")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "roster.kind", string(kind))

	missing := domain.NewValidationError(fmt.Sprintf("userId and %s with id required", kind.Singular()))
	if strings.TrimSpace(userID) == "" || isEmptyJSON(record) {
		return missing
	}

	rec, err := domain.ParseRosterRecord(record)
	if err != nil {
		return err
	}
	if !rec.HasID {
		return missing
	}

	if err := s.repo.Upsert(ctx, kind, userID, rec); err != nil {
		tracing.MarkSpanError(ctx, err)
		return fmt.Errorf("failed to update %s: %w", kind.Singular(), err)
	}

	return nil
}

func (s *RosterService) Delete(ctx context.Context, kind domain.RosterKind, userID, id string) error {
	ctx, span := tracing.StartServiceSpan(ctx, "RosterService", "Delete")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "roster.kind", string(kind))

	if strings.TrimSpace(userID) == "" || strings.TrimSpace(id) == "" {
		return domain.NewValidationError("userId and id required")
	}

	if err := s.repo.Delete(ctx, kind, userID, id); err != nil {
		tracing.MarkSpanError(ctx, err)
		return fmt.Errorf("failed to delete %s: %w", kind.Singular(), err)
	}

	return nil
}

// Import bulk inserts spreadsheet rows. A kind other than "coaches" is a
// people import.
func (s *RosterService) Import(ctx context.Context, userID, kind string, items []json.RawMessage) error {
	ctx, span := tracing.StartServiceSpan(ctx, "RosterService", "Import")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "import.kind", kind)
	tracing.AddAttribute(ctx, "import.items", len(items))

	if strings.TrimSpace(userID) == "" || strings.TrimSpace(kind) == "" || len(items) == 0 {
		return domain.NewValidationError("userId, kind and items required")
	}

	if _, err := s.insert(ctx, domain.ParseRosterKind(kind), userID, items); err != nil {
		tracing.MarkSpanError(ctx, err)
		return err
	}

	return nil
}

func (s *RosterService) insert(ctx context.Context, kind domain.RosterKind, userID string, records []json.RawMessage) ([]*domain.RosterRecord, error) {
	parsed := make([]*domain.RosterRecord, 0, len(records))
	for _, raw := range records {
		rec, err := domain.ParseRosterRecord(raw)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, rec)
	}

	if err := s.repo.InsertMany(ctx, kind, userID, parsed); err != nil {
		return nil, fmt.Errorf("failed to insert %s: %w", kind, err)
	}

	return parsed, nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
