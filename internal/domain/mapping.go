package domain

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate mockgen -destination mocks/mock_mapping_service.go -package mocks github.com/coachdesk/coachdesk/internal/domain MappingService
//go:generate mockgen -destination mocks/mock_mapping_repository.go -package mocks github.com/coachdesk/coachdesk/internal/domain MappingRepository

// Mapping links a roster person to a coach email. MappingID equals
// PersonID so a person has at most one mapping.
type Mapping struct {
	MappingID  string    `json:"mapping_id"`
	UserID     string    `json:"user_id"`
	PersonID   string    `json:"person_id"`
	CoachEmail string    `json:"coach_email"`
	PersonData RawJSON   `json:"person_data"`
	MappedAt   time.Time `json:"mapped_at"`
}

// UpsertMappingRequest is the body of POST /api/mappings
type UpsertMappingRequest struct {
	UserID     string          `json:"userId"`
	PersonID   FlexibleID      `json:"personId"`
	CoachEmail string          `json:"coachEmail"`
	PersonData json.RawMessage `json:"personData,omitempty"`
}

// MappingRepository manages the mappings table
type MappingRepository interface {
	List(ctx context.Context, userID string) ([]*Mapping, error)

	// Upsert inserts or replaces the person's mapping. A nil personData
	// keeps the stored snapshot.
	Upsert(ctx context.Context, userID, personID, coachEmail string, personData RawJSON) error

	Delete(ctx context.Context, userID, personID string) error
}

type MappingService interface {
	List(ctx context.Context, userID string) ([]*Mapping, error)
	Upsert(ctx context.Context, req UpsertMappingRequest) error
	Delete(ctx context.Context, userID, personID string) error
}
