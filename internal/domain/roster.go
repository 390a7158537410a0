package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

//go:generate mockgen -destination mocks/mock_roster_service.go -package mocks github.com/coachdesk/coachdesk/internal/domain RosterService
//go:generate mockgen -destination mocks/mock_roster_repository.go -package mocks github.com/coachdesk/coachdesk/internal/domain RosterRepository

// RosterKind selects one of the spreadsheet-imported roster tables
type RosterKind string

const (
	RosterKindPeople  RosterKind = "people"
	RosterKindCoaches RosterKind = "coaches"
)

// ParseRosterKind maps an import kind to a roster. Anything other than
// "coaches" is a people import.
func ParseRosterKind(kind string) RosterKind {
	if kind == string(RosterKindCoaches) {
		return RosterKindCoaches
	}
	return RosterKindPeople
}

// Table returns the table backing the roster. The coach roster is kept
// apart from the coaches directory, which has a different shape.
func (k RosterKind) Table() string {
	if k == RosterKindCoaches {
		return "roster_coaches"
	}
	return "people"
}

// Singular names one record of the roster in error messages
func (k RosterKind) Singular() string {
	if k == RosterKindCoaches {
		return "coach"
	}
	return "person"
}

// RosterEntry is a stored roster row
type RosterEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Role      *string   `json:"role"`
	Data      RawJSON   `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// RosterRecord is one incoming spreadsheet row with its denormalized columns
// pulled out. Name, Email and Role are nil when the row lacks the key.
type RosterRecord struct {
	ID       string
	HasID    bool
	Name     *string
	Email    *string
	Role     *string
	Data     json.RawMessage
	original gjson.Result
}

// ParseRosterRecord reads a JSON object row. A row without an id gets a
// random one.
func ParseRosterRecord(raw json.RawMessage) (*RosterRecord, error) {
	if !gjson.ValidBytes(raw) {
		return nil, NewValidationError("each record must be valid JSON")
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return nil, NewValidationError("each record must be a JSON object")
	}

	rec := &RosterRecord{
		Data:     json.RawMessage(parsed.Raw),
		original: parsed,
	}

	if id := parsed.Get("id"); id.Exists() && id.Type != gjson.Null && id.String() != "" {
		rec.ID = id.String()
		rec.HasID = true
	} else {
		rec.ID = uuid.New().String()
	}

	rec.Name = optionalString(parsed.Get("name"))
	rec.Email = optionalString(parsed.Get("email"))
	rec.Role = optionalString(parsed.Get("role"))

	return rec, nil
}

func optionalString(r gjson.Result) *string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	s := r.String()
	return &s
}

// NameOrEmpty returns the name column written on bulk insert
func (r *RosterRecord) NameOrEmpty() string { return valueOrEmpty(r.Name) }

// EmailOrEmpty returns the email column written on bulk insert
func (r *RosterRecord) EmailOrEmpty() string { return valueOrEmpty(r.Email) }

// RoleOrEmpty returns the role column written on bulk insert
func (r *RosterRecord) RoleOrEmpty() string { return valueOrEmpty(r.Role) }

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// WithID returns the record's keys with the resolved id set, as echoed
// back by a bulk insert
func (r *RosterRecord) WithID() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage)
	r.original.ForEach(func(key, value gjson.Result) bool {
		out[key.String()] = json.RawMessage(value.Raw)
		return true
	})
	id, _ := json.Marshal(r.ID)
	out["id"] = id
	return out
}

// RosterRepository manages the people and roster_coaches tables
type RosterRepository interface {
	// List returns the owner's rows, newest first
	List(ctx context.Context, kind RosterKind, userID string) ([]*RosterEntry, error)

	// InsertMany writes every record in one transaction. Columns are set
	// as given; on id conflict only the data payload is merged.
	InsertMany(ctx context.Context, kind RosterKind, userID string, records []*RosterRecord) error

	// Upsert writes one record; on id conflict absent columns keep their
	// stored value and the data payload is merged
	Upsert(ctx context.Context, kind RosterKind, userID string, record *RosterRecord) error

	Delete(ctx context.Context, kind RosterKind, userID, id string) error
}

// RosterService validates and stores roster rows
type RosterService interface {
	List(ctx context.Context, kind RosterKind, userID string) ([]*RosterEntry, error)
	InsertMany(ctx context.Context, kind RosterKind, userID string, records []json.RawMessage) ([]map[string]json.RawMessage, error)
	Update(ctx context.Context, kind RosterKind, userID string, record json.RawMessage) error
	Delete(ctx context.Context, kind RosterKind, userID, id string) error

	// Import is the bulk insert used by spreadsheet migration
	Import(ctx context.Context, userID, kind string, items []json.RawMessage) error
}
