package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

const (
	InsightsAssignedCoachID = "assignedCoachId"
	InsightsMeetingLink     = "meeting_link"
	InsightsSessionDatetime = "session_datetime"
)

// Insights is the JSON side channel stored on a form progress row.
// The three keys the admin API writes are typed; every other key is kept
// verbatim in Extra so a read-modify-write never loses data.
type Insights struct {
	AssignedCoachID *string
	MeetingLink     *string
	SessionDatetime *string
	Extra           map[string]json.RawMessage
}

// AssignedCoach returns the assigned coach id or "" when unassigned
func (i *Insights) AssignedCoach() string {
	if i == nil || i.AssignedCoachID == nil {
		return ""
	}
	return *i.AssignedCoachID
}

// SetAssignment records the coach and the meeting link copied from the coach
func (i *Insights) SetAssignment(coachID string, meetingLink *string) {
	i.AssignedCoachID = &coachID
	i.MeetingLink = meetingLink
	delete(i.Extra, InsightsAssignedCoachID)
	delete(i.Extra, InsightsMeetingLink)
}

// ClearAssignment drops the coach id and meeting link, keeping every other key
func (i *Insights) ClearAssignment() {
	i.AssignedCoachID = nil
	i.MeetingLink = nil
	delete(i.Extra, InsightsAssignedCoachID)
	delete(i.Extra, InsightsMeetingLink)
}

func (i *Insights) SetSessionDatetime(value string) {
	i.SessionDatetime = &value
	delete(i.Extra, InsightsSessionDatetime)
}

// UnmarshalJSON implements json.Unmarshaler
func (i *Insights) UnmarshalJSON(data []byte) error {
	*i = Insights{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if !gjson.ValidBytes(trimmed) {
		return fmt.Errorf("invalid insights JSON")
	}

	parsed := gjson.ParseBytes(trimmed)
	if !parsed.IsObject() {
		return fmt.Errorf("insights must be a JSON object")
	}

	parsed.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if value.Type == gjson.String {
			s := value.String()
			switch k {
			case InsightsAssignedCoachID:
				i.AssignedCoachID = &s
				return true
			case InsightsMeetingLink:
				i.MeetingLink = &s
				return true
			case InsightsSessionDatetime:
				i.SessionDatetime = &s
				return true
			}
		}
		if value.Type == gjson.Null && isTypedInsightsKey(k) {
			return true
		}
		if i.Extra == nil {
			i.Extra = make(map[string]json.RawMessage)
		}
		i.Extra[k] = json.RawMessage(value.Raw)
		return true
	})

	return nil
}

func isTypedInsightsKey(k string) bool {
	return k == InsightsAssignedCoachID || k == InsightsMeetingLink || k == InsightsSessionDatetime
}

// MarshalJSON implements json.Marshaler
func (i Insights) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(i.Extra)+3)
	for k, v := range i.Extra {
		out[k] = v
	}

	typed := map[string]*string{
		InsightsAssignedCoachID: i.AssignedCoachID,
		InsightsMeetingLink:     i.MeetingLink,
		InsightsSessionDatetime: i.SessionDatetime,
	}
	for k, v := range typed {
		if v == nil {
			continue
		}
		b, err := json.Marshal(*v)
		if err != nil {
			return nil, err
		}
		out[k] = b
	}

	return json.Marshal(out)
}

// Scan implements the sql.Scanner interface
func (i *Insights) Scan(val interface{}) error {
	switch v := val.(type) {
	case nil:
		*i = Insights{}
		return nil
	case []byte:
		return i.UnmarshalJSON(bytes.Clone(v))
	case string:
		return i.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("unsupported insights type %T", val)
	}
}

// Value implements the driver.Valuer interface
func (i Insights) Value() (driver.Value, error) {
	return i.MarshalJSON()
}
