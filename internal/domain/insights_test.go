package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestInsights_UnmarshalJSON(t *testing.T) {
	var in Insights
	err := json.Unmarshal([]byte(`{
		"assignedCoachId": "c1",
		"meeting_link": "https://meet/x",
		"session_datetime": "2026-10-20T10:00:00Z",
		"goals": ["sleep", "focus"],
		"score": 12345678901234567890
	}`), &in)
	require.NoError(t, err)

	assert.Equal(t, "c1", in.AssignedCoach())
	assert.Equal(t, "https://meet/x", *in.MeetingLink)
	assert.Equal(t, "2026-10-20T10:00:00Z", *in.SessionDatetime)
	require.Len(t, in.Extra, 2)
	assert.JSONEq(t, `["sleep","focus"]`, string(in.Extra["goals"]))
	assert.Equal(t, "12345678901234567890", string(in.Extra["score"]))
}

func TestInsights_UnmarshalJSON_EdgeCases(t *testing.T) {
	var in Insights

	require.NoError(t, in.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, Insights{}, in)

	require.NoError(t, in.UnmarshalJSON([]byte(``)))
	assert.Equal(t, Insights{}, in)

	assert.Error(t, in.UnmarshalJSON([]byte(`[1,2]`)))
	assert.Error(t, in.UnmarshalJSON([]byte(`{broken`)))

	// a null typed key is treated as absent
	require.NoError(t, in.UnmarshalJSON([]byte(`{"meeting_link": null}`)))
	assert.Nil(t, in.MeetingLink)
	assert.Empty(t, in.Extra)

	// a non-string typed key is kept verbatim
	require.NoError(t, in.UnmarshalJSON([]byte(`{"session_datetime": 1700000000}`)))
	assert.Nil(t, in.SessionDatetime)
	assert.Equal(t, "1700000000", string(in.Extra["session_datetime"]))
}

func TestInsights_MarshalJSON_RoundTrip(t *testing.T) {
	raw := `{"assignedCoachId":"c1","nested":{"a":[1,2,{"b":null}]},"session_datetime":"2026-10-20"}`

	var in Insights
	require.NoError(t, json.Unmarshal([]byte(raw), &in))

	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestInsights_MarshalJSON_Empty(t *testing.T) {
	out, err := json.Marshal(Insights{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}

func TestInsights_ClearAssignmentPreservesOtherKeys(t *testing.T) {
	var in Insights
	require.NoError(t, json.Unmarshal([]byte(`{"assignedCoachId":"c1","meeting_link":"https://meet/x","session_datetime":"2026-10-20","note":"keep"}`), &in))

	in.ClearAssignment()

	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"session_datetime":"2026-10-20","note":"keep"}`, string(out))
}

func TestInsights_SetAssignment(t *testing.T) {
	var in Insights
	require.NoError(t, json.Unmarshal([]byte(`{"assignedCoachId":42,"session_datetime":"2026-10-20"}`), &in))

	in.SetAssignment("c2", strPtr("https://meet/b"))

	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"assignedCoachId":"c2","meeting_link":"https://meet/b","session_datetime":"2026-10-20"}`, string(out))

	in.SetAssignment("c3", nil)
	out, err = json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"assignedCoachId":"c3","session_datetime":"2026-10-20"}`, string(out))
}

func TestInsights_SetSessionDatetimeOverwrites(t *testing.T) {
	in := Insights{AssignedCoachID: strPtr("c1")}
	in.SetSessionDatetime("2026-10-20T10:00:00Z")
	in.SetSessionDatetime("2026-10-21T11:00:00Z")

	assert.Equal(t, "2026-10-21T11:00:00Z", *in.SessionDatetime)
	assert.Equal(t, "c1", in.AssignedCoach())
}

func TestInsights_ScanValue(t *testing.T) {
	var in Insights
	require.NoError(t, in.Scan([]byte(`{"assignedCoachId":"c1","x":1}`)))
	assert.Equal(t, "c1", in.AssignedCoach())

	v, err := in.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"assignedCoachId":"c1","x":1}`, string(v.([]byte)))

	require.NoError(t, in.Scan(`{"meeting_link":"https://m"}`))
	assert.Equal(t, "https://m", *in.MeetingLink)
	assert.Equal(t, "", in.AssignedCoach())

	require.NoError(t, in.Scan(nil))
	assert.Equal(t, Insights{}, in)

	assert.Error(t, in.Scan(42))
}

func TestInsights_NilAssignedCoach(t *testing.T) {
	var in *Insights
	assert.Equal(t, "", in.AssignedCoach())
}
