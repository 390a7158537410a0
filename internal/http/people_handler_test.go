package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/internal/domain/mocks"
)

func setupPeopleHandler(t *testing.T) (*http.ServeMux, *mocks.MockRosterService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	roster := mocks.NewMockRosterService(ctrl)
	mux := http.NewServeMux()
	NewPeopleHandler(roster, newQuietLogger(ctrl)).RegisterRoutes(mux)
	return mux, roster
}

func TestPeopleHandler_List(t *testing.T) {
	mux, roster := setupPeopleHandler(t)

	roster.EXPECT().List(gomock.Any(), domain.RosterKindPeople, "owner").
		Return([]*domain.RosterEntry{{ID: "p1", UserID: "owner", Data: domain.RawJSON(`{"name":"Ada"}`)}}, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/people?userId=owner", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("Expires"))
	env := decodeEnvelope(t, rec)
	assert.Contains(t, string(env.Data), `"data":{"name":"Ada"}`)
}

func TestPeopleHandler_List_MissingOwner(t *testing.T) {
	mux, roster := setupPeopleHandler(t)
	roster.EXPECT().List(gomock.Any(), domain.RosterKindPeople, "").Return(nil, domain.NewValidationError("userId required"))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/people", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "userId required", decodeEnvelope(t, rec).Error)
}

func TestPeopleHandler_Insert(t *testing.T) {
	mux, roster := setupPeopleHandler(t)

	roster.EXPECT().InsertMany(gomock.Any(), domain.RosterKindPeople, "owner", gomock.Len(1)).
		Return([]map[string]json.RawMessage{{"id": json.RawMessage(`"p1"`), "name": json.RawMessage(`"Ada"`)}}, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/people",
		strings.NewReader(`{"userId":"owner","people":[{"name":"Ada"}]}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `[{"id":"p1","name":"Ada"}]`, string(env.Data))
}

func TestPeopleHandler_Update(t *testing.T) {
	mux, roster := setupPeopleHandler(t)

	roster.EXPECT().Update(gomock.Any(), domain.RosterKindPeople, "owner", gomock.Any()).
		Return(domain.NewValidationError("userId and person with id required"))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/people",
		strings.NewReader(`{"userId":"owner","person":{"name":"Ada"}}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "userId and person with id required", decodeEnvelope(t, rec).Error)
}

func TestPeopleHandler_Delete(t *testing.T) {
	mux, roster := setupPeopleHandler(t)

	roster.EXPECT().Delete(gomock.Any(), domain.RosterKindPeople, "owner", "p1").Return(nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/people?userId=owner&id=p1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	roster.EXPECT().Delete(gomock.Any(), domain.RosterKindPeople, "owner", "p2").Return(assert.AnError)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/people?userId=owner&id=p2", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to delete person", decodeEnvelope(t, rec).Error)
}
