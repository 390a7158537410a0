package domain

import "context"

//go:generate mockgen -destination mocks/mock_assignment_service.go -package mocks github.com/coachdesk/coachdesk/internal/domain AssignmentService

// AssignmentResult is returned after a coach was assigned to a client
type AssignmentResult struct {
	Coach       CoachSummary `json:"coach"`
	MeetingLink *string      `json:"meetingLink"`
	FormStatus  string       `json:"formStatus"`
}

// AssignCoachRequest is the body of PUT /api/clients/assign-coach.
// A nil or empty CoachID unassigns.
type AssignCoachRequest struct {
	UserID  string  `json:"userId"`
	CoachID *string `json:"coachId"`
}

// IsUnassign reports whether the request clears the assignment
func (r AssignCoachRequest) IsUnassign() bool {
	return r.CoachID == nil || *r.CoachID == ""
}

type UpdateSessionDatetimeRequest struct {
	UserID          string `json:"userId"`
	SessionDatetime string `json:"sessionDatetime"`
}

// AssignmentService keeps coach client lists and schedule-call insights in sync
type AssignmentService interface {
	AssignCoach(ctx context.Context, userID, coachID string) (*AssignmentResult, error)
	UnassignCoach(ctx context.Context, userID string) error
	UpdateSessionDatetime(ctx context.Context, userID, sessionDatetime string) (*FormProgress, error)
}
