package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/pkg/logger"
	"github.com/coachdesk/coachdesk/pkg/mailer"
	"github.com/coachdesk/coachdesk/pkg/tracing"
)

// AssignmentService moves clients between coaches and schedules their call.
// Every change runs in one transaction holding the schedule-call row lock.
type AssignmentService struct {
	forms   domain.FormProgressRepository
	coaches domain.CoachRepository
	clients domain.ClientRepository
	mailer  mailer.Mailer
	logger  logger.Logger
}

// NewAssignmentService creates the service. A nil mailer disables coach
// notifications.
func NewAssignmentService(
	forms domain.FormProgressRepository,
	coaches domain.CoachRepository,
	clients domain.ClientRepository,
	notifier mailer.Mailer,
	logger logger.Logger,
) *AssignmentService {
	return &AssignmentService{
		forms:   forms,
		coaches: coaches,
		clients: clients,
		mailer:  notifier,
		logger:  logger,
	}
}

func (s *AssignmentService) AssignCoach(ctx context.Context, userID, coachID string) (*domain.AssignmentResult, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "AssignmentService", "AssignCoach")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "user_id", userID)
	tracing.AddAttribute(ctx, "coach_id", coachID)

	if strings.TrimSpace(userID) == "" {
		return nil, domain.NewValidationError("User ID is required")
	}
	if coachID == "" {
		return nil, domain.NewValidationError("Coach id is required")
	}

	var (
		result *domain.AssignmentResult
		coach  *domain.Coach
		form   *domain.FormProgress
	)
	err := s.forms.WithTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		form, err = s.forms.GetScheduleCallTx(ctx, tx, userID)
		if err != nil {
			return err
		}

		previous := form.Insights.AssignedCoach()
		locked, err := s.lockCoaches(ctx, tx, coachID, previous)
		if err != nil {
			return err
		}

		coach = locked[coachID]
		if coach == nil {
			return &domain.ErrNotFound{Entity: "coach", ID: coachID, Message: "Coach not found"}
		}

		if old := locked[previous]; old != nil && previous != coachID {
			if old.RemoveClient(userID) {
				if err := s.coaches.UpdateClientsTx(ctx, tx, old.ID, old.Clients); err != nil {
					return err
				}
			}
		}

		coach.AddClient(userID)
		if err := s.coaches.UpdateClientsTx(ctx, tx, coach.ID, coach.Clients); err != nil {
			return err
		}

		form.Insights.SetAssignment(coach.ID, coach.SessionLinks)
		form.Status = domain.FormStatusAssigned
		if err := s.forms.UpdateTx(ctx, tx, form); err != nil {
			return err
		}

		result = &domain.AssignmentResult{
			Coach:       coach.Summary(),
			MeetingLink: coach.SessionLinks,
			FormStatus:  form.Status,
		}
		return nil
	})
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		if isClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to assign coach: %w", err)
	}

	s.notifyCoach(ctx, userID, coach, form)

	return result, nil
}

// UnassignCoach detaches the client from its coach. A stale coach id in the
// insights is dropped without error.
func (s *AssignmentService) UnassignCoach(ctx context.Context, userID string) error {
	ctx, span := tracing.StartServiceSpan(ctx, "AssignmentService", "UnassignCoach")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "user_id", userID)

	if strings.TrimSpace(userID) == "" {
		return domain.NewValidationError("User ID is required")
	}

	err := s.forms.WithTransaction(ctx, func(tx *sql.Tx) error {
		form, err := s.forms.GetScheduleCallTx(ctx, tx, userID)
		if err != nil {
			return err
		}

		previous := form.Insights.AssignedCoach()
		locked, err := s.lockCoaches(ctx, tx, previous)
		if err != nil {
			return err
		}

		if old := locked[previous]; old != nil && old.RemoveClient(userID) {
			if err := s.coaches.UpdateClientsTx(ctx, tx, old.ID, old.Clients); err != nil {
				return err
			}
		}

		form.Insights.ClearAssignment()
		form.Status = domain.FormStatusPending
		return s.forms.UpdateTx(ctx, tx, form)
	})
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		if isClientError(err) {
			return err
		}
		return fmt.Errorf("failed to unassign coach: %w", err)
	}

	return nil
}

// UpdateSessionDatetime stores the scheduled call time. The value is kept
// as given.
func (s *AssignmentService) UpdateSessionDatetime(ctx context.Context, userID, sessionDatetime string) (*domain.FormProgress, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "AssignmentService", "UpdateSessionDatetime")
	defer tracing.EndSpan(span, nil)
	tracing.AddAttribute(ctx, "user_id", userID)

	if strings.TrimSpace(userID) == "" || strings.TrimSpace(sessionDatetime) == "" {
		return nil, domain.NewValidationError("User ID and session datetime are required")
	}

	var form *domain.FormProgress
	err := s.forms.WithTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		form, err = s.forms.GetScheduleCallTx(ctx, tx, userID)
		if err != nil {
			return err
		}

		form.Insights.SetSessionDatetime(sessionDatetime)
		return s.forms.UpdateTx(ctx, tx, form)
	})
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		if isClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update session datetime: %w", err)
	}

	return form, nil
}

// lockCoaches reads and locks the given coaches in id order. Missing coaches
// and ids that cannot be coach ids are absent from the result.
func (s *AssignmentService) lockCoaches(ctx context.Context, tx *sql.Tx, ids ...string) (map[string]*domain.Coach, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] || !govalidator.IsUUID(id) {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	sort.Strings(unique)

	locked := make(map[string]*domain.Coach, len(unique))
	for _, id := range unique {
		coach, err := s.coaches.GetCoachTx(ctx, tx, id)
		if domain.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		locked[id] = coach
	}

	return locked, nil
}

// notifyCoach emails the newly assigned coach. Failures are logged only,
// the assignment is already committed.
func (s *AssignmentService) notifyCoach(ctx context.Context, userID string, coach *domain.Coach, form *domain.FormProgress) {
	if s.mailer == nil || coach == nil || coach.Email == "" {
		return
	}

	notice := mailer.CoachAssignmentNotice{
		CoachEmail: coach.Email,
		CoachName:  coach.Name,
	}
	if coach.SessionLinks != nil {
		notice.MeetingLink = *coach.SessionLinks
	}
	if form != nil && form.Insights.SessionDatetime != nil {
		notice.SessionDatetime = *form.Insights.SessionDatetime
	}

	client, err := s.clients.GetClient(ctx, userID)
	if err != nil {
		s.logger.WithField("user_id", userID).Warn(fmt.Sprintf("Failed to load client for coach notification: %v", err))
	} else {
		notice.ClientName = client.Name
		notice.ClientEmail = client.Email
	}

	if err := s.mailer.SendCoachAssignment(notice); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":  userID,
			"coach_id": coach.ID,
		}).Error(fmt.Sprintf("Failed to send coach assignment email: %v", err))
	}
}
