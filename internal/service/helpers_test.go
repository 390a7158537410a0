package service

import (
	"github.com/golang/mock/gomock"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/internal/domain/mocks"
)

var (
	_ domain.ClientService     = (*ClientService)(nil)
	_ domain.CoachService      = (*CoachService)(nil)
	_ domain.AssignmentService = (*AssignmentService)(nil)
	_ domain.RosterService     = (*RosterService)(nil)
	_ domain.MappingService    = (*MappingService)(nil)
)

// newQuietLogger returns a logger mock accepting any call
func newQuietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	l := mocks.NewMockLogger(ctrl)
	l.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(l).AnyTimes()
	l.EXPECT().WithFields(gomock.Any()).Return(l).AnyTimes()
	l.EXPECT().Debug(gomock.Any()).AnyTimes()
	l.EXPECT().Info(gomock.Any()).AnyTimes()
	l.EXPECT().Warn(gomock.Any()).AnyTimes()
	l.EXPECT().Error(gomock.Any()).AnyTimes()
	return l
}

func strPtr(s string) *string { return &s }
