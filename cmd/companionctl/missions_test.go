package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"companion/internal/domain/gamification"
	mockUC "companion/internal/mocks/usecase"
	"companion/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignMissions_PrintsReport(t *testing.T) {
	missionUC := mockUC.NewMockMissionUsecase(t)
	missionUC.EXPECT().AssignMissions(mock.Anything, gamification.PeriodDaily, true).Return(&usecase.AssignmentReport{
		Period:   gamification.PeriodDaily,
		Eligible: 4,
		Assigned: 4,
		Duration: time.Second,
	}, nil)

	var out bytes.Buffer
	err := assignMissions(context.Background(), &out, missionUC, gamification.PeriodDaily, true)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "period:         daily\n")
	assert.Contains(t, out.String(), "assigned:       4\n")
	assert.Contains(t, out.String(), "failed batches: 0\n")
}

func TestAssignMissions_PartialFailureStillPrintsReport(t *testing.T) {
	missionUC := mockUC.NewMockMissionUsecase(t)
	missionUC.EXPECT().AssignMissions(mock.Anything, gamification.PeriodWeekly, false).Return(&usecase.AssignmentReport{
		Period:        gamification.PeriodWeekly,
		Eligible:      10,
		Assigned:      6,
		FailedBatches: 2,
	}, assert.AnError)

	var out bytes.Buffer
	err := assignMissions(context.Background(), &out, missionUC, gamification.PeriodWeekly, false)
	require.ErrorIs(t, err, assert.AnError)

	assert.Contains(t, out.String(), "assigned:       6\n")
	assert.Contains(t, out.String(), "failed batches: 2\n")
}

func TestAssignMissions_FailureWithoutReport(t *testing.T) {
	missionUC := mockUC.NewMockMissionUsecase(t)
	missionUC.EXPECT().AssignMissions(mock.Anything, gamification.PeriodDaily, false).Return(nil, assert.AnError)

	var out bytes.Buffer
	err := assignMissions(context.Background(), &out, missionUC, gamification.PeriodDaily, false)
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, out.String())
}
