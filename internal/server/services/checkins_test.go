package services

import (
	"context"
	"testing"
	"time"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInService_CreateOncePerDay(t *testing.T) {
	ctx := context.Background()
	db, _ := newSQLMockDB(t)
	svc := NewCheckInService(db, newFakeRepoManager())
	now := time.Date(2026, 6, 2, 8, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	c, err := svc.Create(ctx, testUser, &models.CheckIn{Mood: models.MoodGood, TaskFeeling: models.TaskFeelingSmooth})
	require.NoError(t, err)
	assert.Equal(t, now, c.Date)

	_, err = svc.Create(ctx, testUser, &models.CheckIn{
		Date: now.Add(10 * time.Hour), Mood: models.MoodLow, TaskFeeling: models.TaskFeelingHard,
	})
	require.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, "Already checked in today", common.PublicMessage(err))

	_, err = svc.Create(ctx, testUser, &models.CheckIn{
		Date: now.AddDate(0, 0, 1), Mood: models.MoodLow, TaskFeeling: models.TaskFeelingHard,
	})
	require.NoError(t, err)
}

func TestCheckInService_CreateRaceMapsToConflict(t *testing.T) {
	ctx := context.Background()
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	svc := NewCheckInService(db, rm)
	svc.now = fixedClock(time.Date(2026, 6, 2, 8, 0, 0, 0, time.UTC))

	_, err := svc.Create(ctx, testUser, &models.CheckIn{Mood: models.MoodOkay, TaskFeeling: models.TaskFeelingOkay})
	require.NoError(t, err)

	rm.checkins.skipExists = true
	_, err = svc.Create(ctx, testUser, &models.CheckIn{Mood: models.MoodOkay, TaskFeeling: models.TaskFeelingOkay})
	require.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, "Already checked in today", common.PublicMessage(err))
}

func TestCheckInService_ListQuery(t *testing.T) {
	ctx := context.Background()
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	svc := NewCheckInService(db, rm)

	day := time.Date(2026, 6, 2, 15, 30, 0, 0, time.UTC)
	_, err := svc.List(ctx, testUser, CheckInQuery{Date: &day})
	require.NoError(t, err)
	require.NotNil(t, rm.checkins.lastFilter.From)
	assert.Equal(t, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), *rm.checkins.lastFilter.From)
	assert.Equal(t, time.Date(2026, 6, 2, 23, 59, 59, int(999*time.Millisecond), time.UTC), *rm.checkins.lastFilter.To)

	start, end := day.AddDate(0, 0, -3), day
	_, err = svc.List(ctx, testUser, CheckInQuery{Start: &start, End: &end})
	require.NoError(t, err)
	assert.Equal(t, start, *rm.checkins.lastFilter.From)
	assert.Equal(t, end, *rm.checkins.lastFilter.To)

	// a half-open range is ignored
	_, err = svc.List(ctx, testUser, CheckInQuery{Start: &start})
	require.NoError(t, err)
	assert.Nil(t, rm.checkins.lastFilter.From)
}

func TestCheckInService_WeeklySummary(t *testing.T) {
	ctx := context.Background()
	db, _ := newSQLMockDB(t)
	svc := NewCheckInService(db, newFakeRepoManager())
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	entries := []struct {
		daysAgo int
		mood    models.Mood
		feeling models.TaskFeeling
	}{
		{0, models.MoodGood, models.TaskFeelingSmooth},
		{1, models.MoodGood, models.TaskFeelingOkay},
		{3, models.MoodLow, models.TaskFeelingSmooth},
		{10, models.MoodOkay, models.TaskFeelingHard},
	}
	for _, e := range entries {
		svc.now = fixedClock(now.AddDate(0, 0, -e.daysAgo))
		_, err := svc.Create(ctx, testUser, &models.CheckIn{Mood: e.mood, TaskFeeling: e.feeling})
		require.NoError(t, err)
	}

	svc.now = fixedClock(now)
	s, err := svc.WeeklySummary(ctx, testUser)
	require.NoError(t, err)

	assert.Equal(t, 3, s.TotalDays)
	assert.Equal(t, map[models.Mood]int{models.MoodGood: 2, models.MoodLow: 1}, s.MoodDistribution)
	assert.Equal(t, map[models.TaskFeeling]int{models.TaskFeelingSmooth: 2, models.TaskFeelingOkay: 1}, s.TaskFeelingDistribution)
}

func TestCheckInService_WeeklySummaryEmpty(t *testing.T) {
	db, _ := newSQLMockDB(t)
	svc := NewCheckInService(db, newFakeRepoManager())

	s, err := svc.WeeklySummary(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, 0, s.TotalDays)
	assert.Empty(t, s.MoodDistribution)
	assert.NotNil(t, s.MoodDistribution)
}
