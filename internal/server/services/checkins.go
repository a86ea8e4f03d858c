package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/datex"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/lifeos/lifeos/internal/server/repositories/repomanager"
)

const weeklyWindow = 7 * 24 * time.Hour

var errAlreadyCheckedIn = common.WithMessage(common.ErrConflict, "Already checked in today")

// CheckInQuery selects check-ins by a single calendar day or by an inclusive
// range. Date wins when both are given.
type CheckInQuery struct {
	Date  *time.Time
	Start *time.Time
	End   *time.Time
}

type CheckInService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewCheckInService(db *sql.DB, m repomanager.RepositoryManager) *CheckInService {
	return &CheckInService{db: db, repomanager: m, now: utcNow}
}

func (s *CheckInService) List(ctx context.Context, userID string, q CheckInQuery) ([]*models.CheckIn, error) {
	var filter models.CheckInFilter
	switch {
	case q.Date != nil:
		from, to := datex.DayRange(*q.Date)
		filter.From, filter.To = &from, &to
	case q.Start != nil && q.End != nil:
		filter.From, filter.To = q.Start, q.End
	}
	return s.repomanager.CheckIns(s.db).List(ctx, userID, filter)
}

// Create records the check-in for its calendar day. A missing date means now.
func (s *CheckInService) Create(ctx context.Context, userID string, c *models.CheckIn) (*models.CheckIn, error) {
	if c.Date.IsZero() {
		c.Date = s.now()
	}
	c.Note = strings.TrimSpace(c.Note)
	c.UserID = userID

	repo := s.repomanager.CheckIns(s.db)

	exists, err := repo.ExistsOnDay(ctx, userID, c.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errAlreadyCheckedIn
	}

	created, err := repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, errAlreadyCheckedIn
		}
		return nil, err
	}
	return created, nil
}

// WeeklySummary counts moods and task feelings over the trailing seven days.
// Only observed values appear as keys.
func (s *CheckInService) WeeklySummary(ctx context.Context, userID string) (*models.WeeklySummary, error) {
	to := s.now()
	from := to.Add(-weeklyWindow)

	list, err := s.repomanager.CheckIns(s.db).List(ctx, userID, models.CheckInFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	summary := &models.WeeklySummary{
		TotalDays:               len(list),
		MoodDistribution:        map[models.Mood]int{},
		TaskFeelingDistribution: map[models.TaskFeeling]int{},
	}
	for _, c := range list {
		summary.MoodDistribution[c.Mood]++
		summary.TaskFeelingDistribution[c.TaskFeeling]++
	}
	return summary, nil
}
