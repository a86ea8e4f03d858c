package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/datex"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/lifeos/lifeos/internal/server/repositories/repomanager"
	"github.com/shopspring/decimal"
)

type ExpenseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewExpenseService(db *sql.DB, m repomanager.RepositoryManager) *ExpenseService {
	return &ExpenseService{db: db, repomanager: m}
}

// List returns expenses newest first within the optional inclusive range.
func (s *ExpenseService) List(ctx context.Context, userID string, filter models.ExpenseFilter) ([]*models.Expense, error) {
	return s.repomanager.Expenses(s.db).List(ctx, userID, filter)
}

func (s *ExpenseService) Create(ctx context.Context, userID string, e *models.Expense) (*models.Expense, error) {
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)

	switch {
	case !e.Amount.IsPositive():
		return nil, common.WithMessage(common.ErrValidation, "amount must be greater than 0")
	case e.Category == "":
		return nil, common.WithMessage(common.ErrValidation, "category is required")
	case e.Date.IsZero():
		return nil, common.WithMessage(common.ErrValidation, "date is required")
	}
	if e.PaymentMode == "" {
		e.PaymentMode = models.PaymentModeUPI
	}

	e.UserID = userID
	return s.repomanager.Expenses(s.db).Create(ctx, e)
}

// MonthlySummary totals one calendar month (UTC) of the user's expenses.
func (s *ExpenseService) MonthlySummary(ctx context.Context, userID string, year, month int) (*models.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, common.WithMessage(common.ErrValidation, "month must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return nil, common.WithMessage(common.ErrValidation, "invalid year")
	}

	from, to := datex.MonthRange(year, time.Month(month))
	byCategory, err := s.repomanager.Expenses(s.db).SumByCategory(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	summary := &models.MonthlySummary{
		Year:       year,
		Month:      month,
		Total:      decimal.Zero,
		ByCategory: byCategory,
	}
	for _, c := range byCategory {
		summary.Total = summary.Total.Add(c.Total)
		summary.Count += c.Count
	}
	return summary, nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.repomanager.Expenses(s.db).Delete(ctx, userID, id)
}
