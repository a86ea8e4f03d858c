package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/server/models"
)

var errBadPeriod = common.WithMessage(common.ErrValidation, "year and month must be numbers")

func (s *Server) listExpenses(c *gin.Context) {
	from, to, err := queryRange(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	list, err := s.svc.Expenses.List(c.Request.Context(), userID(c), models.ExpenseFilter{From: from, To: to})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) createExpense(c *gin.Context) {
	var req expenseRequest
	if err := bindJSON(c, &req); err != nil {
		s.abortWithError(c, err)
		return
	}

	e, err := s.svc.Expenses.Create(c.Request.Context(), userID(c), req.model())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (s *Server) expenseSummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		s.abortWithError(c, errBadPeriod)
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		s.abortWithError(c, errBadPeriod)
		return
	}

	summary, err := s.svc.Expenses.MonthlySummary(c.Request.Context(), userID(c), year, month)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) deleteExpense(c *gin.Context) {
	if err := s.svc.Expenses.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		s.abortWithError(c, notFoundAs(err, "Expense not found"))
		return
	}
	deleted(c, "Expense")
}
