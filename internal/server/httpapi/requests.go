package httpapi

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/datex"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/shopspring/decimal"
)

var errBadDate = common.WithMessage(common.ErrValidation, "invalid date, use YYYY-MM-DD or RFC 3339")

type pinRequest struct {
	Pin string `json:"pin"`
}

type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type recurringRequest struct {
	Enabled   bool             `json:"enabled"`
	Frequency models.Frequency `json:"frequency" binding:"omitempty,oneof=daily weekly monthly"`
}

func (r *recurringRequest) model() *models.Recurring {
	if r == nil {
		return nil
	}
	return &models.Recurring{Enabled: r.Enabled, Frequency: r.Frequency}
}

type taskRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Date        datex.Time          `json:"date"`
	Priority    models.Priority     `json:"priority" binding:"omitempty,oneof=High Medium Low"`
	Category    models.TaskCategory `json:"category" binding:"omitempty,oneof=Work Personal Health Finance Other"`
	Completed   bool                `json:"completed"`
	Recurring   *recurringRequest   `json:"recurring"`
}

func (r taskRequest) model() *models.Task {
	t := &models.Task{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date.Time,
		Priority:    r.Priority,
		Category:    r.Category,
		Completed:   r.Completed,
	}
	if rec := r.Recurring.model(); rec != nil {
		t.Recurring = *rec
	}
	return t
}

// taskPatchRequest is a partial update; absent fields stay unchanged.
type taskPatchRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Date        *datex.Time          `json:"date"`
	Priority    *models.Priority     `json:"priority" binding:"omitempty,oneof=High Medium Low"`
	Category    *models.TaskCategory `json:"category" binding:"omitempty,oneof=Work Personal Health Finance Other"`
	Completed   *bool                `json:"completed"`
	Recurring   *recurringRequest    `json:"recurring"`
}

func (r taskPatchRequest) patch() models.TaskPatch {
	return models.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date.Ptr(),
		Priority:    r.Priority,
		Category:    r.Category,
		Completed:   r.Completed,
		Recurring:   r.Recurring.model(),
	}
}

type expenseRequest struct {
	Amount       decimal.Decimal    `json:"amount"`
	Category     string             `json:"category"`
	Subcategory  string             `json:"subcategory"`
	PaymentMode  models.PaymentMode `json:"paymentMode" binding:"omitempty,oneof=UPI Cash Card Other"`
	Description  string             `json:"description"`
	Date         datex.Time         `json:"date"`
	ReceiptImage *models.Receipt    `json:"receiptImage"`
}

func (r expenseRequest) model() *models.Expense {
	return &models.Expense{
		Amount:       r.Amount,
		Category:     r.Category,
		Subcategory:  strings.TrimSpace(r.Subcategory),
		PaymentMode:  r.PaymentMode,
		Description:  r.Description,
		Date:         r.Date.Time,
		ReceiptImage: r.ReceiptImage,
	}
}

type checkInRequest struct {
	Date        datex.Time         `json:"date"`
	Mood        models.Mood        `json:"mood" binding:"required,oneof=Low Okay Good"`
	TaskFeeling models.TaskFeeling `json:"taskFeeling" binding:"required,oneof=Hard Okay Smooth"`
	Note        string             `json:"note"`
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type notePatchRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type uploadForm struct {
	Title    string                  `form:"title"`
	Category models.DocumentCategory `form:"category" binding:"omitempty,oneof=Identity Education Medical Finance Work Personal"`
	Tags     string                  `form:"tags"`
	Notes    string                  `form:"notes"`
}

// bindJSON decodes and validates the body. Binder output is not shown to
// clients.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return errBadRequestBody
	}
	return nil
}

// queryDate parses an optional date query parameter.
func queryDate(c *gin.Context, name string) (*time.Time, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, false, nil
	}
	t, dateOnly, err := datex.Parse(raw)
	if err != nil {
		return nil, false, errBadDate
	}
	return &t, dateOnly, nil
}

// queryRange reads startDate/endDate. A date-only endDate covers that whole day.
func queryRange(c *gin.Context) (*time.Time, *time.Time, error) {
	from, _, err := queryDate(c, "startDate")
	if err != nil {
		return nil, nil, err
	}
	to, dateOnly, err := queryDate(c, "endDate")
	if err != nil {
		return nil, nil, err
	}
	if to != nil && dateOnly {
		_, end := datex.DayRange(*to)
		to = &end
	}
	return from, to, nil
}
