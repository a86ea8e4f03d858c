package models

import "time"

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank orders priorities so that High sorts above Medium above Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type TaskCategory string

const (
	TaskCategoryWork     TaskCategory = "Work"
	TaskCategoryPersonal TaskCategory = "Personal"
	TaskCategoryHealth   TaskCategory = "Health"
	TaskCategoryFinance  TaskCategory = "Finance"
	TaskCategoryOther    TaskCategory = "Other"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

type Recurring struct {
	Enabled   bool      `json:"enabled"`
	Frequency Frequency `json:"frequency,omitempty"`
}

// Task is a dated to-do item. CompletedAt is set exactly when Completed is true.
type Task struct {
	ID          string       `json:"_id"`
	UserID      string       `json:"userId"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Date        time.Time    `json:"date"`
	Priority    Priority     `json:"priority"`
	Category    TaskCategory `json:"category"`
	Completed   bool         `json:"completed"`
	CompletedAt *time.Time   `json:"completedAt"`
	Recurring   Recurring    `json:"recurring"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// SetCompleted keeps Completed and CompletedAt consistent.
func (t *Task) SetCompleted(completed bool, now time.Time) {
	t.Completed = completed
	if completed {
		ts := now
		t.CompletedAt = &ts
		return
	}
	t.CompletedAt = nil
}

// TaskPatch carries the fields of a partial update; nil means unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Priority    *Priority
	Category    *TaskCategory
	Completed   *bool
	Recurring   *Recurring
}

// Apply merges p into t. CompletedAt follows Completed only on a transition.
func (p TaskPatch) Apply(t *Task, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Recurring != nil {
		t.Recurring = *p.Recurring
	}
	if p.Completed != nil && *p.Completed != t.Completed {
		t.SetCompleted(*p.Completed, now)
	}
}

// TaskFilter narrows a task listing. Zero fields do not filter.
type TaskFilter struct {
	From      *time.Time
	To        *time.Time
	Completed *bool
}
