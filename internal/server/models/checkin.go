package models

import "time"

type Mood string

const (
	MoodLow  Mood = "Low"
	MoodOkay Mood = "Okay"
	MoodGood Mood = "Good"
)

type TaskFeeling string

const (
	TaskFeelingHard   TaskFeeling = "Hard"
	TaskFeelingOkay   TaskFeeling = "Okay"
	TaskFeelingSmooth TaskFeeling = "Smooth"
)

// CheckIn is a daily mood entry. At most one exists per user per UTC day.
type CheckIn struct {
	ID          string      `json:"_id"`
	UserID      string      `json:"userId"`
	Date        time.Time   `json:"date"`
	Mood        Mood        `json:"mood"`
	TaskFeeling TaskFeeling `json:"taskFeeling"`
	Note        string      `json:"note,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type CheckInFilter struct {
	From *time.Time
	To   *time.Time
}

type WeeklySummary struct {
	TotalDays               int                 `json:"totalDays"`
	MoodDistribution        map[Mood]int        `json:"moodDistribution"`
	TaskFeelingDistribution map[TaskFeeling]int `json:"taskFeelingDistribution"`
}
