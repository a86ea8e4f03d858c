package models

import "time"

type Habit struct {
	ID             string      `json:"_id"`
	UserID         string      `json:"userId"`
	Name           string      `json:"name"`
	Description    string      `json:"description,omitempty"`
	Streak         int         `json:"streak"`
	LongestStreak  int         `json:"longestStreak"`
	CompletedDates []time.Time `json:"completedDates"`
	LastCompleted  *time.Time  `json:"lastCompleted,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}
