package models

import "time"

type UpgradeType string

const (
	UpgradeNewMindset UpgradeType = "New Mindset"
	UpgradeNewHabit   UpgradeType = "New Habit"
	UpgradeNewSkill   UpgradeType = "New Skill"
	UpgradeNewBody    UpgradeType = "New Body"
	UpgradeNewLife    UpgradeType = "New Life"
	UpgradeNewYou     UpgradeType = "New You"
)

type LogStatus string

const (
	LogDidSomething LogStatus = "Did something"
	LogDidALittle   LogStatus = "Did a little"
	LogDidNothing   LogStatus = "Did nothing"
)

type DailyLog struct {
	Date   time.Time `json:"date"`
	Status LogStatus `json:"status"`
	Note   string    `json:"note,omitempty"`
}

// Upgrade is a self-improvement commitment lasting Duration days.
type Upgrade struct {
	ID        string      `json:"_id"`
	UserID    string      `json:"userId"`
	Type      UpgradeType `json:"type"`
	Duration  int         `json:"duration"`
	Meaning   string      `json:"meaning"`
	StartDate time.Time   `json:"startDate"`
	DailyLogs []DailyLog  `json:"dailyLogs"`
	Active    bool        `json:"active"`
	Completed bool        `json:"completed"`
}
