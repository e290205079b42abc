package storage

import "time"

// defaultWeeklyGoal is returned when no goal has ever been persisted.
const defaultWeeklyGoal = 25

type ActivityEntry struct {
	ID          string    `json:"id"`
	ActivityID  string    `json:"activity_id"`
	Name        string    `json:"name"`
	Emoji       string    `json:"emoji"`
	Points      int       `json:"points"`
	Tier        int       `json:"tier"`
	Date        string    `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
	ContactName string    `json:"contact_name,omitempty"`
}

type Contact struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Company      string    `json:"company"`
	Notes        string    `json:"notes"`
	Warmth       int       `json:"warmth"`
	Seniority    int       `json:"seniority"`
	LastContact  string    `json:"last_contact"`
	FollowUpDate string    `json:"follow_up_date"`
	CreatedAt    time.Time `json:"created_at"`
}
