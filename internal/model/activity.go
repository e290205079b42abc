package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidWarmth    = errors.New("model: invalid contact warmth")
	ErrInvalidSeniority = errors.New("model: invalid contact seniority")
	ErrInvalidPoints    = errors.New("model: invalid activity points")
	ErrInvalidTier      = errors.New("model: invalid activity tier")
)

// Warmth grades how alive a relationship currently is.
type Warmth int

const (
	WarmthCold Warmth = 1
	WarmthWarm Warmth = 2
	WarmthHot  Warmth = 3
)

func (w Warmth) IsValid() bool {
	return w >= WarmthCold && w <= WarmthHot
}

func (w Warmth) Label() string {
	switch w {
	case WarmthCold:
		return "🧊 Cold"
	case WarmthWarm:
		return "🌤 Warm"
	case WarmthHot:
		return "🔥 Hot"
	default:
		return ""
	}
}

// Seniority ranks a contact relative to the user. Zero means unset.
type Seniority int

const (
	SeniorityUnset     Seniority = 0
	SeniorityJunior    Seniority = 1
	SeniorityPeer      Seniority = 2
	SenioritySenior    Seniority = 3
	SeniorityExecutive Seniority = 4
)

func (s Seniority) IsValid() bool {
	return s >= SeniorityUnset && s <= SeniorityExecutive
}

// ActivityEntry is one logged rep. Name, emoji, points and tier are copied
// from the taxonomy at logging time so editing the taxonomy later never
// rewrites history. Entries are append-only.
type ActivityEntry struct {
	ID          string
	ActivityID  string
	Name        string
	Emoji       string
	Points      int
	Tier        int
	Date        string // "2006-01-02", the day the rep counts toward
	Timestamp   time.Time
	ContactName string // free text, not a contact id
}

func (e ActivityEntry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("model: activity entry id is required")
	}
	if strings.TrimSpace(e.ActivityID) == "" {
		return errors.New("model: activity id is required")
	}
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("model: activity name is required")
	}
	if e.Points < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPoints, e.Points)
	}
	if e.Tier < 1 || e.Tier > 3 {
		return fmt.Errorf("%w: %d", ErrInvalidTier, e.Tier)
	}
	if _, err := ParseDate(e.Date); err != nil {
		return fmt.Errorf("model: activity entry date: %w", err)
	}
	if e.Timestamp.IsZero() {
		return errors.New("model: activity entry timestamp is required")
	}
	return nil
}

// Contact is a person in the network. Mutable; deletion is permanent.
type Contact struct {
	ID           string
	Name         string
	Company      string
	Notes        string
	Warmth       Warmth
	Seniority    Seniority
	LastContact  string // "2006-01-02" or "" when never contacted
	FollowUpDate string // "2006-01-02" or "" when no follow-up scheduled
	CreatedAt    time.Time
}

func (c Contact) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("model: contact id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("model: contact name is required")
	}
	if !c.Warmth.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidWarmth, c.Warmth)
	}
	if !c.Seniority.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidSeniority, c.Seniority)
	}
	if c.LastContact != "" {
		if _, err := ParseDate(c.LastContact); err != nil {
			return fmt.Errorf("model: contact last_contact: %w", err)
		}
	}
	if c.FollowUpDate != "" {
		if _, err := ParseDate(c.FollowUpDate); err != nil {
			return fmt.Errorf("model: contact follow_up_date: %w", err)
		}
	}
	if c.CreatedAt.IsZero() {
		return errors.New("model: contact created_at is required")
	}
	return nil
}

// Overdue reports whether the contact's follow-up date has arrived.
func (c Contact) Overdue(today string) bool {
	return c.FollowUpDate != "" && c.FollowUpDate <= today
}

// DefaultWeeklyGoal is the target weekly point total until the user changes it.
const DefaultWeeklyGoal = 25

type Settings struct {
	WeeklyGoal int
}

func DefaultSettings() Settings {
	return Settings{WeeklyGoal: DefaultWeeklyGoal}
}

func (s Settings) Validate() error {
	if s.WeeklyGoal <= 0 {
		return errors.New("model: weekly goal must be positive")
	}
	return nil
}
