package model

import (
	"errors"
	"testing"
	"time"
)

func TestActivityEntryValidateSuccess(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	entry := ActivityEntry{
		ID:         "entry-1",
		ActivityID: "send_dm",
		Name:       "Send a DM or message",
		Emoji:      "✉️",
		Points:     4,
		Tier:       2,
		Date:       "2024-06-10",
		Timestamp:  now,
	}
	if err := entry.Validate(); err != nil {
		t.Fatalf("expected valid entry, got error: %v", err)
	}
}

func TestActivityEntryValidateRejectsBadFields(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	base := ActivityEntry{
		ID:         "entry-1",
		ActivityID: "send_dm",
		Name:       "Send a DM or message",
		Points:     4,
		Tier:       2,
		Date:       "2024-06-10",
		Timestamp:  now,
	}

	entry := base
	entry.Points = -1
	if err := entry.Validate(); !errors.Is(err, ErrInvalidPoints) {
		t.Fatalf("expected ErrInvalidPoints, got: %v", err)
	}

	entry = base
	entry.Tier = 4
	if err := entry.Validate(); !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got: %v", err)
	}

	entry = base
	entry.Date = "June 10"
	if err := entry.Validate(); err == nil {
		t.Fatal("expected date parse error, got nil")
	}
}

func TestContactValidate(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	contact := Contact{
		ID:           "contact-1",
		Name:         "Dana Whitfield",
		Company:      "Northwind",
		Warmth:       WarmthCold,
		Seniority:    SenioritySenior,
		LastContact:  "2024-05-01",
		FollowUpDate: "",
		CreatedAt:    now,
	}
	if err := contact.Validate(); err != nil {
		t.Fatalf("expected valid contact, got error: %v", err)
	}

	contact.Warmth = Warmth(7)
	if err := contact.Validate(); !errors.Is(err, ErrInvalidWarmth) {
		t.Fatalf("expected ErrInvalidWarmth, got: %v", err)
	}

	contact.Warmth = WarmthHot
	contact.Seniority = Seniority(9)
	if err := contact.Validate(); !errors.Is(err, ErrInvalidSeniority) {
		t.Fatalf("expected ErrInvalidSeniority, got: %v", err)
	}

	contact.Seniority = SeniorityPeer
	contact.Name = "   "
	if err := contact.Validate(); err == nil {
		t.Fatal("expected name error, got nil")
	}
}

func TestContactOverdue(t *testing.T) {
	c := Contact{FollowUpDate: "2024-06-05"}
	if !c.Overdue("2024-06-10") {
		t.Fatal("past follow-up date should be overdue")
	}
	if !c.Overdue("2024-06-05") {
		t.Fatal("follow-up due today should count as overdue")
	}
	if c.Overdue("2024-06-04") {
		t.Fatal("future follow-up date should not be overdue")
	}
	c.FollowUpDate = ""
	if c.Overdue("2024-06-10") {
		t.Fatal("empty follow-up date should never be overdue")
	}
}

func TestSettingsDefaults(t *testing.T) {
	s := DefaultSettings()
	if s.WeeklyGoal != 25 {
		t.Fatalf("default weekly goal = %d, want 25", s.WeeklyGoal)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings should validate: %v", err)
	}
	s.WeeklyGoal = 0
	if err := s.Validate(); err == nil {
		t.Fatal("zero weekly goal should not validate")
	}
}
