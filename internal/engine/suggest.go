package engine

import (
	"fmt"

	"github.com/sandeepkv93/repsd/internal/model"
)

// Suggestion is one rule-based nudge for what to do next.
type Suggestion struct {
	Text        string
	ActivityID  string
	ContactName string
}

const suggestionLimit = 3

// Suggestions evaluates the fixed-priority nudge rules and returns at most
// three. Rules are independent: an overdue follow-up does not suppress the
// low-effort prompts for a slow day.
func Suggestions(log []model.ActivityEntry, contacts []model.Contact, weeklyGoal int, now string) []Suggestion {
	out := make([]Suggestion, 0, suggestionLimit+1)

	if overdue := OverdueContacts(contacts, now); len(overdue) > 0 {
		out = append(out, Suggestion{
			Text:        fmt.Sprintf("Follow up with %s", overdue[0].Name),
			ActivityID:  "follow_up",
			ContactName: overdue[0].Name,
		})
	}

	todayPts := TodayPoints(log, now)
	if todayPts < 3 {
		out = append(out,
			Suggestion{Text: "Thoughtful comment on LinkedIn", ActivityID: "comment_post"},
			Suggestion{Text: "Research someone to connect with", ActivityID: "research_contact"},
		)
	}
	if todayPts >= 3 && todayPts < 8 {
		out = append(out, Suggestion{Text: "Send a DM to someone you admire", ActivityID: "send_dm"})
	}

	if ActiveDays(log, now) >= 3 && float64(WeekPoints(log, now)) < float64(weeklyGoal)*0.7 {
		out = append(out, Suggestion{Text: "Schedule a coffee chat this week", ActivityID: "coffee_chat"})
	}

	if len(out) > suggestionLimit {
		out = out[:suggestionLimit]
	}
	return out
}
