package engine

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/sandeepkv93/repsd/internal/model"
)

// OverdueContacts returns the contacts whose follow-up date has arrived,
// most overdue first.
func OverdueContacts(contacts []model.Contact, now string) []model.Contact {
	out := make([]model.Contact, 0)
	for _, c := range contacts {
		if c.Overdue(now) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FollowUpDate < out[j].FollowUpDate
	})
	return out
}

// WorkoutCard is one gym pick: a contact annotated with the suggested action
// phrase for its slot.
type WorkoutCard struct {
	Contact model.Contact
	Action  string
}

const workoutCardLimit = 5

// WorkoutCards selects up to five contacts for a workout category.
//
// Power Hour samples one random contact per seniority rank 1-4; Reconnect
// takes everyone silent 30+ days; the rest filter by the category's
// seniority set. Dismissed contacts are excluded, overdue ones float to the
// top, and within that the coldest come first.
func WorkoutCards(contacts []model.Contact, category model.WorkoutCategory, dismissed map[string]bool, now string, rng *rand.Rand) []WorkoutCard {
	if len(contacts) == 0 {
		return nil
	}

	var pool []model.Contact
	switch category.ID {
	case model.WorkoutPower:
		for rank := model.SeniorityJunior; rank <= model.SeniorityExecutive; rank++ {
			group := make([]model.Contact, 0)
			for _, c := range contacts {
				if c.Seniority == rank {
					group = append(group, c)
				}
			}
			if len(group) == 0 {
				continue
			}
			pick := group[0]
			if rng != nil {
				pick = group[rng.Intn(len(group))]
			}
			pool = append(pool, pick)
		}
	case model.WorkoutReconnect:
		for _, c := range contacts {
			if model.DaysSince(c.LastContact, now) >= 30 {
				pool = append(pool, c)
			}
		}
	default:
		for _, c := range contacts {
			if seniorityIn(c.Seniority, category.SeniorityFilter) {
				pool = append(pool, c)
			}
		}
	}

	filtered := pool[:0]
	for _, c := range pool {
		if !dismissed[c.ID] {
			filtered = append(filtered, c)
		}
	}
	pool = filtered

	sort.SliceStable(pool, func(i, j int) bool {
		io, jo := pool[i].Overdue(now), pool[j].Overdue(now)
		if io != jo {
			return io
		}
		return pool[i].Warmth < pool[j].Warmth
	})
	if len(pool) > workoutCardLimit {
		pool = pool[:workoutCardLimit]
	}

	out := make([]WorkoutCard, 0, len(pool))
	for i, c := range pool {
		action := ""
		if len(category.Actions) > 0 {
			action = category.Actions[i%len(category.Actions)]
		}
		out = append(out, WorkoutCard{Contact: c, Action: action})
	}
	return out
}

func seniorityIn(s model.Seniority, filter []model.Seniority) bool {
	for _, f := range filter {
		if s == f {
			return true
		}
	}
	return false
}

// CoffeePick is a senior contact scored for coffee-chat preparation.
type CoffeePick struct {
	Contact model.Contact
	Score   int
}

const coffeePickLimit = 8

// CoffeeScore rates how urgently a contact deserves a coffee chat. Overdue
// follow-ups dominate, cold relationships and long silences add weight, and
// executives get a small edge.
func CoffeeScore(c model.Contact, now string) int {
	score := 0
	if c.Overdue(now) {
		score += 50
	}
	switch c.Warmth {
	case model.WarmthCold:
		score += 20
	case model.WarmthWarm:
		score += 10
	}
	switch days := model.DaysSince(c.LastContact, now); {
	case days >= 90:
		score += 30
	case days >= 60:
		score += 20
	case days >= 30:
		score += 10
	}
	if c.Seniority == model.SeniorityExecutive {
		score += 5
	}
	return score
}

// CoffeePicks ranks Senior and Executive contacts by CoffeeScore, highest
// first, capped at eight.
func CoffeePicks(contacts []model.Contact, now string) []CoffeePick {
	out := make([]CoffeePick, 0)
	for _, c := range contacts {
		if c.Seniority < model.SenioritySenior {
			continue
		}
		out = append(out, CoffeePick{Contact: c, Score: CoffeeScore(c, now)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > coffeePickLimit {
		out = out[:coffeePickLimit]
	}
	return out
}

// SortContactsForDisplay orders the People view: overdue contacts first,
// then warmest first. The input is not modified.
func SortContactsForDisplay(contacts []model.Contact, now string) []model.Contact {
	out := make([]model.Contact, len(contacts))
	copy(out, contacts)
	sort.SliceStable(out, func(i, j int) bool {
		io, jo := out[i].Overdue(now), out[j].Overdue(now)
		if io != jo {
			return io
		}
		return out[i].Warmth > out[j].Warmth
	})
	return out
}

// RecentEntries returns the newest entries by creation instant, capped at n.
func RecentEntries(log []model.ActivityEntry, n int) []model.ActivityEntry {
	out := make([]model.ActivityEntry, len(log))
	copy(out, log)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ReconnectUrgency phrases how stale a contact is for the coffee view.
func ReconnectUrgency(c model.Contact, now string) string {
	switch days := model.DaysSince(c.LastContact, now); {
	case days >= 90:
		return "Haven't connected in 90+ days"
	case days >= 60:
		return "60+ days since last contact"
	case days >= 30:
		return "30+ days - good time to reconnect"
	default:
		return "Recently connected"
	}
}

// MatchesFilter reports whether a contact matches a free-text filter on
// name, company or notes. An empty filter matches everything.
func MatchesFilter(c model.Contact, filter string) bool {
	f := strings.ToLower(strings.TrimSpace(filter))
	if f == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), f) ||
		strings.Contains(strings.ToLower(c.Company), f) ||
		strings.Contains(strings.ToLower(c.Notes), f)
}
