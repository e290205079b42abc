package model

import "time"

// Activity is one loggable action in the static taxonomy.
type Activity struct {
	ID     string
	Name   string
	Points int
	Emoji  string
}

// Tier groups activities by effort level.
type Tier struct {
	Tier       int
	Label      string
	Color      string
	Desc       string
	Activities []Activity
}

// TierActivity is the flattened lookup view: an activity joined with the
// metadata of the tier it belongs to.
type TierActivity struct {
	Activity
	Tier      int
	TierColor string
}

var tiers = []Tier{
	{
		Tier: 1, Label: "Warm-Up", Color: "#059669", Desc: "Low effort, high comfort",
		Activities: []Activity{
			{ID: "like_post", Name: "Like/react to a post", Points: 1, Emoji: "👍"},
			{ID: "comment_post", Name: "Thoughtful comment", Points: 2, Emoji: "💬"},
			{ID: "share_article", Name: "Share an article", Points: 2, Emoji: "📎"},
			{ID: "research_contact", Name: "Research a contact", Points: 1, Emoji: "🔍"},
		},
	},
	{
		Tier: 2, Label: "Main Set", Color: "#D97706", Desc: "Moderate effort, direct",
		Activities: []Activity{
			{ID: "send_dm", Name: "Send a DM or message", Points: 4, Emoji: "✉️"},
			{ID: "congrats_msg", Name: "Congrats/milestone note", Points: 3, Emoji: "🎉"},
			{ID: "intro_request", Name: "Ask for or make an intro", Points: 5, Emoji: "🤝"},
			{ID: "follow_up", Name: "Follow up with a contact", Points: 4, Emoji: "🔄"},
		},
	},
	{
		Tier: 3, Label: "PR Day", Color: "#DC2626", Desc: "High effort, max growth",
		Activities: []Activity{
			{ID: "coffee_chat", Name: "1:1 coffee / virtual chat", Points: 8, Emoji: "☕"},
			{ID: "attend_event", Name: "Attend networking event", Points: 10, Emoji: "🎪"},
			{ID: "give_talk", Name: "Give a talk/presentation", Points: 12, Emoji: "🎤"},
			{ID: "write_post", Name: "Publish a thought post", Points: 7, Emoji: "✍️"},
		},
	},
}

var allActivities = func() []TierActivity {
	out := make([]TierActivity, 0, 12)
	for _, t := range tiers {
		for _, a := range t.Activities {
			out = append(out, TierActivity{Activity: a, Tier: t.Tier, TierColor: t.Color})
		}
	}
	return out
}()

// Tiers returns the static activity taxonomy. Callers must not mutate it.
func Tiers() []Tier {
	return tiers
}

// AllActivities returns the flattened taxonomy in tier order.
func AllActivities() []TierActivity {
	return allActivities
}

// ActivityByID looks up a taxonomy entry. Unknown ids (historical entries may
// reference retired activities) return a zero placeholder and false instead
// of failing.
func ActivityByID(id string) (TierActivity, bool) {
	for _, a := range allActivities {
		if a.ID == id {
			return a, true
		}
	}
	return TierActivity{}, false
}

// SeniorityLevel carries the display metadata for one seniority rank.
type SeniorityLevel struct {
	ID    Seniority
	Label string
	Emoji string
	Color string
}

var seniorityLevels = []SeniorityLevel{
	{ID: SeniorityUnset, Label: "Unset", Emoji: "-", Color: "#9CA3AF"},
	{ID: SeniorityJunior, Label: "Junior", Emoji: "🌱", Color: "#059669"},
	{ID: SeniorityPeer, Label: "Peer", Emoji: "👤", Color: "#2563EB"},
	{ID: SenioritySenior, Label: "Senior", Emoji: "📊", Color: "#D97706"},
	{ID: SeniorityExecutive, Label: "Executive", Emoji: "👔", Color: "#DC2626"},
}

func SeniorityLevels() []SeniorityLevel {
	return seniorityLevels
}

// SeniorityLevelFor maps a rank to its display metadata, falling back to the
// Unset placeholder for out-of-range values.
func SeniorityLevelFor(s Seniority) SeniorityLevel {
	if !s.IsValid() {
		return seniorityLevels[0]
	}
	return seniorityLevels[int(s)]
}

// WorkoutCategory is one "gym" workout: a contact filter plus suggested
// action phrases. A nil SeniorityFilter marks the categories with special
// selection rules (reconnect, power).
type WorkoutCategory struct {
	ID              string
	Label           string
	Muscle          string
	Emoji           string
	Color           string
	Desc            string
	SeniorityFilter []Seniority
	Actions         []string
}

const (
	WorkoutPeer      = "peer"
	WorkoutReach     = "reach"
	WorkoutGive      = "give"
	WorkoutReconnect = "reconnect"
	WorkoutPower     = "power"
)

var workoutCategories = []WorkoutCategory{
	{
		ID: WorkoutPeer, Label: "Peer Power", Muscle: "Leg Day", Emoji: "🦵", Color: "#2563EB",
		Desc:            "Lateral connections at your level",
		SeniorityFilter: []Seniority{SeniorityPeer},
		Actions: []string{
			"Send a DM checking in",
			"Comment on their recent post",
			"Share a useful article",
			"Propose a virtual coffee",
		},
	},
	{
		ID: WorkoutReach, Label: "Reach Up", Muscle: "Chest Day", Emoji: "💪", Color: "#D97706",
		Desc:            "Build ties with senior leaders and execs",
		SeniorityFilter: []Seniority{SenioritySenior, SeniorityExecutive},
		Actions: []string{
			"Congratulate a recent milestone",
			"Ask a thoughtful question",
			"Share something valuable (no ask)",
			"Request a 15-min advice chat",
		},
	},
	{
		ID: WorkoutGive, Label: "Give Back", Muscle: "Back Day", Emoji: "🤝", Color: "#059669",
		Desc:            "Mentor and lift up junior contacts",
		SeniorityFilter: []Seniority{SeniorityJunior},
		Actions: []string{
			"Offer to review their work",
			"Make an intro that helps them",
			"Share career advice",
			"Endorse a skill on LinkedIn",
		},
	},
	{
		ID: WorkoutReconnect, Label: "Reconnect", Muscle: "Cardio", Emoji: "🏃", Color: "#7C3AED",
		Desc:    "Re-engage anyone silent 30+ days",
		Actions: []string{
			"Send a thinking-of-you message",
			"Share a relevant article",
			"Ask what they are working on",
			"Congratulate something recent",
		},
	},
	{
		ID: WorkoutPower, Label: "Power Hour", Muscle: "Full Body", Emoji: "🔥", Color: "#DC2626",
		Desc:    "Mix of all levels",
		Actions: []string{"Pick the action that fits each person"},
	},
}

func WorkoutCategories() []WorkoutCategory {
	return workoutCategories
}

// WorkoutCategoryByID falls back to Peer Power for unknown ids so the gym
// view always has a current workout.
func WorkoutCategoryByID(id string) WorkoutCategory {
	for _, c := range workoutCategories {
		if c.ID == id {
			return c
		}
	}
	return workoutCategories[0]
}

// autoRotation maps time.Weekday (Sunday first) to a workout index.
var autoRotation = [7]int{3, 0, 1, 2, 0, 4, 3}

// AutoWorkout returns the day's default workout category.
func AutoWorkout(weekday time.Weekday) WorkoutCategory {
	return workoutCategories[autoRotation[int(weekday)]]
}

var levelTitles = []string{
	"Wallflower", "Observer", "Nodder", "Conversationalist", "Connector",
	"Hub", "Catalyst", "Influencer", "Maven", "Superconnector",
}

// LevelTitle names a level for display. Levels beyond the list reuse the
// last title; the level number itself is unbounded.
func LevelTitle(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(levelTitles) {
		level = len(levelTitles)
	}
	return levelTitles[level-1]
}
