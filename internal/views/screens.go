package views

import (
	"fmt"
	"strings"
)

type WorkoutCardData struct {
	Name      string
	Company   string
	Warmth    string
	Seniority string
	Action    string
	Overdue   bool
}

type GymPanelData struct {
	Label      string
	Muscle     string
	Emoji      string
	Desc       string
	Auto       bool
	Cards      []WorkoutCardData
	Cursor     int
	ContactsOK bool
}

type CoffeePickData struct {
	Name      string
	Company   string
	Seniority string
	Score     int
	Urgency   string
	Overdue   bool
}

type CoffeePanelData struct {
	Picks    []CoffeePickData
	Cursor   int
	HelpView string
}

type LogActivityData struct {
	ID     string
	Name   string
	Emoji  string
	Points int
	Tier   int
}

type RecentEntryData struct {
	Emoji       string
	Name        string
	Points      int
	Date        string
	ContactName string
}

type LogPanelData struct {
	TierLabels  map[int]string
	Activities  []LogActivityData
	Cursor      int
	ContactView string
	Recent      []RecentEntryData
}

type ContactRowData struct {
	Name       string
	Company    string
	Warmth     string
	Seniority  string
	FollowUp   string
	Overdue    bool
	DaysSilent int
}

type ContactFormData struct {
	Active    bool
	Editing   bool
	Fields    []string // already-rendered input views, in field order
	FieldIdx  int
	Warmth    string
	Seniority string
}

type ImportRowData struct {
	Name     string
	Company  string
	Position string
	Exists   bool
	Selected bool
}

type ImportPanelData struct {
	Active    bool
	PathView  string
	Rows      []ImportRowData
	Cursor    int
	ErrorText string
}

type PeoplePanelData struct {
	TableView  string
	Rows       []ContactRowData
	Cursor     int
	FilterView string
	Form       ContactFormData
	Import     ImportPanelData
}

type HeatmapCellData struct {
	DayName string
	Points  int
	IsToday bool
	IsPast  bool
}

type TrendBarData struct {
	Label  string
	Points int
	Max    int
}

type OverdueRowData struct {
	Name     string
	FollowUp string
}

type SuggestionData struct {
	Text   string
	Points int
}

type StatsPanelData struct {
	TodayPoints  int
	WeekPoints   int
	WeeklyGoal   int
	GoalView     string
	Streak       int
	ActiveDays   int
	Level        int
	LevelTitle   string
	TotalPoints  int
	Heatmap      []HeatmapCellData
	Trend        []TrendBarData
	TrendMax     int
	Overdue      []OverdueRowData
	OverdueIdx   int
	Suggestions  []SuggestionData
	ContactCount int
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderGymPanel(data GymPanelData) string {
	var b strings.Builder
	b.WriteString("gym:\n")
	mode := "auto"
	if !data.Auto {
		mode = "picked"
	}
	b.WriteString(fmt.Sprintf("workout: %s %s (%s) [%s]\n", data.Emoji, data.Label, data.Muscle, mode))
	b.WriteString(data.Desc + "\n")
	b.WriteString("actions: [j/k]move [c]complete [x]skip [w]next-workout [a]auto\n")
	if !data.ContactsOK {
		b.WriteString("(add contacts in the People tab to get picks)")
		return strings.TrimSpace(b.String())
	}
	if len(data.Cards) == 0 {
		b.WriteString("(no one matches this workout right now)")
		return strings.TrimSpace(b.String())
	}
	for i, card := range data.Cards {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		badge := ""
		if card.Overdue {
			badge = " [OVERDUE]"
		}
		b.WriteString(fmt.Sprintf("%s %s (%s, %s)%s\n", cursor, card.Name, card.Company, card.Seniority, badge))
		b.WriteString(fmt.Sprintf("    -> %s | %s\n", card.Action, card.Warmth))
	}
	return strings.TrimSpace(b.String())
}

func RenderCoffeePanel(data CoffeePanelData) string {
	var b strings.Builder
	b.WriteString("coffee prep:\n")
	b.WriteString("actions: [j/k]move [c]mark-contacted [h]how-it-works\n")
	if len(data.Picks) == 0 {
		b.WriteString("(no senior or executive contacts yet)")
	}
	for i, pick := range data.Picks {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		badge := ""
		if pick.Overdue {
			badge = " [OVERDUE]"
		}
		b.WriteString(fmt.Sprintf("%s %s (%s, %s) score:%d%s\n", cursor, pick.Name, pick.Company, pick.Seniority, pick.Score, badge))
		b.WriteString(fmt.Sprintf("    %s\n", pick.Urgency))
	}
	if data.HelpView != "" {
		b.WriteString("\n" + data.HelpView)
	}
	return strings.TrimSpace(b.String())
}

func RenderLogPanel(data LogPanelData) string {
	var b strings.Builder
	b.WriteString("log a rep:\n")
	b.WriteString("actions: [j/k]move [enter]log [n]contact-name\n")
	b.WriteString("with: " + data.ContactView + "\n")
	lastTier := 0
	for i, a := range data.Activities {
		if a.Tier != lastTier {
			b.WriteString(fmt.Sprintf("\n%s:\n", data.TierLabels[a.Tier]))
			lastTier = a.Tier
		}
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s (+%d)\n", cursor, a.Emoji, a.Name, a.Points))
	}
	if len(data.Recent) > 0 {
		b.WriteString("\nrecent:\n")
		for _, e := range data.Recent {
			with := ""
			if e.ContactName != "" {
				with = " with " + e.ContactName
			}
			b.WriteString(fmt.Sprintf("- %s %s +%d%s (%s)\n", e.Emoji, e.Name, e.Points, with, e.Date))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderPeoplePanel(data PeoplePanelData) string {
	if data.Import.Active {
		return renderImportPanel(data.Import)
	}
	if data.Form.Active {
		return renderContactForm(data.Form)
	}

	var b strings.Builder
	b.WriteString("people:\n")
	b.WriteString("actions: [j/k]move [a]add [e]edit [d]delete [i]import [s]detect-seniority [f]filter\n")
	b.WriteString("filter: " + data.FilterView + "\n")
	b.WriteString(data.TableView + "\n")
	if len(data.Rows) == 0 {
		b.WriteString("(no contacts yet - add one or import a CSV)")
		return strings.TrimSpace(b.String())
	}
	if data.Cursor >= 0 && data.Cursor < len(data.Rows) {
		sel := data.Rows[data.Cursor]
		b.WriteString(fmt.Sprintf("\nselected: %s | %s | %s | silent %d day(s)", sel.Name, sel.Warmth, sel.Seniority, sel.DaysSilent))
		if sel.FollowUp != "" {
			state := "follow up " + sel.FollowUp
			if sel.Overdue {
				state = "follow up OVERDUE since " + sel.FollowUp
			}
			b.WriteString(" | " + state)
		}
	}
	return strings.TrimSpace(b.String())
}

func renderContactForm(data ContactFormData) string {
	labels := []string{"name", "company", "notes", "last contact", "follow up"}
	var b strings.Builder
	if data.Editing {
		b.WriteString("edit contact:\n")
	} else {
		b.WriteString("new contact:\n")
	}
	b.WriteString("keys: [tab]next-field [ctrl+w]warmth [ctrl+r]rank [enter]save [esc]cancel\n")
	for i, view := range data.Fields {
		cursor := " "
		if i == data.FieldIdx {
			cursor = ">"
		}
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		b.WriteString(fmt.Sprintf("%s %-12s %s\n", cursor, label+":", view))
	}
	b.WriteString(fmt.Sprintf("  warmth: %s | rank: %s", data.Warmth, data.Seniority))
	return strings.TrimSpace(b.String())
}

func renderImportPanel(data ImportPanelData) string {
	var b strings.Builder
	b.WriteString("import connections csv:\n")
	if len(data.Rows) == 0 {
		b.WriteString("keys: [enter]load [esc]cancel\n")
		b.WriteString("file: " + data.PathView + "\n")
	} else {
		b.WriteString("keys: [j/k]move [space]toggle [enter]import-selected [esc]cancel\n")
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	selected := 0
	for _, row := range data.Rows {
		if row.Selected {
			selected++
		}
	}
	if len(data.Rows) > 0 {
		b.WriteString(fmt.Sprintf("%d row(s), %d selected\n", len(data.Rows), selected))
	}
	for i, row := range data.Rows {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		mark := "[ ]"
		if row.Selected {
			mark = "[x]"
		}
		note := ""
		if row.Exists {
			note = " (already in contacts)"
		}
		b.WriteString(fmt.Sprintf("%s %s %s - %s, %s%s\n", cursor, mark, row.Name, row.Position, row.Company, note))
	}
	return strings.TrimSpace(b.String())
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("today: %d pts | week: %d/%d pts | streak: %d day(s) | active: %d/7\n",
		data.TodayPoints, data.WeekPoints, data.WeeklyGoal, data.Streak, data.ActiveDays))
	b.WriteString(fmt.Sprintf("level %d - %s (%d lifetime pts, %d contacts)\n",
		data.Level, data.LevelTitle, data.TotalPoints, data.ContactCount))
	b.WriteString("goal: " + data.GoalView + "  [+/-]adjust\n")

	b.WriteString("\nthis week:\n")
	for _, cell := range data.Heatmap {
		marker := heatmapMarker(cell)
		b.WriteString(fmt.Sprintf("  %s %s %d\n", cell.DayName, marker, cell.Points))
	}

	b.WriteString("\n4-week trend:\n")
	for _, bar := range data.Trend {
		b.WriteString(fmt.Sprintf("  %-9s %s %d\n", bar.Label, trendBar(bar.Points, bar.Max, 20), bar.Points))
	}

	b.WriteString("\noverdue follow-ups: [j/k]move [enter]mark-done\n")
	if len(data.Overdue) == 0 {
		b.WriteString("  (none - nice)\n")
	}
	for i, row := range data.Overdue {
		cursor := " "
		if i == data.OverdueIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s (since %s)\n", cursor, row.Name, row.FollowUp))
	}

	if len(data.Suggestions) > 0 {
		b.WriteString("\nnext best reps:\n")
		for _, s := range data.Suggestions {
			b.WriteString(fmt.Sprintf("- %s (+%d)\n", s.Text, s.Points))
		}
	}
	return strings.TrimSpace(b.String())
}

func heatmapMarker(cell HeatmapCellData) string {
	switch {
	case cell.IsToday:
		return "[*]"
	case cell.Points > 0:
		return "[#]"
	case cell.IsPast:
		return "[.]"
	default:
		return "[ ]"
	}
}

func trendBar(points, max, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := points * width / max
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
