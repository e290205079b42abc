package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/repsd/internal/engine"
	domainmodel "github.com/sandeepkv93/repsd/internal/model"
	"github.com/sandeepkv93/repsd/internal/views"
)

func (m Model) weekPoints() int {
	return engine.WeekPoints(m.Sess.Log, m.Sess.Today())
}

func (m Model) handleStatsKey(msg tea.KeyMsg) Model {
	overdue := engine.OverdueContacts(m.Sess.Contacts, m.Sess.Today())
	switch msg.String() {
	case "j", "down":
		if m.OverdueCursor < len(overdue)-1 {
			m.OverdueCursor++
		}
	case "k", "up":
		if m.OverdueCursor > 0 {
			m.OverdueCursor--
		}
	case "enter", "d":
		if m.OverdueCursor >= len(overdue) {
			return m
		}
		c := overdue[m.OverdueCursor]
		entry, ok := m.Sess.MarkOverdueDone(c.ID)
		if !ok {
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("%s +%d for %s", entry.Name, entry.Points, c.Name)}
		m.notify("Follow-up Done", m.Status.Text, "info")
		if m.OverdueCursor > 0 {
			m.OverdueCursor--
		}
	case "+", "=":
		goal := m.Sess.AdjustGoal(5)
		m.Status = StatusBar{Text: fmt.Sprintf("weekly goal: %d pts", goal)}
	case "-", "_":
		goal := m.Sess.AdjustGoal(-5)
		m.Status = StatusBar{Text: fmt.Sprintf("weekly goal: %d pts", goal)}
	}
	return m
}

func (m Model) renderStatsView() string {
	now := m.Sess.Today()
	log := m.Sess.Log
	goal := m.Sess.Goal

	heatmap := make([]views.HeatmapCellData, 0, 7)
	for _, cell := range engine.Heatmap(log, now) {
		heatmap = append(heatmap, views.HeatmapCellData{
			DayName: domainmodel.DayName(cell.Day),
			Points:  cell.Points,
			IsToday: cell.IsToday,
			IsPast:  cell.IsPast,
		})
	}

	trend := engine.Trend(log, now)
	trendMax := engine.TrendMax(trend, goal)
	bars := make([]views.TrendBarData, 0, len(trend))
	for _, w := range trend {
		bars = append(bars, views.TrendBarData{Label: w.Label, Points: w.Points, Max: trendMax})
	}

	overdue := engine.OverdueContacts(m.Sess.Contacts, now)
	overdueRows := make([]views.OverdueRowData, 0, len(overdue))
	for _, c := range overdue {
		overdueRows = append(overdueRows, views.OverdueRowData{Name: c.Name, FollowUp: c.FollowUpDate})
	}

	suggestions := make([]views.SuggestionData, 0)
	for _, s := range engine.Suggestions(log, m.Sess.Contacts, goal, now) {
		points := 0
		if a, ok := domainmodel.ActivityByID(s.ActivityID); ok {
			points = a.Points
		}
		suggestions = append(suggestions, views.SuggestionData{Text: s.Text, Points: points})
	}

	week := engine.WeekPoints(log, now)
	frac := 0.0
	if goal > 0 {
		frac = float64(week) / float64(goal)
	}
	if frac > 1 {
		frac = 1
	}
	progress := engine.LevelProgress(engine.TotalPoints(log))

	return views.RenderStatsPanel(views.StatsPanelData{
		TodayPoints:  engine.TodayPoints(log, now),
		WeekPoints:   week,
		WeeklyGoal:   goal,
		GoalView:     m.goalProgress.ViewAs(frac),
		Streak:       engine.Streak(log, now),
		ActiveDays:   engine.ActiveDays(log, now),
		Level:        progress.Level,
		LevelTitle:   progress.Title,
		TotalPoints:  progress.TotalPoints,
		Heatmap:      heatmap,
		Trend:        bars,
		TrendMax:     trendMax,
		Overdue:      overdueRows,
		OverdueIdx:   m.OverdueCursor,
		Suggestions:  suggestions,
		ContactCount: len(m.Sess.Contacts),
	})
}
