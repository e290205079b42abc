package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/repsd/internal/engine"
	domainmodel "github.com/sandeepkv93/repsd/internal/model"
	"github.com/sandeepkv93/repsd/internal/views"
)

const recentFeedLimit = 8

func (m Model) handleLogKey(msg tea.KeyMsg) Model {
	activities := domainmodel.AllActivities()
	switch msg.String() {
	case "j", "down":
		if m.LogCursor < len(activities)-1 {
			m.LogCursor++
		}
	case "k", "up":
		if m.LogCursor > 0 {
			m.LogCursor--
		}
	case "n":
		m.contactInputActive = true
		m.contactInput.Focus()
		m.Status = StatusBar{Text: "type a contact name, enter to keep, esc to clear"}
	case "enter":
		if m.LogCursor >= len(activities) {
			return m
		}
		entry, ok := m.Sess.LogActivity(activities[m.LogCursor].ID, m.contactInput.Value())
		if !ok {
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("logged %s +%d", entry.Name, entry.Points)}
		m.notify("Rep Logged", m.Status.Text, "info")
	}
	return m
}

func (m Model) handleContactNameKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		m.contactInputActive = false
		m.contactInput.Blur()
	case "esc":
		m.contactInput.SetValue("")
		m.contactInputActive = false
		m.contactInput.Blur()
	default:
		var cmd tea.Cmd
		m.contactInput, cmd = m.contactInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) renderLogView() string {
	tierLabels := make(map[int]string)
	for _, t := range domainmodel.Tiers() {
		tierLabels[t.Tier] = fmt.Sprintf("%s - %s", t.Label, t.Desc)
	}

	all := domainmodel.AllActivities()
	activities := make([]views.LogActivityData, 0, len(all))
	for _, a := range all {
		activities = append(activities, views.LogActivityData{
			ID:     a.ID,
			Name:   a.Name,
			Emoji:  a.Emoji,
			Points: a.Points,
			Tier:   a.Tier,
		})
	}

	recent := make([]views.RecentEntryData, 0, recentFeedLimit)
	for _, e := range engine.RecentEntries(m.Sess.Log, recentFeedLimit) {
		recent = append(recent, views.RecentEntryData{
			Emoji:       e.Emoji,
			Name:        e.Name,
			Points:      e.Points,
			Date:        e.Date,
			ContactName: e.ContactName,
		})
	}

	return views.RenderLogPanel(views.LogPanelData{
		TierLabels:  tierLabels,
		Activities:  activities,
		Cursor:      m.LogCursor,
		ContactView: m.contactInput.View(),
		Recent:      recent,
	})
}
