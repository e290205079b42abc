package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	domainmodel "github.com/sandeepkv93/repsd/internal/model"
	"github.com/sandeepkv93/repsd/internal/views"
)

func (m Model) handleGymKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "j", "down":
		if m.GymCursor < len(m.GymCards)-1 {
			m.GymCursor++
		}
	case "k", "up":
		if m.GymCursor > 0 {
			m.GymCursor--
		}
	case "c", "enter":
		if m.GymCursor >= len(m.GymCards) {
			return m
		}
		card := m.GymCards[m.GymCursor]
		entry, ok := m.Sess.CompleteWorkoutCard(card.Contact)
		if !ok {
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("%s +%d for %s", entry.Name, entry.Points, card.Contact.Name)}
		m.notify("Rep Logged", m.Status.Text, "info")
		m.refreshGymCards()
	case "x":
		if m.GymCursor >= len(m.GymCards) {
			return m
		}
		card := m.GymCards[m.GymCursor]
		m.Sess.Dismiss(card.Contact.ID)
		m.Status = StatusBar{Text: fmt.Sprintf("skipped %s", card.Contact.Name)}
		m.refreshGymCards()
	case "w":
		m.Workout = nextWorkout(m.Workout)
		m.WorkoutAuto = false
		m.Sess.ResetDismissed()
		m.GymCursor = 0
		m.refreshGymCards()
		m.Status = StatusBar{Text: fmt.Sprintf("workout: %s", m.Workout.Label)}
	case "a":
		m.Workout = m.autoWorkout()
		m.WorkoutAuto = true
		m.Sess.ResetDismissed()
		m.GymCursor = 0
		m.refreshGymCards()
		m.Status = StatusBar{Text: fmt.Sprintf("daily workout: %s", m.Workout.Label)}
	}
	return m
}

func nextWorkout(current domainmodel.WorkoutCategory) domainmodel.WorkoutCategory {
	cats := domainmodel.WorkoutCategories()
	for i, c := range cats {
		if c.ID == current.ID {
			return cats[(i+1)%len(cats)]
		}
	}
	return cats[0]
}

func (m Model) renderGymView() string {
	cards := make([]views.WorkoutCardData, 0, len(m.GymCards))
	now := m.Sess.Today()
	for _, card := range m.GymCards {
		cards = append(cards, views.WorkoutCardData{
			Name:      card.Contact.Name,
			Company:   card.Contact.Company,
			Warmth:    card.Contact.Warmth.Label(),
			Seniority: domainmodel.SeniorityLevelFor(card.Contact.Seniority).Label,
			Action:    card.Action,
			Overdue:   card.Contact.Overdue(now),
		})
	}
	return views.RenderGymPanel(views.GymPanelData{
		Label:      m.Workout.Label,
		Muscle:     m.Workout.Muscle,
		Emoji:      m.Workout.Emoji,
		Desc:       m.Workout.Desc,
		Auto:       m.WorkoutAuto,
		Cards:      cards,
		Cursor:     m.GymCursor,
		ContactsOK: len(m.Sess.Contacts) > 0,
	})
}
