package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/repsd/internal/engine"
	domainmodel "github.com/sandeepkv93/repsd/internal/model"
	"github.com/sandeepkv93/repsd/internal/views"
)

const coffeeHelpMarkdown = `# How Coffee Prep works

Senior and executive contacts are scored by urgency:

- **+50** overdue follow-up
- **+20** cold relationship, **+10** warm
- **+30 / +20 / +10** for 90 / 60 / 30+ days of silence
- **+5** executives

The top eight make the list. Mark one contacted to log a
coffee chat (**+8**) and restart their clock.`

func (m Model) coffeePicks() []engine.CoffeePick {
	return engine.CoffeePicks(m.Sess.Contacts, m.Sess.Today())
}

func (m Model) handleCoffeeKey(msg tea.KeyMsg) Model {
	picks := m.coffeePicks()
	switch msg.String() {
	case "j", "down":
		if m.CoffeeCursor < len(picks)-1 {
			m.CoffeeCursor++
		}
	case "k", "up":
		if m.CoffeeCursor > 0 {
			m.CoffeeCursor--
		}
	case "c", "enter":
		if m.CoffeeCursor >= len(picks) {
			return m
		}
		pick := picks[m.CoffeeCursor]
		entry, ok := m.Sess.CoffeeContacted(pick.Contact.ID)
		if !ok {
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("coffee chat +%d with %s", entry.Points, pick.Contact.Name)}
		m.notify("Rep Logged", m.Status.Text, "info")
		if m.CoffeeCursor >= len(m.coffeePicks()) {
			m.CoffeeCursor = 0
		}
	case "h":
		m.coffeeHelp = !m.coffeeHelp
	}
	return m
}

func (m Model) renderCoffeeView() string {
	now := m.Sess.Today()
	picks := m.coffeePicks()
	data := make([]views.CoffeePickData, 0, len(picks))
	for _, pick := range picks {
		data = append(data, views.CoffeePickData{
			Name:      pick.Contact.Name,
			Company:   pick.Contact.Company,
			Seniority: domainmodel.SeniorityLevelFor(pick.Contact.Seniority).Label,
			Score:     pick.Score,
			Urgency:   engine.ReconnectUrgency(pick.Contact, now),
			Overdue:   pick.Contact.Overdue(now),
		})
	}
	helpView := ""
	if m.coffeeHelp {
		helpView = views.RenderMarkdown(coffeeHelpMarkdown)
	}
	return views.RenderCoffeePanel(views.CoffeePanelData{
		Picks:    data,
		Cursor:   m.CoffeeCursor,
		HelpView: helpView,
	})
}
