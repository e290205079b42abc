package update

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/repsd/internal/importer"
	domainmodel "github.com/sandeepkv93/repsd/internal/model"
	"github.com/sandeepkv93/repsd/internal/views"
)

func (m Model) handlePeopleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	contacts := m.visibleContacts()
	switch msg.String() {
	case "j", "down":
		if m.People.Cursor < len(contacts)-1 {
			m.People.Cursor++
		}
	case "k", "up":
		if m.People.Cursor > 0 {
			m.People.Cursor--
		}
	case "a":
		m = m.openContactForm(domainmodel.Contact{})
	case "e":
		if m.People.Cursor < len(contacts) {
			m = m.openContactForm(contacts[m.People.Cursor])
		}
	case "d":
		if m.People.Cursor < len(contacts) {
			c := contacts[m.People.Cursor]
			m.Sess.DeleteContact(c.ID)
			m.Status = StatusBar{Text: fmt.Sprintf("deleted %s", c.Name)}
			if m.People.Cursor > 0 {
				m.People.Cursor--
			}
			m.refreshGymCards()
		}
	case "s":
		detected, unset := m.Sess.AutoDetectSeniority()
		m.Status = StatusBar{Text: fmt.Sprintf("seniority detected for %d contact(s), %d still unset", detected, unset)}
	case "i":
		m.People.Import = ImportState{Active: true}
		m.pathInput.SetValue("")
		m.pathInput.Focus()
	case "f":
		m.People.FilterActive = true
		m.filterInput.SetValue(m.People.Filter)
		m.filterInput.Focus()
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		m.People.Filter = m.filterInput.Value()
		m.People.FilterActive = false
		m.People.Cursor = 0
		m.filterInput.Blur()
	case "esc":
		m.People.Filter = ""
		m.People.FilterActive = false
		m.People.Cursor = 0
		m.filterInput.SetValue("")
		m.filterInput.Blur()
	default:
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) openContactForm(c domainmodel.Contact) Model {
	m.People.Form = ContactFormState{
		Active:    true,
		EditingID: c.ID,
		Warmth:    c.Warmth,
		Seniority: c.Seniority,
		CreatedAt: c.CreatedAt,
	}
	if !m.People.Form.Warmth.IsValid() {
		m.People.Form.Warmth = domainmodel.WarmthCold
	}
	values := []string{c.Name, c.Company, c.Notes, c.LastContact, c.FollowUpDate}
	for i := range m.formInputs {
		m.formInputs[i].SetValue(values[i])
		m.formInputs[i].Blur()
	}
	m.formInputs[formFieldName].Focus()
	return m
}

func (m Model) handleFormKey(msg tea.KeyMsg) Model {
	form := &m.People.Form
	switch msg.String() {
	case "esc":
		form.Active = false
	case "tab", "shift+tab":
		m.formInputs[form.FieldIdx].Blur()
		if msg.String() == "tab" {
			form.FieldIdx = (form.FieldIdx + 1) % formFieldCount
		} else {
			form.FieldIdx = (form.FieldIdx + formFieldCount - 1) % formFieldCount
		}
		m.formInputs[form.FieldIdx].Focus()
	case "ctrl+w":
		form.Warmth++
		if form.Warmth > domainmodel.WarmthHot {
			form.Warmth = domainmodel.WarmthCold
		}
	case "ctrl+r":
		form.Seniority++
		if form.Seniority > domainmodel.SeniorityExecutive {
			form.Seniority = domainmodel.SeniorityUnset
		}
	case "enter":
		saved, ok := m.Sess.SaveContact(domainmodel.Contact{
			ID:           form.EditingID,
			Name:         m.formInputs[formFieldName].Value(),
			Company:      strings.TrimSpace(m.formInputs[formFieldCompany].Value()),
			Notes:        strings.TrimSpace(m.formInputs[formFieldNotes].Value()),
			Warmth:       form.Warmth,
			Seniority:    form.Seniority,
			LastContact:  strings.TrimSpace(m.formInputs[formFieldLastContact].Value()),
			FollowUpDate: strings.TrimSpace(m.formInputs[formFieldFollowUp].Value()),
			CreatedAt:    form.CreatedAt,
		})
		if !ok {
			m.Status = StatusBar{Text: "contact needs a name", IsError: true}
			return m
		}
		verb := "added"
		if form.EditingID != "" {
			verb = "updated"
		}
		m.Status = StatusBar{Text: fmt.Sprintf("%s %s", verb, saved.Name)}
		form.Active = false
		m.refreshGymCards()
	default:
		var cmd tea.Cmd
		m.formInputs[form.FieldIdx], cmd = m.formInputs[form.FieldIdx].Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) handleImportKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	imp := &m.People.Import
	if len(imp.Rows) == 0 {
		switch msg.String() {
		case "esc":
			imp.Active = false
			m.pathInput.Blur()
		case "enter":
			path := strings.TrimSpace(m.pathInput.Value())
			if path == "" {
				imp.Err = "enter a file path"
				return m, nil
			}
			existing := m.Sess.Contacts
			return m, func() tea.Msg {
				f, err := os.Open(path)
				if err != nil {
					return ImportLoadedMsg{Err: err}
				}
				defer f.Close()
				rows, err := importer.Parse(f, existing)
				return ImportLoadedMsg{Rows: rows, Err: err}
			}
		default:
			var cmd tea.Cmd
			m.pathInput, cmd = m.pathInput.Update(msg)
			_ = cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		*imp = ImportState{}
	case "j", "down":
		if imp.Cursor < len(imp.Rows)-1 {
			imp.Cursor++
		}
	case "k", "up":
		if imp.Cursor > 0 {
			imp.Cursor--
		}
	case " ":
		row := &imp.Rows[imp.Cursor]
		if row.Exists {
			imp.Err = fmt.Sprintf("%s is already a contact", row.Name)
			return m, nil
		}
		row.Selected = !row.Selected
		imp.Err = ""
	case "enter":
		selected := make([]importer.Row, 0)
		for _, row := range imp.Rows {
			if row.Selected && !row.Exists {
				selected = append(selected, row)
			}
		}
		n := m.Sess.ImportContacts(selected)
		m.Status = StatusBar{Text: fmt.Sprintf("imported %d contact(s)", n)}
		m.notify("Import", m.Status.Text, "info")
		*imp = ImportState{}
		m.refreshGymCards()
	}
	return m, nil
}

// onImportLoaded lands the parsed CSV in the modal; a bad file keeps the
// path prompt up with the error and imports nothing.
func (m Model) onImportLoaded(msg ImportLoadedMsg) Model {
	if !m.People.Import.Active {
		return m
	}
	if msg.Err != nil {
		m.People.Import.Err = msg.Err.Error()
		m.Status = StatusBar{Text: fmt.Sprintf("import failed: %v", msg.Err), IsError: true}
		return m
	}
	m.People.Import.Rows = msg.Rows
	m.People.Import.Cursor = 0
	m.People.Import.Err = ""
	m.pathInput.Blur()
	return m
}

func (m Model) renderPeopleView() string {
	now := m.Sess.Today()
	contacts := m.visibleContacts()
	rows := make([]views.ContactRowData, 0, len(contacts))
	for _, c := range contacts {
		days := domainmodel.DaysSince(c.LastContact, now)
		if days == domainmodel.DaysSinceNever {
			days = 0
		}
		rows = append(rows, views.ContactRowData{
			Name:       c.Name,
			Company:    c.Company,
			Warmth:     c.Warmth.Label(),
			Seniority:  domainmodel.SeniorityLevelFor(c.Seniority).Label,
			FollowUp:   c.FollowUpDate,
			Overdue:    c.Overdue(now),
			DaysSilent: days,
		})
	}

	fieldViews := make([]string, 0, len(m.formInputs))
	for _, in := range m.formInputs {
		fieldViews = append(fieldViews, in.View())
	}

	importRows := make([]views.ImportRowData, 0, len(m.People.Import.Rows))
	for _, row := range m.People.Import.Rows {
		importRows = append(importRows, views.ImportRowData{
			Name:     row.Name,
			Company:  row.Company,
			Position: row.Position,
			Exists:   row.Exists,
			Selected: row.Selected,
		})
	}

	return views.RenderPeoplePanel(views.PeoplePanelData{
		TableView:  m.peopleTable.View(),
		Rows:       rows,
		Cursor:     m.People.Cursor,
		FilterView: m.filterInput.View(),
		Form: views.ContactFormData{
			Active:    m.People.Form.Active,
			Editing:   m.People.Form.EditingID != "",
			Fields:    fieldViews,
			FieldIdx:  m.People.Form.FieldIdx,
			Warmth:    m.People.Form.Warmth.Label(),
			Seniority: domainmodel.SeniorityLevelFor(m.People.Form.Seniority).Label,
		},
		Import: views.ImportPanelData{
			Active:    m.People.Import.Active,
			PathView:  m.pathInput.View(),
			Rows:      importRows,
			Cursor:    m.People.Import.Cursor,
			ErrorText: m.People.Import.Err,
		},
	})
}
