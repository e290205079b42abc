package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/repsd/internal/commands"
	domainmodel "github.com/sandeepkv93/repsd/internal/model"
	"github.com/sandeepkv93/repsd/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.People.Import.Active {
			return m.handleImportKey(typed)
		}
		if m.People.Form.Active {
			return m.handleFormKey(typed), nil
		}
		if m.People.FilterActive {
			return m.handleFilterKey(typed), nil
		}
		if m.contactInputActive {
			return m.handleContactNameKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Gym:
			return m.switchView(ViewGym), nil
		case m.Keys.Coffee:
			return m.switchView(ViewCoffee), nil
		case m.Keys.Log:
			return m.switchView(ViewLog), nil
		case m.Keys.People:
			return m.switchView(ViewPeople), nil
		case m.Keys.Stats:
			return m.switchView(ViewStats), nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			m.Sess.Flush()
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewGym:
			return m.handleGymKey(typed), nil
		case ViewCoffee:
			return m.handleCoffeeKey(typed), nil
		case ViewLog:
			return m.handleLogKey(typed), nil
		case ViewPeople:
			return m.handlePeopleKey(typed)
		case ViewStats:
			return m.handleStatsKey(typed), nil
		}
	case SwitchViewMsg:
		return m.switchView(typed.View), nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case ImportLoadedMsg:
		return m.onImportLoaded(typed), nil
	}

	return m, nil
}

func (m Model) switchView(v View) Model {
	known := false
	for _, candidate := range allViews {
		if candidate == v {
			known = true
			break
		}
	}
	if !known {
		return m
	}
	m.CurrentView = v
	if v == ViewGym {
		m.refreshGymCards()
	}
	return m
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	body := ""
	switch m.CurrentView {
	case ViewGym:
		body = m.renderGymView()
	case ViewCoffee:
		body = m.renderCoffeeView()
	case ViewLog:
		body = m.renderLogView()
	case ViewPeople:
		body = m.renderPeopleView()
	case ViewStats:
		body = m.renderStatsView()
	}

	side := strings.TrimSpace(strings.Join([]string{
		views.RenderCommandPalette(m.Palette.Active, m.Palette.Input),
		m.renderHelpIfVisible(),
	}, "\n"))

	notification := strings.TrimSpace(m.renderNotificationsView())

	tabs := make([]string, 0, len(allViews))
	for _, v := range allViews {
		tabs = append(tabs, string(v))
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("repsd | %s | week %d/%d pts", m.Sess.Today(), m.weekPoints(), m.Sess.Goal),
		Tabs:         tabs,
		ActiveTab:    string(m.CurrentView),
		Body:         body,
		SidePane:     side,
		StatusLine:   status,
		Notification: notification,
		Footer: fmt.Sprintf("keys: %s gym | %s coffee | %s log | %s people | %s stats | / command | %s help | %s quit",
			m.Keys.Gym, m.Keys.Coffee, m.Keys.Log, m.Keys.People, m.Keys.Stats, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Log: func(a commands.LogArgs) (commands.Result, error) {
			entry, ok := m.Sess.LogActivity(a.ActivityID, a.ContactName)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown activity: %s", a.ActivityID)}
			}
			return commands.Result{Message: fmt.Sprintf("logged %s +%d", entry.Name, entry.Points)}, nil
		},
		Goal: func(a commands.GoalArgs) (commands.Result, error) {
			goal := m.Sess.AdjustGoal(a.Delta)
			return commands.Result{Message: fmt.Sprintf("weekly goal: %d pts", goal)}, nil
		},
		Workout: func(a commands.WorkoutArgs) (commands.Result, error) {
			m.Workout = domainmodel.WorkoutCategoryByID(a.Category)
			m.WorkoutAuto = false
			m.Sess.ResetDismissed()
			m.refreshGymCards()
			m.CurrentView = ViewGym
			return commands.Result{Message: fmt.Sprintf("workout: %s", m.Workout.Label)}, nil
		},
		Reset: func(a commands.ResetArgs) (commands.Result, error) {
			if !a.Confirmed {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "run /reset confirm to wipe everything"}
			}
			m.Sess.ResetAll()
			m.refreshGymCards()
			return commands.Result{Message: "all data reset"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Gym, Action: "gym workout"},
		{Key: m.Keys.Coffee, Action: "coffee prep"},
		{Key: m.Keys.Log, Action: "log a rep"},
		{Key: m.Keys.People, Action: "people"},
		{Key: m.Keys.Stats, Action: "stats"},
		{Key: "/", Action: "command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewGym:
		return []KeyBinding{
			{Key: "j/k", Action: "move between cards"},
			{Key: "c", Action: "complete card (logs the rep)"},
			{Key: "x", Action: "skip card"},
			{Key: "w", Action: "next workout"},
			{Key: "a", Action: "back to daily auto workout"},
		}
	case ViewCoffee:
		return []KeyBinding{
			{Key: "j/k", Action: "move between picks"},
			{Key: "c", Action: "mark contacted (+8)"},
			{Key: "h", Action: "how scoring works"},
		}
	case ViewLog:
		return []KeyBinding{
			{Key: "j/k", Action: "move between activities"},
			{Key: "enter", Action: "log selected rep"},
			{Key: "n", Action: "set contact name"},
		}
	case ViewPeople:
		return []KeyBinding{
			{Key: "j/k", Action: "move"},
			{Key: "a/e/d", Action: "add / edit / delete"},
			{Key: "i", Action: "import CSV"},
			{Key: "s", Action: "detect seniority from notes"},
			{Key: "f", Action: "filter"},
		}
	case ViewStats:
		return []KeyBinding{
			{Key: "j/k", Action: "move overdue cursor"},
			{Key: "enter", Action: "mark follow-up done"},
			{Key: "+/-", Action: "adjust weekly goal"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
