package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/repsd/internal/engine"
	"github.com/sandeepkv93/repsd/internal/importer"
	domainmodel "github.com/sandeepkv93/repsd/internal/model"
	"github.com/sandeepkv93/repsd/internal/session"
)

type View string

const (
	ViewGym    View = "Gym"
	ViewCoffee View = "Coffee"
	ViewLog    View = "Log"
	ViewPeople View = "People"
	ViewStats  View = "Stats"
)

var allViews = []View{ViewGym, ViewCoffee, ViewLog, ViewPeople, ViewStats}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Gym    string
	Coffee string
	Log    string
	People string
	Stats  string
	Help   string
	Quit   string
}

// Form field order: name, company, notes, last contact, follow up.
const (
	formFieldName = iota
	formFieldCompany
	formFieldNotes
	formFieldLastContact
	formFieldFollowUp
	formFieldCount
)

type ContactFormState struct {
	Active    bool
	EditingID string
	FieldIdx  int
	Warmth    domainmodel.Warmth
	Seniority domainmodel.Seniority
	CreatedAt time.Time
}

type ImportState struct {
	Active bool
	Rows   []importer.Row
	Cursor int
	Err    string
}

type PeopleState struct {
	Cursor       int
	Filter       string
	FilterActive bool
	Form         ContactFormState
	Import       ImportState
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type ImportLoadedMsg struct {
	Rows []importer.Row
	Err  error
}

type Model struct {
	CurrentView View
	Sess        *session.Session

	// Gym
	Workout     domainmodel.WorkoutCategory
	WorkoutAuto bool
	GymCards    []engine.WorkoutCard
	GymCursor   int

	// Coffee
	CoffeeCursor int
	coffeeHelp   bool

	// Log
	LogCursor          int
	contactInputActive bool

	// People / Stats
	People        PeopleState
	OverdueCursor int

	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool

	// Bubble components used for rich TUI controls
	peopleTable  table.Model
	contactInput textinput.Model
	commandInput textinput.Model
	filterInput  textinput.Model
	pathInput    textinput.Model
	formInputs   []textinput.Model
	goalProgress progress.Model
	helpModel    help.Model
}

func NewModel(sess *session.Session) Model {
	m := Model{
		CurrentView: ViewGym,
		Sess:        sess,
		WorkoutAuto: true,
		notifier:    NoopDesktopNotifier{},
		Keys: GlobalKeyMap{
			Gym:    "1",
			Coffee: "2",
			Log:    "3",
			People: "4",
			Stats:  "5",
			Help:   "?",
			Quit:   "q",
		},
	}
	m.Workout = m.autoWorkout()
	m.initBubbleComponents()
	m.refreshGymCards()
	m.syncBubbleData()
	return m
}

func NewModelWithConfig(sess *session.Session, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	m := NewModel(sess)
	m.DesktopEnabled = cfg.DesktopNotifications
	if notifier != nil {
		m.notifier = notifier
	}
	return m
}

// autoWorkout maps today's weekday onto the daily rotation.
func (m Model) autoWorkout() domainmodel.WorkoutCategory {
	t, err := domainmodel.ParseDate(m.Sess.Today())
	if err != nil {
		return domainmodel.WorkoutCategoryByID(domainmodel.WorkoutPeer)
	}
	return domainmodel.AutoWorkout(t.Weekday())
}

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "Name", Width: 18},
		{Title: "Company", Width: 14},
		{Title: "Warmth", Width: 8},
		{Title: "Rank", Width: 10},
		{Title: "Follow-up", Width: 11},
	}
	m.peopleTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.contactInput = textinput.New()
	m.contactInput.Prompt = "with> "
	m.contactInput.CharLimit = 128
	m.contactInput.Width = 32

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.filterInput = textinput.New()
	m.filterInput.Prompt = "find> "
	m.filterInput.CharLimit = 64
	m.filterInput.Width = 28

	m.pathInput = textinput.New()
	m.pathInput.Prompt = "csv> "
	m.pathInput.CharLimit = 512
	m.pathInput.Width = 48

	prompts := []string{"", "", "", "", ""}
	placeholders := []string{"Avery Chen", "Acme", "met at GopherCon", "2024-06-10", "2024-07-01"}
	m.formInputs = make([]textinput.Model, formFieldCount)
	for i := range m.formInputs {
		in := textinput.New()
		in.Prompt = prompts[i]
		in.Placeholder = placeholders[i]
		in.CharLimit = 256
		in.Width = 36
		m.formInputs[i] = in
	}

	m.goalProgress = progress.New(progress.WithDefaultGradient())
	m.helpModel = help.New()
}

// syncBubbleData pushes derived state into the bubble components before a
// render.
func (m *Model) syncBubbleData() {
	now := m.Sess.Today()
	contacts := m.visibleContacts()
	rows := make([]table.Row, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, table.Row{
			c.Name,
			c.Company,
			c.Warmth.Label(),
			domainmodel.SeniorityLevelFor(c.Seniority).Label,
			followUpCell(c, now),
		})
	}
	m.peopleTable.SetRows(rows)
	if len(rows) > 0 && m.People.Cursor < len(rows) {
		m.peopleTable.SetCursor(m.People.Cursor)
	}
}

func followUpCell(c domainmodel.Contact, now string) string {
	if c.FollowUpDate == "" {
		return "-"
	}
	if c.Overdue(now) {
		return c.FollowUpDate + "!"
	}
	return c.FollowUpDate
}

// visibleContacts is the People tab ordering: overdue first, warmest next,
// narrowed by the free-text filter.
func (m Model) visibleContacts() []domainmodel.Contact {
	now := m.Sess.Today()
	sorted := engine.SortContactsForDisplay(m.Sess.Contacts, now)
	if strings.TrimSpace(m.People.Filter) == "" {
		return sorted
	}
	out := make([]domainmodel.Contact, 0, len(sorted))
	for _, c := range sorted {
		if engine.MatchesFilter(c, m.People.Filter) {
			out = append(out, c)
		}
	}
	return out
}

func (m *Model) refreshGymCards() {
	m.GymCards = engine.WorkoutCards(m.Sess.Contacts, m.Workout, m.Sess.Dismissed(), m.Sess.Today(), m.Sess.Rand())
	if m.GymCursor >= len(m.GymCards) {
		m.GymCursor = len(m.GymCards) - 1
	}
	if m.GymCursor < 0 {
		m.GymCursor = 0
	}
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}
