package update

import (
	"context"
	"io"
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	domainmodel "github.com/sandeepkv93/repsd/internal/model"
	"github.com/sandeepkv93/repsd/internal/session"
	"github.com/sandeepkv93/repsd/internal/storage"
)

// nopRepo satisfies storage.Repository for UI tests; the session's
// fire-and-forget writes land nowhere.
type nopRepo struct{}

func (nopRepo) GetActivityLog(context.Context) ([]storage.ActivityEntry, error) { return nil, nil }
func (nopRepo) AddActivity(context.Context, storage.ActivityEntry) error        { return nil }
func (nopRepo) ClearActivityLog(context.Context) error                          { return nil }
func (nopRepo) GetContacts(context.Context) ([]storage.Contact, error)          { return nil, nil }
func (nopRepo) UpsertContact(context.Context, storage.Contact) error            { return nil }
func (nopRepo) DeleteContact(context.Context, string) error                     { return nil }
func (nopRepo) ImportContacts(context.Context, []storage.Contact) error         { return nil }
func (nopRepo) ClearContacts(context.Context) error                             { return nil }
func (nopRepo) GetWeeklyGoal(context.Context) (int, error)                      { return 25, nil }
func (nopRepo) SetWeeklyGoal(context.Context, int) error                        { return nil }
func (nopRepo) Close() error                                                    { return nil }

func newTestModel(t *testing.T) Model {
	t.Helper()
	clock := func() time.Time {
		return time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC) // Monday: auto workout is Peer Power
	}
	sess := session.New(nopRepo{}, log.New(io.Discard),
		session.WithClock(clock),
		session.WithRand(rand.New(rand.NewSource(1))),
	)
	return NewModel(sess)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+w":
			msg = tea.KeyMsg{Type: tea.KeyCtrlW}
		case "ctrl+r":
			msg = tea.KeyMsg{Type: tea.KeyCtrlR}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestTabSwitching(t *testing.T) {
	m := newTestModel(t)
	cases := []struct {
		key  string
		want View
	}{
		{"2", ViewCoffee},
		{"3", ViewLog},
		{"4", ViewPeople},
		{"5", ViewStats},
		{"1", ViewGym},
	}
	for _, tc := range cases {
		m = press(t, m, tc.key)
		if m.CurrentView != tc.want {
			t.Fatalf("key %s -> view %s, want %s", tc.key, m.CurrentView, tc.want)
		}
	}
}

func TestAutoWorkoutFollowsWeekday(t *testing.T) {
	m := newTestModel(t)
	if !m.WorkoutAuto {
		t.Fatal("fresh model should follow the daily rotation")
	}
	if m.Workout.ID != domainmodel.WorkoutPeer {
		t.Fatalf("Monday auto workout = %s, want peer", m.Workout.ID)
	}
	m = press(t, m, "w")
	if m.WorkoutAuto {
		t.Fatal("explicit pick should leave auto mode")
	}
	m = press(t, m, "a")
	if !m.WorkoutAuto || m.Workout.ID != domainmodel.WorkoutPeer {
		t.Fatalf("auto restore failed: auto=%v workout=%s", m.WorkoutAuto, m.Workout.ID)
	}
}

func TestGymCompleteCard(t *testing.T) {
	m := newTestModel(t)
	m.Sess.SaveContact(domainmodel.Contact{Name: "Avery", Seniority: domainmodel.SeniorityPeer, LastContact: "2024-05-01"})
	m.refreshGymCards()
	if len(m.GymCards) != 1 {
		t.Fatalf("card count = %d, want 1", len(m.GymCards))
	}

	m = press(t, m, "c")
	if len(m.Sess.Log) != 1 || m.Sess.Log[0].ActivityID != "send_dm" {
		t.Fatalf("completing a peer card should log send_dm: %+v", m.Sess.Log)
	}
	if len(m.GymCards) != 0 {
		t.Fatalf("completed card should leave the workout: %+v", m.GymCards)
	}
}

func TestGymSkipCard(t *testing.T) {
	m := newTestModel(t)
	m.Sess.SaveContact(domainmodel.Contact{Name: "Avery", Seniority: domainmodel.SeniorityPeer})
	m.refreshGymCards()

	m = press(t, m, "x")
	if len(m.Sess.Log) != 0 {
		t.Fatal("skip must not log a rep")
	}
	if len(m.GymCards) != 0 {
		t.Fatal("skipped card should leave the workout")
	}

	// Switching workouts clears the dismissed set.
	m = press(t, m, "w", "a")
	if len(m.GymCards) != 1 {
		t.Fatalf("dismissed set should reset on workout change: %+v", m.GymCards)
	}
}

func TestLogTabLogsSelectedActivity(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "3")
	m = press(t, m, "j", "enter") // second activity: comment_post
	if len(m.Sess.Log) != 1 || m.Sess.Log[0].ActivityID != "comment_post" {
		t.Fatalf("unexpected log: %+v", m.Sess.Log)
	}
}

func TestPaletteLogCommand(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "/")
	if !m.Palette.Active {
		t.Fatal("palette should be active")
	}
	m = typeText(t, m, "log send_dm with Avery")
	m = press(t, m, "enter")
	if m.Palette.Active {
		t.Fatal("palette should close after execution")
	}
	if len(m.Sess.Log) != 1 || m.Sess.Log[0].ContactName != "Avery" {
		t.Fatalf("palette log failed: %+v", m.Sess.Log)
	}
}

func TestPaletteResetNeedsConfirm(t *testing.T) {
	m := newTestModel(t)
	m.Sess.LogActivity("send_dm", "")

	m = press(t, m, "/")
	m = typeText(t, m, "reset")
	m = press(t, m, "enter")
	if len(m.Sess.Log) != 1 {
		t.Fatal("bare reset must not wipe data")
	}
	if !m.Status.IsError {
		t.Fatalf("expected error status, got %+v", m.Status)
	}

	m = press(t, m, "/")
	m = typeText(t, m, "reset confirm")
	m = press(t, m, "enter")
	if len(m.Sess.Log) != 0 {
		t.Fatal("confirmed reset should wipe the log")
	}
}

func TestStatsGoalAdjust(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "5", "+")
	if m.Sess.Goal != 30 {
		t.Fatalf("goal = %d, want 30", m.Sess.Goal)
	}
	for i := 0; i < 10; i++ {
		m = press(t, m, "-")
	}
	if m.Sess.Goal != 5 {
		t.Fatalf("goal floor = %d, want 5", m.Sess.Goal)
	}
}

func TestStatsMarkOverdueDone(t *testing.T) {
	m := newTestModel(t)
	saved, _ := m.Sess.SaveContact(domainmodel.Contact{Name: "Avery", LastContact: "2024-05-01", FollowUpDate: "2024-06-01"})

	m = press(t, m, "5", "enter")
	if len(m.Sess.Log) != 1 || m.Sess.Log[0].ActivityID != "follow_up" {
		t.Fatalf("mark-done should log follow_up: %+v", m.Sess.Log)
	}
	for _, c := range m.Sess.Contacts {
		if c.ID == saved.ID && c.FollowUpDate != "" {
			t.Fatalf("follow-up date should clear: %+v", c)
		}
	}
}

func TestContactFormAddAndEdit(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "4", "a")
	if !m.People.Form.Active {
		t.Fatal("form should open")
	}
	m = typeText(t, m, "Avery Chen")
	m = press(t, m, "tab")
	m = typeText(t, m, "Acme")
	m = press(t, m, "enter")
	if m.People.Form.Active {
		t.Fatal("form should close on save")
	}
	if len(m.Sess.Contacts) != 1 || m.Sess.Contacts[0].Company != "Acme" {
		t.Fatalf("contact not saved: %+v", m.Sess.Contacts)
	}

	m = press(t, m, "e")
	m = press(t, m, "ctrl+w", "ctrl+w") // cold -> warm -> hot
	m = press(t, m, "enter")
	if len(m.Sess.Contacts) != 1 {
		t.Fatalf("edit duplicated contact: %+v", m.Sess.Contacts)
	}
	if m.Sess.Contacts[0].Warmth != domainmodel.WarmthHot {
		t.Fatalf("warmth = %d, want hot", m.Sess.Contacts[0].Warmth)
	}
}

func TestPeopleFilter(t *testing.T) {
	m := newTestModel(t)
	m.Sess.SaveContact(domainmodel.Contact{Name: "Avery Chen", Company: "Acme"})
	m.Sess.SaveContact(domainmodel.Contact{Name: "Blair Ito", Company: "Globex"})

	m = press(t, m, "4", "f")
	m = typeText(t, m, "globex")
	m = press(t, m, "enter")
	got := m.visibleContacts()
	if len(got) != 1 || got[0].Name != "Blair Ito" {
		t.Fatalf("filter wrong: %+v", got)
	}

	m = press(t, m, "f", "esc")
	if len(m.visibleContacts()) != 2 {
		t.Fatal("esc should clear the filter")
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	m := newTestModel(t)
	m.Sess.SaveContact(domainmodel.Contact{Name: "Avery", Seniority: domainmodel.SenioritySenior, LastContact: "2024-01-01"})
	m.Sess.LogActivity("send_dm", "Avery")
	for _, k := range []string{"1", "2", "3", "4", "5"} {
		m = press(t, m, k)
		if out := m.View(); out == "" {
			t.Fatalf("empty render for tab %s", k)
		}
	}
}
