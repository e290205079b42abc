package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/sandeepkv93/repsd/internal/model"
)

func contact(id, name string, warmth model.Warmth, sen model.Seniority, lastContact, followUp string) model.Contact {
	return model.Contact{
		ID:           id,
		Name:         name,
		Warmth:       warmth,
		Seniority:    sen,
		LastContact:  lastContact,
		FollowUpDate: followUp,
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestOverdueContactsSortedAscending(t *testing.T) {
	now := "2024-06-10"
	contacts := []model.Contact{
		contact("a", "A", model.WarmthCold, model.SeniorityPeer, "", "2024-06-09"),
		contact("b", "B", model.WarmthCold, model.SeniorityPeer, "", "2024-06-01"),
		contact("c", "C", model.WarmthCold, model.SeniorityPeer, "", "2024-07-01"),
		contact("d", "D", model.WarmthCold, model.SeniorityPeer, "", ""),
		contact("e", "E", model.WarmthCold, model.SeniorityPeer, "", "2024-06-10"),
	}
	got := OverdueContacts(contacts, now)
	if len(got) != 3 {
		t.Fatalf("overdue count = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].FollowUpDate > got[i].FollowUpDate {
			t.Fatalf("overdue not sorted ascending: %s > %s", got[i-1].FollowUpDate, got[i].FollowUpDate)
		}
	}
	if got[0].ID != "b" {
		t.Fatalf("most overdue first, got %s", got[0].ID)
	}
}

func TestWorkoutCardsFilterAndOrder(t *testing.T) {
	now := "2024-06-10"
	contacts := []model.Contact{
		contact("p1", "Hot Peer", model.WarmthHot, model.SeniorityPeer, "2024-06-01", ""),
		contact("p2", "Cold Peer", model.WarmthCold, model.SeniorityPeer, "2024-06-01", ""),
		contact("p3", "Overdue Peer", model.WarmthHot, model.SeniorityPeer, "2024-06-01", "2024-06-01"),
		contact("s1", "Senior", model.WarmthCold, model.SenioritySenior, "2024-06-01", ""),
	}
	cat := model.WorkoutCategoryByID(model.WorkoutPeer)
	cards := WorkoutCards(contacts, cat, nil, now, nil)
	if len(cards) != 3 {
		t.Fatalf("card count = %d, want 3 (seniors excluded)", len(cards))
	}
	if cards[0].Contact.ID != "p3" {
		t.Fatalf("overdue contact should come first, got %s", cards[0].Contact.ID)
	}
	if cards[1].Contact.ID != "p2" {
		t.Fatalf("coldest non-overdue should come second, got %s", cards[1].Contact.ID)
	}
	// Action phrases cycle through the category list by position.
	if cards[0].Action != cat.Actions[0] || cards[1].Action != cat.Actions[1] {
		t.Fatalf("actions not assigned by position: %q, %q", cards[0].Action, cards[1].Action)
	}
}

func TestWorkoutCardsDismissedExcluded(t *testing.T) {
	now := "2024-06-10"
	contacts := []model.Contact{
		contact("p1", "P1", model.WarmthCold, model.SeniorityPeer, "", ""),
		contact("p2", "P2", model.WarmthCold, model.SeniorityPeer, "", ""),
	}
	cat := model.WorkoutCategoryByID(model.WorkoutPeer)
	cards := WorkoutCards(contacts, cat, map[string]bool{"p1": true}, now, nil)
	if len(cards) != 1 || cards[0].Contact.ID != "p2" {
		t.Fatalf("dismissed contact not excluded: %+v", cards)
	}
}

func TestWorkoutCardsReconnect(t *testing.T) {
	now := "2024-06-10"
	contacts := []model.Contact{
		contact("old", "Old", model.WarmthCold, model.SeniorityPeer, "2024-04-01", ""),
		contact("fresh", "Fresh", model.WarmthCold, model.SeniorityPeer, "2024-06-01", ""),
		contact("never", "Never", model.WarmthCold, model.SeniorityUnset, "", ""),
	}
	cards := WorkoutCards(contacts, model.WorkoutCategoryByID(model.WorkoutReconnect), nil, now, nil)
	if len(cards) != 2 {
		t.Fatalf("reconnect count = %d, want 2", len(cards))
	}
	// Never-contacted hits the staleness sentinel and qualifies.
	ids := map[string]bool{cards[0].Contact.ID: true, cards[1].Contact.ID: true}
	if !ids["old"] || !ids["never"] {
		t.Fatalf("unexpected reconnect pool: %+v", ids)
	}
}

func TestWorkoutCardsPowerHourSamplesEachRank(t *testing.T) {
	now := "2024-06-10"
	contacts := []model.Contact{
		contact("j1", "J1", model.WarmthCold, model.SeniorityJunior, "", ""),
		contact("j2", "J2", model.WarmthCold, model.SeniorityJunior, "", ""),
		contact("pe", "PE", model.WarmthCold, model.SeniorityPeer, "", ""),
		contact("ex", "EX", model.WarmthCold, model.SeniorityExecutive, "", ""),
		contact("un", "UN", model.WarmthCold, model.SeniorityUnset, "", ""),
	}
	rng := rand.New(rand.NewSource(7))
	cards := WorkoutCards(contacts, model.WorkoutCategoryByID(model.WorkoutPower), nil, now, rng)
	// Ranks 1, 2 and 4 have members; rank 3 and unset contribute nothing.
	if len(cards) != 3 {
		t.Fatalf("power hour count = %d, want 3", len(cards))
	}
	seen := make(map[model.Seniority]int)
	for _, c := range cards {
		seen[c.Contact.Seniority]++
	}
	if seen[model.SeniorityJunior] != 1 || seen[model.SeniorityPeer] != 1 || seen[model.SeniorityExecutive] != 1 {
		t.Fatalf("power hour should sample one per populated rank: %v", seen)
	}
}

func TestWorkoutCardsCapsAtFive(t *testing.T) {
	now := "2024-06-10"
	contacts := make([]model.Contact, 0, 9)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		contacts = append(contacts, contact(id, id, model.WarmthCold, model.SeniorityPeer, "", ""))
	}
	cards := WorkoutCards(contacts, model.WorkoutCategoryByID(model.WorkoutPeer), nil, now, nil)
	if len(cards) != 5 {
		t.Fatalf("card count = %d, want cap of 5", len(cards))
	}
}

func TestCoffeeScore(t *testing.T) {
	now := "2024-06-10"
	c := contact("s", "S", model.WarmthCold, model.SenioritySenior, "2024-03-02", "")
	if got := CoffeeScore(c, now); got != 50 { // 20 cold + 30 for 100 days
		t.Fatalf("senior cold 100d score = %d, want 50", got)
	}
	c.Seniority = model.SeniorityExecutive
	if got := CoffeeScore(c, now); got != 55 {
		t.Fatalf("executive bonus missing: %d, want 55", got)
	}
	c.FollowUpDate = "2024-06-01"
	if got := CoffeeScore(c, now); got != 105 {
		t.Fatalf("overdue bonus missing: %d, want 105", got)
	}
	// Hot contacts contribute no warmth points; colder scores strictly higher.
	cold := contact("a", "A", model.WarmthCold, model.SenioritySenior, "2024-06-09", "")
	hot := contact("b", "B", model.WarmthHot, model.SenioritySenior, "2024-06-09", "")
	if CoffeeScore(cold, now) <= CoffeeScore(hot, now) {
		t.Fatal("cold contact must outscore an otherwise-identical hot one")
	}
}

func TestCoffeePicksRanking(t *testing.T) {
	now := "2024-06-10"
	contacts := []model.Contact{
		contact("jr", "Junior", model.WarmthCold, model.SeniorityJunior, "2024-01-01", ""),
		contact("sen", "Senior", model.WarmthCold, model.SenioritySenior, "2024-03-02", ""),
		contact("exec", "Exec", model.WarmthCold, model.SeniorityExecutive, "2024-03-02", ""),
	}
	picks := CoffeePicks(contacts, now)
	if len(picks) != 2 {
		t.Fatalf("picks = %d, want 2 (junior excluded)", len(picks))
	}
	// Identical except seniority: the executive outranks the senior.
	if picks[0].Contact.ID != "exec" || picks[0].Score != 55 || picks[1].Score != 50 {
		t.Fatalf("ranking wrong: %+v", picks)
	}
}

func TestCoffeePicksCapsAtEight(t *testing.T) {
	now := "2024-06-10"
	contacts := make([]model.Contact, 0, 10)
	for i := 0; i < 10; i++ {
		contacts = append(contacts, contact(string(rune('a'+i)), "C", model.WarmthCold, model.SenioritySenior, "", ""))
	}
	if got := len(CoffeePicks(contacts, now)); got != 8 {
		t.Fatalf("picks = %d, want cap of 8", got)
	}
}

func TestSortContactsForDisplay(t *testing.T) {
	now := "2024-06-10"
	contacts := []model.Contact{
		contact("cold", "Cold", model.WarmthCold, model.SeniorityPeer, "", ""),
		contact("hot", "Hot", model.WarmthHot, model.SeniorityPeer, "", ""),
		contact("due", "Due", model.WarmthCold, model.SeniorityPeer, "", "2024-06-01"),
	}
	got := SortContactsForDisplay(contacts, now)
	if got[0].ID != "due" || got[1].ID != "hot" || got[2].ID != "cold" {
		t.Fatalf("display order wrong: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	// Input slice untouched.
	if contacts[0].ID != "cold" {
		t.Fatal("input slice was reordered")
	}
}

func TestRecentEntries(t *testing.T) {
	log := []model.ActivityEntry{
		entry("a", "like_post", "2024-06-08", 1),
		entry("b", "like_post", "2024-06-10", 1),
		entry("c", "like_post", "2024-06-09", 1),
	}
	got := RecentEntries(log, 2)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Fatalf("recent entries wrong: %+v", got)
	}
}
