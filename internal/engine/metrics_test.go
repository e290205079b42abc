package engine

import (
	"testing"
	"time"

	"github.com/sandeepkv93/repsd/internal/model"
)

func entry(id, activityID, date string, points int) model.ActivityEntry {
	ts, _ := model.ParseDate(date)
	return model.ActivityEntry{
		ID:         id,
		ActivityID: activityID,
		Name:       activityID,
		Points:     points,
		Tier:       1,
		Date:       date,
		Timestamp:  ts,
	}
}

func TestPointsAndWindows(t *testing.T) {
	log := []model.ActivityEntry{
		entry("a", "like_post", "2024-06-10", 1),
		entry("b", "send_dm", "2024-06-10", 4),
		entry("c", "coffee_chat", "2024-06-12", 8),
		entry("d", "like_post", "2024-06-09", 1), // previous week (Sunday)
	}
	now := "2024-06-10" // Monday

	if got := TodayPoints(log, now); got != 5 {
		t.Fatalf("TodayPoints = %d, want 5", got)
	}
	if got := WeekPoints(log, now); got != 13 {
		t.Fatalf("WeekPoints = %d, want 13", got)
	}
	if got := len(EntriesOn(log, "2024-06-12")); got != 1 {
		t.Fatalf("EntriesOn(2024-06-12) = %d entries, want 1", got)
	}
	if got := len(EntriesInRange(log, "2024-06-09", "2024-06-10")); got != 3 {
		t.Fatalf("EntriesInRange = %d entries, want 3", got)
	}
	// Today is inside the week, so week points dominate today points.
	if WeekPoints(log, now) < TodayPoints(log, now) {
		t.Fatal("weekPoints must be >= todayPoints when today is in the window")
	}
}

func TestActiveDays(t *testing.T) {
	log := []model.ActivityEntry{
		entry("a", "like_post", "2024-06-10", 1),
		entry("b", "send_dm", "2024-06-10", 4),
		entry("c", "coffee_chat", "2024-06-12", 8),
		entry("d", "like_post", "2024-06-01", 1),
	}
	if got := ActiveDays(log, "2024-06-12"); got != 2 {
		t.Fatalf("ActiveDays = %d, want 2", got)
	}
}

func TestStreakAnchorsOnTodayOrYesterday(t *testing.T) {
	// Today logged: streak counts back from today.
	log := []model.ActivityEntry{
		entry("a", "like_post", "2024-06-10", 1),
		entry("b", "like_post", "2024-06-09", 1),
		entry("c", "like_post", "2024-06-08", 1),
	}
	if got := Streak(log, "2024-06-10"); got != 3 {
		t.Fatalf("streak with today logged = %d, want 3", got)
	}

	// Today not yet logged: streak still alive via yesterday.
	log = log[1:]
	if got := Streak(log, "2024-06-10"); got != 2 {
		t.Fatalf("streak via yesterday = %d, want 2", got)
	}

	// A fully skipped day breaks the streak.
	gap := []model.ActivityEntry{entry("x", "like_post", "2024-06-07", 1)}
	if got := Streak(gap, "2024-06-10"); got != 0 {
		t.Fatalf("streak over gap = %d, want 0", got)
	}
	if got := Streak(nil, "2024-06-10"); got != 0 {
		t.Fatalf("streak on empty log = %d, want 0", got)
	}
}

func TestStreakGrowsWithConsecutiveBackfill(t *testing.T) {
	now := "2024-06-10"
	log := []model.ActivityEntry{}
	prev := 0
	for i := 0; i < 5; i++ {
		d, err := model.AddDays(now, -i)
		if err != nil {
			t.Fatalf("AddDays: %v", err)
		}
		log = append(log, entry(d, "like_post", d, 1))
		got := Streak(log, now)
		if got < prev {
			t.Fatalf("streak shrank from %d to %d after adding %s", prev, got, d)
		}
		prev = got
	}
	if prev != 5 {
		t.Fatalf("final streak = %d, want 5", prev)
	}
}

func TestHeatmap(t *testing.T) {
	log := []model.ActivityEntry{
		entry("a", "like_post", "2024-06-10", 1),
		entry("b", "coffee_chat", "2024-06-12", 8),
	}
	hm := Heatmap(log, "2024-06-12") // Wednesday
	if len(hm) != 7 {
		t.Fatalf("heatmap has %d days, want 7", len(hm))
	}
	if hm[0].Day != "2024-06-10" || hm[0].Points != 1 || !hm[0].IsPast {
		t.Fatalf("monday cell wrong: %+v", hm[0])
	}
	if !hm[2].IsToday || hm[2].Points != 8 || hm[2].IsPast {
		t.Fatalf("wednesday cell wrong: %+v", hm[2])
	}
	if hm[1].Points != 0 || !hm[1].IsPast {
		t.Fatalf("missed tuesday should be an empty past cell: %+v", hm[1])
	}
	if hm[6].IsPast || hm[6].IsToday {
		t.Fatalf("sunday should be a future cell: %+v", hm[6])
	}
}

func TestTrend(t *testing.T) {
	log := []model.ActivityEntry{
		entry("a", "like_post", "2024-06-10", 5),  // this week
		entry("b", "like_post", "2024-06-03", 7),  // 1w ago
		entry("c", "like_post", "2024-05-21", 9),  // 3w ago
		entry("d", "like_post", "2024-04-01", 99), // outside the window
	}
	tr := Trend(log, "2024-06-12")
	if len(tr) != 4 {
		t.Fatalf("trend has %d weeks, want 4", len(tr))
	}
	if tr[0].Label != "3w ago" || tr[0].Points != 9 {
		t.Fatalf("oldest bar wrong: %+v", tr[0])
	}
	if tr[2].Points != 7 {
		t.Fatalf("1w-ago bar wrong: %+v", tr[2])
	}
	if tr[3].Label != "This Week" || tr[3].Points != 5 {
		t.Fatalf("current bar wrong: %+v", tr[3])
	}
	if got := TrendMax(tr, 25); got != 25 {
		t.Fatalf("TrendMax = %d, want goal floor 25", got)
	}
	if got := TrendMax(tr, 3); got != 9 {
		t.Fatalf("TrendMax = %d, want 9", got)
	}
}

func TestLevelProgress(t *testing.T) {
	p := LevelProgress(0)
	if p.Level != 1 || p.Title != "Wallflower" || p.Fraction != 0 {
		t.Fatalf("fresh progress wrong: %+v", p)
	}
	p = LevelProgress(125)
	if p.Level != 3 || p.Title != "Nodder" {
		t.Fatalf("level for 125 pts wrong: %+v", p)
	}
	if p.Fraction != 0.5 {
		t.Fatalf("fraction for 125 pts = %v, want 0.5", p.Fraction)
	}
	// Level is unbounded, the title list is not.
	p = LevelProgress(5000)
	if p.Level != 101 || p.Title != "Superconnector" {
		t.Fatalf("high level wrong: %+v", p)
	}
}

func TestEndToEndFreshMonday(t *testing.T) {
	now := "2024-06-10" // a Monday
	ts := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	log := []model.ActivityEntry{{
		ID: "e1", ActivityID: "send_dm", Name: "Send a DM or message",
		Points: 4, Tier: 2, Date: now, Timestamp: ts,
	}}
	if got := TodayPoints(log, now); got != 4 {
		t.Fatalf("todayPoints = %d, want 4", got)
	}
	if got := WeekPoints(log, now); got != 4 {
		t.Fatalf("weekPoints = %d, want 4", got)
	}
	if got := Streak(log, now); got != 1 {
		t.Fatalf("streak = %d, want 1", got)
	}
}
