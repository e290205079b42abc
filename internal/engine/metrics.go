// Package engine derives every displayed metric from the activity log and
// contact list. All functions are pure: they take the full state plus "now"
// and return values without touching the inputs.
package engine

import (
	"fmt"

	"github.com/sandeepkv93/repsd/internal/model"
)

// EntriesOn returns the entries logged for one calendar day.
func EntriesOn(log []model.ActivityEntry, date string) []model.ActivityEntry {
	out := make([]model.ActivityEntry, 0)
	for _, e := range log {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// EntriesInRange returns the entries with start <= date <= end. The fixed
// "2006-01-02" format makes the lexicographic comparison safe.
func EntriesInRange(log []model.ActivityEntry, start, end string) []model.ActivityEntry {
	out := make([]model.ActivityEntry, 0)
	for _, e := range log {
		if e.Date >= start && e.Date <= end {
			out = append(out, e)
		}
	}
	return out
}

// Points sums the point values of a set of entries.
func Points(entries []model.ActivityEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Points
	}
	return total
}

// TotalPoints is the lifetime point sum over the whole log.
func TotalPoints(log []model.ActivityEntry) int {
	return Points(log)
}

// TodayPoints sums the points logged on the current day.
func TodayPoints(log []model.ActivityEntry, now string) int {
	return Points(EntriesOn(log, now))
}

func currentWeek(now string) (start, end string, ok bool) {
	start, err := model.WeekStart(now)
	if err != nil {
		return "", "", false
	}
	end, err = model.AddDays(start, 6)
	if err != nil {
		return "", "", false
	}
	return start, end, true
}

// WeekPoints sums the points in the Monday-anchored week containing now.
func WeekPoints(log []model.ActivityEntry, now string) int {
	start, end, ok := currentWeek(now)
	if !ok {
		return 0
	}
	return Points(EntriesInRange(log, start, end))
}

// ActiveDays counts the distinct days with at least one entry in the current
// week.
func ActiveDays(log []model.ActivityEntry, now string) int {
	start, end, ok := currentWeek(now)
	if !ok {
		return 0
	}
	seen := make(map[string]bool)
	for _, e := range EntriesInRange(log, start, end) {
		seen[e.Date] = true
	}
	return len(seen)
}

// Streak counts consecutive active days walking backward from today, or from
// yesterday when today has no entry yet. A day not yet logged does not break
// the streak; a fully skipped day does.
func Streak(log []model.ActivityEntry, now string) int {
	active := make(map[string]bool, len(log))
	for _, e := range log {
		active[e.Date] = true
	}
	day := now
	if !active[day] {
		prev, err := model.AddDays(day, -1)
		if err != nil {
			return 0
		}
		day = prev
	}
	streak := 0
	for active[day] {
		streak++
		prev, err := model.AddDays(day, -1)
		if err != nil {
			break
		}
		day = prev
	}
	return streak
}

// HeatmapDay is one cell of the current-week heatmap.
type HeatmapDay struct {
	Day     string
	Points  int
	IsToday bool
	IsPast  bool
}

// Heatmap returns the seven days of the current week with their point
// totals. Zero-point days stay distinguishable as past (missed) vs future.
func Heatmap(log []model.ActivityEntry, now string) []HeatmapDay {
	start, _, ok := currentWeek(now)
	if !ok {
		return nil
	}
	days, err := model.WeekDays(start)
	if err != nil {
		return nil
	}
	out := make([]HeatmapDay, 0, 7)
	for _, day := range days {
		out = append(out, HeatmapDay{
			Day:     day,
			Points:  Points(EntriesOn(log, day)),
			IsToday: day == now,
			IsPast:  day < now,
		})
	}
	return out
}

// TrendWeek is one bar of the 4-week trend chart.
type TrendWeek struct {
	WeekStart string
	Points    int
	Label     string
}

// Trend returns point totals for the current week and the three before it,
// oldest first.
func Trend(log []model.ActivityEntry, now string) []TrendWeek {
	start, _, ok := currentWeek(now)
	if !ok {
		return nil
	}
	out := make([]TrendWeek, 0, 4)
	for i := 3; i >= 0; i-- {
		ws, err := model.AddDays(start, -i*7)
		if err != nil {
			return out
		}
		we, err := model.AddDays(ws, 6)
		if err != nil {
			return out
		}
		label := "This Week"
		if i > 0 {
			label = fmt.Sprintf("%dw ago", i)
		}
		out = append(out, TrendWeek{
			WeekStart: ws,
			Points:    Points(EntriesInRange(log, ws, we)),
			Label:     label,
		})
	}
	return out
}

// TrendMax is the bar-chart scale: the largest weekly total, floored at the
// weekly goal so a quiet month still renders against the target.
func TrendMax(trend []TrendWeek, weeklyGoal int) int {
	max := weeklyGoal
	for _, w := range trend {
		if w.Points > max {
			max = w.Points
		}
	}
	return max
}

// pointsPerLevel fixes the size of each level band.
const pointsPerLevel = 50

// Progress describes the unbounded level derived from lifetime points.
type Progress struct {
	Level       int
	Title       string
	Fraction    float64 // progress within the current level, [0, 1)
	TotalPoints int
}

// LevelProgress computes the level band for a lifetime point total.
func LevelProgress(totalPoints int) Progress {
	if totalPoints < 0 {
		totalPoints = 0
	}
	level := totalPoints/pointsPerLevel + 1
	return Progress{
		Level:       level,
		Title:       model.LevelTitle(level),
		Fraction:    float64(totalPoints%pointsPerLevel) / pointsPerLevel,
		TotalPoints: totalPoints,
	}
}
