package checkin

import (
	"math"
	"sort"
	"time"
)

// ComputeStats derives visit statistics for one member. Streaks count
// consecutive calendar days with at least one check-in; the current
// streak must include today or yesterday, otherwise it is 0.
func ComputeStats(checkIns []CheckIn, now time.Time) Stats {
	s := Stats{TotalCheckIns: len(checkIns)}
	if len(checkIns) == 0 {
		return s
	}

	year, month, _ := now.Date()
	daySet := make(map[string]bool)
	var totalMinutes int

	for _, ci := range checkIns {
		t := ci.CheckInTime
		if y, m, _ := t.Date(); y == year && m == month {
			s.ThisMonth++
		}
		daySet[t.Format("2006-01-02")] = true
		if ci.DurationMinutes != nil {
			totalMinutes += *ci.DurationMinutes
		}
	}

	s.TotalHours = math.Round(float64(totalMinutes)/60*10) / 10

	days := make([]string, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Strings(days)

	s.CurrentStreak, s.LongestStreak = streaks(days, now)
	return s
}

// streaks walks the sorted distinct visit days and measures runs of
// consecutive dates.
func streaks(days []string, now time.Time) (current, longest int) {
	if len(days) == 0 {
		return 0, 0
	}

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		prev, _ := time.Parse("2006-01-02", days[i-1])
		cur, _ := time.Parse("2006-01-02", days[i])
		if cur.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	last, _ := time.Parse("2006-01-02", days[len(days)-1])
	today, _ := time.Parse("2006-01-02", now.Format("2006-01-02"))
	gap := today.Sub(last)
	if gap == 0 || gap == 24*time.Hour {
		current = run
	}

	return current, longest
}

// FavoriteClass returns the most frequent name in the visit history,
// ties broken by insertion order. Empty input yields an empty string.
func FavoriteClass(classNames []string) string {
	counts := make(map[string]int)
	order := []string{}
	for _, name := range classNames {
		if name == "" {
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	favorite := ""
	best := 0
	for _, name := range order {
		if counts[name] > best {
			best = counts[name]
			favorite = name
		}
	}
	return favorite
}
