package class

import "math"

type Stats struct {
	Total          int `json:"total"`
	Active         int `json:"active"`
	TotalCapacity  int `json:"total_capacity"`
	AvgCapacity    int `json:"avg_capacity"`
	WeeklySessions int `json:"weekly_sessions"`
}

// ComputeStats aggregates class counts, capacity and the number of weekly
// scheduled sessions over a snapshot of classes.
func ComputeStats(classes []ClassWithInstructor) Stats {
	s := Stats{Total: len(classes)}
	if s.Total == 0 {
		return s
	}

	for _, c := range classes {
		if c.IsActive {
			s.Active++
		}
		s.TotalCapacity += c.Capacity
		s.WeeklySessions += len(c.Schedule)
	}

	s.AvgCapacity = int(math.Round(float64(s.TotalCapacity) / float64(s.Total)))
	return s
}
