package member

import "math"

type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Inactive  int `json:"inactive"`
	Premium   int `json:"premium"`
	Basic     int `json:"basic"`
	Retention int `json:"retention"`
}

// ComputeStats aggregates membership counts over a snapshot of members.
// Retention is round(active/total*100) and 0 for an empty collection.
func ComputeStats(members []Member) Stats {
	s := Stats{Total: len(members)}

	for _, m := range members {
		if m.MembershipStatus == StatusActive {
			s.Active++
		}
		switch m.MembershipPlan {
		case PlanPremium:
			s.Premium++
		case PlanBasic:
			s.Basic++
		}
	}

	s.Inactive = s.Total - s.Active
	if s.Total > 0 {
		s.Retention = int(math.Round(float64(s.Active) / float64(s.Total) * 100))
	}

	return s
}
