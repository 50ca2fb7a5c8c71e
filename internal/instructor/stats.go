package instructor

import "math"

type Stats struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	AvgRating     float64 `json:"avg_rating"`
	AvgExperience float64 `json:"avg_experience"`
}

// ComputeStats averages rating and experience over the collection, each
// rounded to one decimal. An empty collection yields zeros.
func ComputeStats(instructors []Instructor) Stats {
	s := Stats{Total: len(instructors)}
	if s.Total == 0 {
		return s
	}

	var ratingSum, expSum float64
	for _, i := range instructors {
		if i.Status == StatusActive {
			s.Active++
		}
		ratingSum += i.Rating
		expSum += float64(i.Experience)
	}

	s.AvgRating = round1(ratingSum / float64(s.Total))
	s.AvgExperience = round1(expSum / float64(s.Total))
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
