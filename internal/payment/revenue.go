package payment

import (
	"math"
	"sort"
)

type MonthRevenue struct {
	Month        string `json:"month"`
	RevenueCents int64  `json:"revenue_cents"`
	Payments     int    `json:"payments"`
}

type RevenueStats struct {
	TotalCents     int64          `json:"total_cents"`
	CompletedCents int64          `json:"completed_cents"`
	PendingCents   int64          `json:"pending_cents"`
	Monthly        []MonthRevenue `json:"monthly"`
	GrowthPercent  float64        `json:"growth_percent"`
}

// MonthlyRevenue buckets completed payments by calendar month, oldest
// first. Pending and failed payments do not count as revenue.
func MonthlyRevenue(payments []Payment) []MonthRevenue {
	buckets := make(map[string]*MonthRevenue)
	for _, p := range payments {
		if p.Status != StatusCompleted {
			continue
		}
		month := p.PaidAt.Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &MonthRevenue{Month: month}
			buckets[month] = b
		}
		b.RevenueCents += p.AmountCents
		b.Payments++
	}

	monthly := make([]MonthRevenue, 0, len(buckets))
	for _, b := range buckets {
		monthly = append(monthly, *b)
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })
	return monthly
}

// Growth is the percent change from previous to current, rounded to two
// decimals. With no previous revenue there is nothing to compare
// against, so growth is reported as zero.
func Growth(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	pct := float64(current-previous) / float64(previous) * 100
	return math.Round(pct*100) / 100
}

// ComputeRevenueStats summarizes payments for the admin financial view.
// Growth compares the two most recent months with completed revenue.
func ComputeRevenueStats(payments []Payment) RevenueStats {
	stats := RevenueStats{Monthly: MonthlyRevenue(payments)}

	for _, p := range payments {
		switch p.Status {
		case StatusCompleted:
			stats.TotalCents += p.AmountCents
			stats.CompletedCents += p.AmountCents
		case StatusPending:
			stats.PendingCents += p.AmountCents
		}
	}

	if n := len(stats.Monthly); n >= 2 {
		stats.GrowthPercent = Growth(stats.Monthly[n-1].RevenueCents, stats.Monthly[n-2].RevenueCents)
	}

	return stats
}
