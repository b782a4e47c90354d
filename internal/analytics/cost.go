package analytics

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-fuel-keeper/models"
)

// Cost bounds. Both bounds belong to the medium bucket.
const (
	lowCostLimit  = 50.0
	highCostLimit = 150.0
)

func costAnalytics(c *corpus) models.CostAnalytics {
	spenders := topSpenders(c)

	var totalCost float64
	for _, entry := range c.entries {
		totalCost += entry.TotalCost
	}

	return models.CostAnalytics{
		CostDistribution: costDistribution(c.entries),
		TopSpenders:      spenders,
		// Divides by the number of retained spenders, not by all users, so
		// with more than ten spenders this overstates the per-user figure.
		AverageCostPerUser: ratio(totalCost, float64(len(spenders))),
		SpendingTrends:     spendingTrendPlaceholder(),
		BudgetAnalysis:     budgetAnalysisPlaceholder(),
	}
}

func costDistribution(entries []models.FuelEntry) models.CostDistribution {
	var low, medium, high int
	for _, entry := range entries {
		switch {
		case entry.TotalCost < lowCostLimit:
			low++
		case entry.TotalCost > highCostLimit:
			high++
		default:
			medium++
		}
	}

	total := len(entries)
	return models.CostDistribution{
		LowCost:    models.CostBucket{Count: low, Percentage: percentage(low, total)},
		MediumCost: models.CostBucket{Count: medium, Percentage: percentage(medium, total)},
		HighCost:   models.CostBucket{Count: high, Percentage: percentage(high, total)},
	}
}

// topSpenders ranks users with at least one entry by total spend.
func topSpenders(c *corpus) []models.UserSpending {
	spenders := make([]models.UserSpending, 0, len(c.users))
	for _, user := range c.users {
		entries := c.userEntries(user.ID)
		if len(entries) == 0 {
			continue
		}

		row := models.UserSpending{UserID: user.ID, Email: user.Email, EntryCount: len(entries)}
		for _, entry := range entries {
			row.TotalSpent += entry.TotalCost
		}
		row.AverageSpent = row.TotalSpent / float64(row.EntryCount)

		spenders = append(spenders, row)
	}

	slices.SortStableFunc(spenders, func(a, b models.UserSpending) int {
		return cmp.Compare(b.TotalSpent, a.TotalSpent)
	})

	return top(spenders, topListSize)
}
