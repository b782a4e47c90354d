package analytics

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-fuel-keeper/models"
)

// totals returns the summed cost and volume of entries and the resulting
// average price per liter (0 when no liters were recorded).
func totals(entries []models.FuelEntry) (cost, liters, averagePrice float64) {
	for _, entry := range entries {
		cost += entry.TotalCost
		liters += entry.Liters
	}

	return cost, liters, ratio(cost, liters)
}

// usersWithMostEntries ranks every user, including users without entries,
// by entry count. Ties keep user discovery order.
func usersWithMostEntries(c *corpus) []models.UserEntryCount {
	counts := make([]models.UserEntryCount, 0, len(c.users))
	for _, user := range c.users {
		row := models.UserEntryCount{UserID: user.ID, Email: user.Email}
		for _, entry := range c.userEntries(user.ID) {
			row.EntryCount++
			row.TotalCost += entry.TotalCost
			row.TotalLiters += entry.Liters
		}
		counts = append(counts, row)
	}

	slices.SortStableFunc(counts, func(a, b models.UserEntryCount) int {
		return cmp.Compare(b.EntryCount, a.EntryCount)
	})

	return top(counts, topListSize)
}

func mostExpensiveEntries(entries []models.FuelEntry) []models.FuelEntry {
	sorted := slices.Clone(entries)
	if sorted == nil {
		sorted = []models.FuelEntry{}
	}

	slices.SortStableFunc(sorted, func(a, b models.FuelEntry) int {
		return cmp.Compare(b.TotalCost, a.TotalCost)
	})

	return top(sorted, topListSize)
}

func recentEntries(entries []models.FuelEntry) []models.FuelEntry {
	sorted := slices.Clone(entries)
	if sorted == nil {
		sorted = []models.FuelEntry{}
	}

	slices.SortStableFunc(sorted, func(a, b models.FuelEntry) int {
		return b.DateTime.Compare(a.DateTime)
	})

	return top(sorted, topListSize)
}
