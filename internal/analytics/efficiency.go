package analytics

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-fuel-keeper/models"
)

// efficiencyListSize is the length of the most and least efficient lists.
const efficiencyListSize = 5

// efficiencyScore is an inverse proxy: fewer liters per fill-up means a
// higher score. A zero average scores 0.
func efficiencyScore(averageLiters float64) float64 {
	if averageLiters == 0 {
		return 0
	}
	return 100 / averageLiters
}

// efficiencyAnalytics ranks users that have at least one entry. The least
// efficient list is the reversed ranking cut to the same size, so with fewer
// than twice efficiencyListSize users both lists share members.
func efficiencyAnalytics(c *corpus) models.EfficiencyAnalytics {
	ranking := make([]models.UserEfficiency, 0, len(c.users))
	odometer := models.OdometerAnalytics{}

	for _, user := range c.users {
		entries := c.userEntries(user.ID)
		if len(entries) == 0 {
			continue
		}

		row := models.UserEfficiency{
			UserID:     user.ID,
			Email:      user.Email,
			EntryCount: len(entries),
		}
		for _, entry := range entries {
			row.TotalLiters += entry.Liters
		}
		row.AverageLitersPerEntry = row.TotalLiters / float64(row.EntryCount)
		row.EfficiencyScore = efficiencyScore(row.AverageLitersPerEntry)

		if distance, deltas := distanceCovered(entries); deltas > 0 {
			row.DistanceCovered = &distance
			odometer.UsersWithOdometer++
			odometer.TotalDistance += distance
		}

		ranking = append(ranking, row)
	}

	slices.SortStableFunc(ranking, func(a, b models.UserEfficiency) int {
		return cmp.Compare(b.EfficiencyScore, a.EfficiencyScore)
	})

	completeOdometerAnalytics(&odometer, c.entries)

	return models.EfficiencyAnalytics{
		MostEfficientUsers:  slices.Clone(top(ranking, efficiencyListSize)),
		LeastEfficientUsers: top(reversed(ranking), efficiencyListSize),
		OdometerAnalytics:   odometer,
	}
}

// distanceCovered walks one user's entries in chronological order and sums
// the increase between consecutive odometer readings. Pairs with a missing
// reading or a non-increasing one are ignored. deltas is the number of pairs
// that contributed.
func distanceCovered(entries []models.FuelEntry) (distance float64, deltas int) {
	chronological := slices.Clone(entries)
	slices.SortStableFunc(chronological, func(a, b models.FuelEntry) int {
		return a.DateTime.Compare(b.DateTime)
	})

	for i := 1; i < len(chronological); i++ {
		prev, curr := chronological[i-1].OdometerReading, chronological[i].OdometerReading
		if prev == nil || curr == nil || *curr <= *prev {
			continue
		}
		distance += *curr - *prev
		deltas++
	}

	return distance, deltas
}

// completeOdometerAnalytics derives the corpus-wide ratios. fuel_per_km is
// the corpus average liters per entry over the average distance per entry
// with a reading, a coarse figure rather than a per-user consumption.
func completeOdometerAnalytics(odometer *models.OdometerAnalytics, entries []models.FuelEntry) {
	var (
		withReading int
		liters      float64
	)
	for _, entry := range entries {
		if entry.HasOdometer() {
			withReading++
		}
		liters += entry.Liters
	}

	if withReading == 0 {
		return
	}

	averageDistance := odometer.TotalDistance / float64(withReading)
	odometer.AverageDistancePerEntry = &averageDistance

	if averageDistance == 0 || len(entries) == 0 {
		return
	}

	fuelPerKm := (liters / float64(len(entries))) / averageDistance
	odometer.FuelPerKm = &fuelPerKm
}
