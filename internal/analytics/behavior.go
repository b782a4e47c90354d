package analytics

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-fuel-keeper/models"
)

const (
	lastActivityLayout = "2006-01-02"
	neverActive        = "Never"
)

// behavioralAnalytics ranks every user by entry count. As with efficiency,
// the least active list is the reversed ranking and overlaps the most active
// one when there are fewer than twenty users.
func behavioralAnalytics(c *corpus) models.BehavioralAnalytics {
	activity := make([]models.UserActivity, 0, len(c.users))
	for _, user := range c.users {
		activity = append(activity, userActivity(user, c.userEntries(user.ID)))
	}

	slices.SortStableFunc(activity, func(a, b models.UserActivity) int {
		return cmp.Compare(b.EntryCount, a.EntryCount)
	})

	return models.BehavioralAnalytics{
		MostActiveUsers:   slices.Clone(top(activity, topListSize)),
		LeastActiveUsers:  top(reversed(activity), topListSize),
		OdometerUsageRate: odometerUsageRate(c.entries),
		EngagementMetrics: engagementPlaceholder(),
		RetentionAnalysis: retentionPlaceholder(),
		UserSegments:      segmentsPlaceholder(),
	}
}

func userActivity(user models.User, entries []models.FuelEntry) models.UserActivity {
	activity := models.UserActivity{
		UserID:       user.ID,
		Email:        user.Email,
		EntryCount:   len(entries),
		DaysActive:   1,
		LastActivity: neverActive,
	}
	if len(entries) == 0 {
		return activity
	}

	earliest, latest := entries[0].DateTime, entries[0].DateTime
	for _, entry := range entries[1:] {
		if entry.DateTime.Before(earliest) {
			earliest = entry.DateTime
		}
		if entry.DateTime.After(latest) {
			latest = entry.DateTime
		}
	}

	activity.DaysActive = max(1, int(latest.Sub(earliest).Hours()/24))
	activity.AverageEntriesPerDay = float64(activity.EntryCount) / float64(activity.DaysActive)
	activity.LastActivity = latest.UTC().Format(lastActivityLayout)

	return activity
}

// odometerUsageRate is the share of all entries, in percent, that carry an
// odometer reading.
func odometerUsageRate(entries []models.FuelEntry) float64 {
	var withReading int
	for _, entry := range entries {
		if entry.HasOdometer() {
			withReading++
		}
	}
	return percentage(withReading, len(entries))
}
