// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/models"
)

// Fill-up size bounds in liters. Both bounds belong to the medium bucket.
const (
	smallFillUpLimit = 10.0
	largeFillUpLimit = 30.0
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// weekdays lists the days in report order, Monday first.
var weekdays = [...]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// monthName returns the English name of month m (1-based) or "Unknown".
func monthName(m int) string {
	if m < 1 || m > len(monthNames) {
		return "Unknown"
	}
	return monthNames[m-1]
}

type monthKey struct {
	year  int
	month int
}

func monthKeyOf(t time.Time) monthKey {
	t = t.UTC()
	return monthKey{year: t.Year(), month: int(t.Month())}
}

func (k monthKey) before(other monthKey) bool {
	if k.year != other.year {
		return k.year < other.year
	}
	return k.month < other.month
}

type monthAccumulator struct {
	count  int
	cost   float64
	liters float64
}

func (a monthAccumulator) averagePrice() float64 {
	return ratio(a.cost, a.liters)
}

// monthBuckets groups entries by calendar month.
type monthBuckets map[monthKey]*monthAccumulator

func aggregateMonths(entries []models.FuelEntry) monthBuckets {
	buckets := make(monthBuckets)
	for _, entry := range entries {
		key := monthKeyOf(entry.DateTime)
		acc, ok := buckets[key]
		if !ok {
			acc = &monthAccumulator{}
			buckets[key] = acc
		}
		acc.count++
		acc.cost += entry.TotalCost
		acc.liters += entry.Liters
	}

	return buckets
}

// latest returns the chronologically most recent bucket.
func (b monthBuckets) latest() (monthAccumulator, bool) {
	var (
		latestKey monthKey
		found     bool
	)
	for key := range b {
		if !found || latestKey.before(key) {
			latestKey = key
			found = true
		}
	}
	if !found {
		return monthAccumulator{}, false
	}

	return *b[latestKey], true
}

// stats renders the buckets ordered by year and then month NAME, both
// descending. Names compare lexicographically, so within a year "September"
// comes before "March" and "May" before "June".
func (b monthBuckets) stats() []models.MonthlyStats {
	out := make([]models.MonthlyStats, 0, len(b))
	for key, acc := range b {
		out = append(out, models.MonthlyStats{
			Year:         key.year,
			Month:        monthName(key.month),
			EntryCount:   acc.count,
			TotalCost:    acc.cost,
			TotalLiters:  acc.liters,
			AveragePrice: acc.averagePrice(),
		})
	}

	slices.SortFunc(out, func(a, b models.MonthlyStats) int {
		return compareYearMonthNameDesc(a.Year, a.Month, b.Year, b.Month)
	})

	return out
}

// registrationStats counts sign-ups per calendar month with the same
// ordering as [monthBuckets.stats].
func registrationStats(users []models.User) []models.UserRegistrationStats {
	counts := make(map[monthKey]int)
	for _, user := range users {
		counts[monthKeyOf(user.CreatedAt)]++
	}

	out := make([]models.UserRegistrationStats, 0, len(counts))
	for key, count := range counts {
		out = append(out, models.UserRegistrationStats{
			Year:     key.year,
			Month:    monthName(key.month),
			NewUsers: count,
		})
	}

	slices.SortFunc(out, func(a, b models.UserRegistrationStats) int {
		return compareYearMonthNameDesc(a.Year, a.Month, b.Year, b.Month)
	})

	return out
}

func compareYearMonthNameDesc(yearA int, monthA string, yearB int, monthB string) int {
	if c := cmp.Compare(yearB, yearA); c != 0 {
		return c
	}
	return cmp.Compare(monthB, monthA)
}

func weeklyPatterns(entries []models.FuelEntry) []models.WeeklyPattern {
	out := make([]models.WeeklyPattern, 0, len(weekdays))
	for _, day := range weekdays {
		pattern := models.WeeklyPattern{Day: day.String()}

		var cost float64
		for _, entry := range entries {
			if entry.DateTime.UTC().Weekday() != day {
				continue
			}
			pattern.EntryCount++
			cost += entry.TotalCost
			pattern.TotalLiters += entry.Liters
		}
		pattern.AverageCost = ratio(cost, float64(pattern.EntryCount))

		out = append(out, pattern)
	}

	return out
}

func fillUpPatterns(entries []models.FuelEntry) models.FillUpPatterns {
	var (
		patterns models.FillUpPatterns
		liters   float64
	)
	for _, entry := range entries {
		switch {
		case entry.Liters < smallFillUpLimit:
			patterns.SmallFillUps++
		case entry.Liters > largeFillUpLimit:
			patterns.LargeFillUps++
		default:
			patterns.MediumFillUps++
		}
		liters += entry.Liters
	}
	patterns.AverageFillUpSize = ratio(liters, float64(len(entries)))

	return patterns
}
