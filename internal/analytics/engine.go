// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analytics

import (
	"github.com/MKhiriev/go-fuel-keeper/models"
)

// topListSize is the length of every "top" ranking except the efficiency
// lists, which use efficiencyListSize.
const topListSize = 10

// Engine computes dashboard reports.
type Engine struct {
	clock Clock
}

// NewEngine returns an Engine reading time from clock. A nil clock falls
// back to [SystemClock].
func NewEngine(clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}

	return &Engine{clock: clock}
}

// BuildDashboard computes the full report over users and entries. Entries
// whose owner is not in users still count toward corpus-wide figures but
// appear in no per-user ranking.
func (e *Engine) BuildDashboard(users []models.User, entries []models.FuelEntry) models.DashboardStats {
	c := newCorpus(users, entries)
	monthly := aggregateMonths(entries)

	stats := models.DashboardStats{
		TotalUsers:       len(users),
		TotalFuelEntries: len(entries),

		UsersWithMostEntries:  usersWithMostEntries(c),
		MostExpensiveEntries:  mostExpensiveEntries(entries),
		RecentEntries:         recentEntries(entries),
		MonthlyStats:          monthly.stats(),
		UserRegistrationStats: registrationStats(users),

		UsagePatterns: models.UsagePatterns{
			WeeklyPatterns: weeklyPatterns(entries),
			FillUpPatterns: fillUpPatterns(entries),
		},
		EfficiencyAnalytics: efficiencyAnalytics(c),
		CostAnalytics:       costAnalytics(c),
		BehavioralAnalytics: behavioralAnalytics(c),
		PredictiveAnalytics: predictiveAnalytics(c, monthly, e.clock.Now()),

		GeneratedAt: e.clock.Now(),
	}

	stats.TotalFuelCost, stats.TotalLiters, stats.AveragePricePerLiter = totals(entries)

	return stats
}

// corpus indexes the input once so that every section can walk users in
// discovery order together with their entries.
type corpus struct {
	users   []models.User
	entries []models.FuelEntry
	byUser  map[string][]models.FuelEntry
}

func newCorpus(users []models.User, entries []models.FuelEntry) *corpus {
	byUser := make(map[string][]models.FuelEntry, len(users))
	for _, entry := range entries {
		byUser[entry.UserID] = append(byUser[entry.UserID], entry)
	}

	return &corpus{users: users, entries: entries, byUser: byUser}
}

// userEntries returns the entries owned by userID in input order.
func (c *corpus) userEntries(userID string) []models.FuelEntry {
	return c.byUser[userID]
}

func top[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// reversed returns a reversed copy of items.
func reversed[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

// ratio divides a by b and returns 0 when b is zero.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func percentage(part, whole int) float64 {
	return ratio(float64(part), float64(whole)) * 100
}
