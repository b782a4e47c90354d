// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DashboardStats is the aggregate report built over the whole entry corpus
// (or over one user's entries for the per-user report). Every value is
// recomputed on each request.
type DashboardStats struct {
	TotalUsers           int     `json:"total_users"`
	TotalFuelEntries     int     `json:"total_fuel_entries"`
	TotalFuelCost        float64 `json:"total_fuel_cost"`
	TotalLiters          float64 `json:"total_liters"`
	AveragePricePerLiter float64 `json:"average_price_per_liter"`

	// SkippedEntries counts stored entries that could not be decoded and were
	// left out of every aggregate.
	SkippedEntries int `json:"skipped_entries"`

	UsersWithMostEntries  []UserEntryCount        `json:"users_with_most_entries"`
	MostExpensiveEntries  []FuelEntry             `json:"most_expensive_entries"`
	RecentEntries         []FuelEntry             `json:"recent_entries"`
	MonthlyStats          []MonthlyStats          `json:"monthly_stats"`
	UserRegistrationStats []UserRegistrationStats `json:"user_registration_stats"`

	UsagePatterns       UsagePatterns       `json:"usage_patterns"`
	EfficiencyAnalytics EfficiencyAnalytics `json:"efficiency_analytics"`
	CostAnalytics       CostAnalytics       `json:"cost_analytics"`
	BehavioralAnalytics BehavioralAnalytics `json:"behavioral_analytics"`
	PredictiveAnalytics PredictiveAnalytics `json:"predictive_analytics"`

	GeneratedAt time.Time `json:"generated_at"`
}

// UserEntryCount is one row of the "users with most entries" ranking.
type UserEntryCount struct {
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	EntryCount  int     `json:"entry_count"`
	TotalCost   float64 `json:"total_cost"`
	TotalLiters float64 `json:"total_liters"`
}

// MonthlyStats aggregates the entries of one calendar month.
type MonthlyStats struct {
	Year         int     `json:"year"`
	Month        string  `json:"month"`
	EntryCount   int     `json:"entry_count"`
	TotalCost    float64 `json:"total_cost"`
	TotalLiters  float64 `json:"total_liters"`
	AveragePrice float64 `json:"average_price"`
}

// UserRegistrationStats counts the sign-ups of one calendar month.
type UserRegistrationStats struct {
	Year     int    `json:"year"`
	Month    string `json:"month"`
	NewUsers int    `json:"new_users"`
}

// UsagePatterns groups the weekday and fill-up size breakdowns.
type UsagePatterns struct {
	WeeklyPatterns []WeeklyPattern `json:"weekly_patterns"`
	FillUpPatterns FillUpPatterns  `json:"fill_up_patterns"`
}

// WeeklyPattern aggregates the entries recorded on one weekday.
type WeeklyPattern struct {
	Day         string  `json:"day"`
	EntryCount  int     `json:"entry_count"`
	AverageCost float64 `json:"average_cost"`
	TotalLiters float64 `json:"total_liters"`
}

// FillUpPatterns buckets entries by volume: small below 10 liters, large
// above 30, medium in between (bounds inclusive).
type FillUpPatterns struct {
	SmallFillUps      int     `json:"small_fillups"`
	MediumFillUps     int     `json:"medium_fillups"`
	LargeFillUps      int     `json:"large_fillups"`
	AverageFillUpSize float64 `json:"average_fillup_size"`
}

// EfficiencyAnalytics ranks users by the inverse of their average fill-up
// volume and summarizes odometer data.
type EfficiencyAnalytics struct {
	MostEfficientUsers  []UserEfficiency  `json:"most_efficient_users"`
	LeastEfficientUsers []UserEfficiency  `json:"least_efficient_users"`
	OdometerAnalytics   OdometerAnalytics `json:"odometer_analytics"`
}

// UserEfficiency describes one user's fill-up behaviour. EfficiencyScore is
// 100 divided by the average liters per entry, a proxy rather than a true
// distance-based consumption figure.
type UserEfficiency struct {
	UserID                string   `json:"user_id"`
	Email                 string   `json:"email"`
	EntryCount            int      `json:"entry_count"`
	TotalLiters           float64  `json:"total_liters"`
	AverageLitersPerEntry float64  `json:"average_liters_per_entry"`
	EfficiencyScore       float64  `json:"efficiency_score"`
	DistanceCovered       *float64 `json:"distance_covered"`
}

// OdometerAnalytics summarizes distances derived from odometer readings.
// Ratio fields are nil when their denominator is zero.
type OdometerAnalytics struct {
	UsersWithOdometer       int      `json:"users_with_odometer"`
	TotalDistance           float64  `json:"total_distance"`
	AverageDistancePerEntry *float64 `json:"average_distance_per_entry"`
	FuelPerKm               *float64 `json:"fuel_per_km"`
}

// CostAnalytics describes how money is spent across the corpus.
type CostAnalytics struct {
	CostDistribution   CostDistribution      `json:"cost_distribution"`
	TopSpenders        []UserSpending        `json:"top_spenders"`
	AverageCostPerUser float64               `json:"average_cost_per_user"`
	SpendingTrends     Unimplemented[string] `json:"spending_trends"`
	BudgetAnalysis     BudgetAnalysis        `json:"budget_analysis"`
}

// CostDistribution buckets entries by total cost: low below 50, high above
// 150, medium in between (bounds inclusive).
type CostDistribution struct {
	LowCost    CostBucket `json:"low_cost"`
	MediumCost CostBucket `json:"medium_cost"`
	HighCost   CostBucket `json:"high_cost"`
}

// CostBucket is one cost range with its share of all entries.
type CostBucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// UserSpending is one row of the top spenders ranking.
type UserSpending struct {
	UserID       string  `json:"user_id"`
	Email        string  `json:"email"`
	TotalSpent   float64 `json:"total_spent"`
	AverageSpent float64 `json:"average_spent"`
	EntryCount   int     `json:"entry_count"`
}

// BudgetAnalysis holds budget indicators that are not derived from data yet.
type BudgetAnalysis struct {
	SpendingVolatility   Unimplemented[float64] `json:"spending_volatility"`
	HighestSpendingMonth Unimplemented[string]  `json:"highest_spending_month"`
	LowestSpendingMonth  Unimplemented[string]  `json:"lowest_spending_month"`
}

// BehavioralAnalytics describes how actively users log their fill-ups.
type BehavioralAnalytics struct {
	MostActiveUsers   []UserActivity                   `json:"most_active_users"`
	LeastActiveUsers  []UserActivity                   `json:"least_active_users"`
	OdometerUsageRate float64                          `json:"odometer_usage_rate"`
	EngagementMetrics Unimplemented[EngagementMetrics] `json:"engagement_metrics"`
	RetentionAnalysis Unimplemented[RetentionAnalysis] `json:"retention_analysis"`
	UserSegments      Unimplemented[UserSegments]      `json:"user_segments"`
}

// UserActivity summarizes one user's logging activity. LastActivity is a
// YYYY-MM-DD date or "Never".
type UserActivity struct {
	UserID               string  `json:"user_id"`
	Email                string  `json:"email"`
	EntryCount           int     `json:"entry_count"`
	DaysActive           int     `json:"days_active"`
	AverageEntriesPerDay float64 `json:"average_entries_per_day"`
	LastActivity         string  `json:"last_activity"`
}

type EngagementMetrics struct {
	EngagementScore       float64 `json:"engagement_score"`
	AverageSessionMinutes float64 `json:"average_session_minutes"`
}

type RetentionAnalysis struct {
	Day30Retention float64 `json:"day_30_retention"`
	Day60Retention float64 `json:"day_60_retention"`
	Day90Retention float64 `json:"day_90_retention"`
}

// UserSegments holds the percentage of users in each activity segment.
type UserSegments struct {
	Casual  float64 `json:"casual"`
	Regular float64 `json:"regular"`
	Power   float64 `json:"power"`
}

// PredictiveAnalytics holds six-month linear extrapolations.
type PredictiveAnalytics struct {
	PriceForecast       []PriceForecast       `json:"price_forecast"`
	ConsumptionForecast []ConsumptionForecast `json:"consumption_forecast"`
	UserGrowthForecast  []UserGrowthForecast  `json:"user_growth_forecast"`
	RevenueProjections  RevenueProjections    `json:"revenue_projections"`
	PriceTrends         PriceTrends           `json:"price_trends"`
}

type PriceForecast struct {
	Month          string  `json:"month"`
	PredictedPrice float64 `json:"predicted_price"`
}

type ConsumptionForecast struct {
	Month                string  `json:"month"`
	PredictedConsumption float64 `json:"predicted_consumption"`
	PredictedEntries     float64 `json:"predicted_entries"`
}

type UserGrowthForecast struct {
	Month          string `json:"month"`
	PredictedUsers int    `json:"predicted_users"`
}

type RevenueProjections struct {
	NextMonth   float64 `json:"next_month"`
	NextQuarter float64 `json:"next_quarter"`
	NextYear    float64 `json:"next_year"`
}

// PriceTrends describes the spread of price per liter over all entries.
// Volatility is the coefficient of variation in percent.
type PriceTrends struct {
	Volatility  float64 `json:"volatility"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	PriceSpread float64 `json:"price_spread"`
}
