package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/models"
)

const (
	forecastMonths = 6

	fallbackBasePrice       = 120.0
	fallbackBaseConsumption = 100.0

	monthlyPriceGrowth       = 0.02
	monthlyConsumptionGrowth = 0.05
	litersPerPredictedEntry  = 10.0

	nextMonthRevenueFactor   = 1.1
	nextQuarterRevenueFactor = 3.2
	nextYearRevenueFactor    = 12.5
)

// predictiveAnalytics extrapolates from the most recent month with data.
// Forecast months are counted from the month containing now.
func predictiveAnalytics(c *corpus, monthly monthBuckets, now time.Time) models.PredictiveAnalytics {
	basePrice, baseConsumption := fallbackBasePrice, fallbackBaseConsumption
	if latest, ok := monthly.latest(); ok {
		basePrice, baseConsumption = latest.averagePrice(), latest.liters
	}

	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	currentUsers := len(c.users)
	userStep := max(1, currentUsers/10)

	out := models.PredictiveAnalytics{
		PriceForecast:       make([]models.PriceForecast, 0, forecastMonths),
		ConsumptionForecast: make([]models.ConsumptionForecast, 0, forecastMonths),
		UserGrowthForecast:  make([]models.UserGrowthForecast, 0, forecastMonths),
	}

	for i := 1; i <= forecastMonths; i++ {
		label := forecastLabel(start.AddDate(0, i, 0))
		step := float64(i)

		consumption := baseConsumption * (1 + monthlyConsumptionGrowth*step)

		out.PriceForecast = append(out.PriceForecast, models.PriceForecast{
			Month:          label,
			PredictedPrice: basePrice * (1 + monthlyPriceGrowth*step),
		})
		out.ConsumptionForecast = append(out.ConsumptionForecast, models.ConsumptionForecast{
			Month:                label,
			PredictedConsumption: consumption,
			PredictedEntries:     consumption / litersPerPredictedEntry,
		})
		out.UserGrowthForecast = append(out.UserGrowthForecast, models.UserGrowthForecast{
			Month:          label,
			PredictedUsers: currentUsers + userStep*i,
		})
	}

	revenue := basePrice * baseConsumption
	out.RevenueProjections = models.RevenueProjections{
		NextMonth:   revenue * nextMonthRevenueFactor,
		NextQuarter: revenue * nextQuarterRevenueFactor,
		NextYear:    revenue * nextYearRevenueFactor,
	}
	out.PriceTrends = priceTrends(c.entries)

	return out
}

func forecastLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthName(int(t.Month())), t.Year())
}

// priceTrends describes price per liter over all entries. Volatility is the
// population standard deviation relative to the mean, in percent.
func priceTrends(entries []models.FuelEntry) models.PriceTrends {
	if len(entries) == 0 {
		return models.PriceTrends{}
	}

	minPrice, maxPrice := entries[0].PricePerLiter, entries[0].PricePerLiter
	var sum float64
	for _, entry := range entries {
		minPrice = min(minPrice, entry.PricePerLiter)
		maxPrice = max(maxPrice, entry.PricePerLiter)
		sum += entry.PricePerLiter
	}
	mean := sum / float64(len(entries))

	var variance float64
	for _, entry := range entries {
		d := entry.PricePerLiter - mean
		variance += d * d
	}
	variance /= float64(len(entries))

	return models.PriceTrends{
		Volatility:  ratio(math.Sqrt(variance), mean) * 100,
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		PriceSpread: ratio(maxPrice-minPrice, minPrice) * 100,
	}
}
