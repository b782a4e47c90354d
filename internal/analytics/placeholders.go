package analytics

import "github.com/MKhiriev/go-fuel-keeper/models"

// Fixed values reported where no statistic is computed yet. They always
// travel inside models.Unimplemented.
const (
	placeholderEngagementScore       = 75.0
	placeholderAverageSessionMinutes = 12.5

	placeholderDay30Retention = 80.0
	placeholderDay60Retention = 65.0
	placeholderDay90Retention = 50.0

	placeholderCasualSegment  = 40.0
	placeholderRegularSegment = 45.0
	placeholderPowerSegment   = 15.0

	placeholderSpendingTrend        = "stable"
	placeholderSpendingVolatility   = 15.0
	placeholderHighestSpendingMonth = "December"
	placeholderLowestSpendingMonth  = "February"
)

func engagementPlaceholder() models.Unimplemented[models.EngagementMetrics] {
	return models.NotComputed(models.EngagementMetrics{
		EngagementScore:       placeholderEngagementScore,
		AverageSessionMinutes: placeholderAverageSessionMinutes,
	})
}

func retentionPlaceholder() models.Unimplemented[models.RetentionAnalysis] {
	return models.NotComputed(models.RetentionAnalysis{
		Day30Retention: placeholderDay30Retention,
		Day60Retention: placeholderDay60Retention,
		Day90Retention: placeholderDay90Retention,
	})
}

func segmentsPlaceholder() models.Unimplemented[models.UserSegments] {
	return models.NotComputed(models.UserSegments{
		Casual:  placeholderCasualSegment,
		Regular: placeholderRegularSegment,
		Power:   placeholderPowerSegment,
	})
}

func spendingTrendPlaceholder() models.Unimplemented[string] {
	return models.NotComputed(placeholderSpendingTrend)
}

func budgetAnalysisPlaceholder() models.BudgetAnalysis {
	return models.BudgetAnalysis{
		SpendingVolatility:   models.NotComputed(placeholderSpendingVolatility),
		HighestSpendingMonth: models.NotComputed(placeholderHighestSpendingMonth),
		LowestSpendingMonth:  models.NotComputed(placeholderLowestSpendingMonth),
	}
}
