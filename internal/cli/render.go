package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Align(lipgloss.Right)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	borderStyle  = lipgloss.NewStyle().Faint(true)
	entryHeaders = []string{"ID", "Date", "Liters", "Price/L", "Total", "Odometer"}
)

const displayTimeLayout = "2006-01-02 15:04"

// newTable returns a bordered table whose columns listed in numeric are
// right-aligned.
func newTable(headers []string, numeric ...int) *table.Table {
	right := make(map[int]bool, len(numeric))
	for _, col := range numeric {
		right[col] = true
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case right[col]:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

func renderEntries(w io.Writer, entries []models.FuelEntry) error {
	_, err := fmt.Fprintln(w, entriesTable(entries))
	return err
}

func entryRow(e models.FuelEntry) []string {
	odometer := "-"
	if e.OdometerReading != nil {
		odometer = formatFloat(*e.OdometerReading, 1)
	}

	return []string{
		e.ID,
		e.DateTime.Local().Format(displayTimeLayout),
		formatFloat(e.Liters, 2),
		formatFloat(e.PricePerLiter, 3),
		formatFloat(e.TotalCost, 2),
		odometer,
	}
}

// renderReport prints the sections of a report. The user report leaves out
// the sections that only make sense across several users.
func renderReport(w io.Writer, s models.DashboardStats, admin bool) error {
	var b strings.Builder

	section(&b, "Summary", summaryTable(s, admin))

	if admin && len(s.UsersWithMostEntries) > 0 {
		t := newTable([]string{"User", "Entries", "Liters", "Cost"}, 1, 2, 3)
		for _, u := range s.UsersWithMostEntries {
			t.Row(userLabel(u.UserID, u.Email), strconv.Itoa(u.EntryCount),
				formatFloat(u.TotalLiters, 2), formatFloat(u.TotalCost, 2))
		}
		section(&b, "Users with most entries", t.Render())
	}

	if len(s.MonthlyStats) > 0 {
		t := newTable([]string{"Month", "Entries", "Liters", "Cost", "Avg price"}, 1, 2, 3, 4)
		for _, m := range s.MonthlyStats {
			t.Row(fmt.Sprintf("%d %s", m.Year, m.Month), strconv.Itoa(m.EntryCount),
				formatFloat(m.TotalLiters, 2), formatFloat(m.TotalCost, 2), formatFloat(m.AveragePrice, 3))
		}
		section(&b, "Monthly", t.Render())
	}

	if len(s.MostExpensiveEntries) > 0 {
		section(&b, "Most expensive fill-ups", entriesTable(s.MostExpensiveEntries))
	}
	if len(s.RecentEntries) > 0 {
		section(&b, "Recent fill-ups", entriesTable(s.RecentEntries))
	}

	section(&b, "Usage patterns", usageTable(s.UsagePatterns))
	section(&b, "Cost distribution", costTable(s.CostAnalytics))

	if admin && len(s.CostAnalytics.TopSpenders) > 0 {
		t := newTable([]string{"User", "Entries", "Spent", "Avg"}, 1, 2, 3)
		for _, u := range s.CostAnalytics.TopSpenders {
			t.Row(userLabel(u.UserID, u.Email), strconv.Itoa(u.EntryCount),
				formatFloat(u.TotalSpent, 2), formatFloat(u.AverageSpent, 2))
		}
		section(&b, "Top spenders", t.Render())
	}

	section(&b, "Forecast", forecastTable(s.PredictiveAnalytics))

	_, err := io.WriteString(w, b.String())
	return err
}

func summaryTable(s models.DashboardStats, admin bool) string {
	t := newTable([]string{"Metric", "Value"}, 1)
	if admin {
		t.Row("Users", strconv.Itoa(s.TotalUsers))
	}
	t.Row("Fuel entries", strconv.Itoa(s.TotalFuelEntries))
	t.Row("Total cost", formatFloat(s.TotalFuelCost, 2))
	t.Row("Total liters", formatFloat(s.TotalLiters, 2))
	t.Row("Avg price per liter", formatFloat(s.AveragePricePerLiter, 3))
	t.Row("Odometer usage", formatFloat(s.BehavioralAnalytics.OdometerUsageRate, 1)+"%")
	if d := s.EfficiencyAnalytics.OdometerAnalytics.FuelPerKm; d != nil {
		t.Row("Fuel per km", formatFloat(*d, 4))
	}
	if s.SkippedEntries > 0 {
		t.Row("Unreadable entries skipped", strconv.Itoa(s.SkippedEntries))
	}
	t.Row("Generated at", s.GeneratedAt.Local().Format(time.RFC3339))

	return t.Render()
}

func usageTable(u models.UsagePatterns) string {
	t := newTable([]string{"Day", "Entries", "Liters", "Avg cost"}, 1, 2, 3)
	for _, d := range u.WeeklyPatterns {
		t.Row(d.Day, strconv.Itoa(d.EntryCount), formatFloat(d.TotalLiters, 2), formatFloat(d.AverageCost, 2))
	}

	f := u.FillUpPatterns
	sizes := faintStyle.Render(fmt.Sprintf(
		"fill-ups: %d small (<10 L), %d medium, %d large (>30 L), avg %s L",
		f.SmallFillUps, f.MediumFillUps, f.LargeFillUps, formatFloat(f.AverageFillUpSize, 2)))

	return lipgloss.JoinVertical(lipgloss.Left, t.Render(), sizes)
}

func costTable(c models.CostAnalytics) string {
	t := newTable([]string{"Range", "Entries", "Share"}, 1, 2)
	d := c.CostDistribution
	t.Row("low (<50)", strconv.Itoa(d.LowCost.Count), formatFloat(d.LowCost.Percentage, 1)+"%")
	t.Row("medium", strconv.Itoa(d.MediumCost.Count), formatFloat(d.MediumCost.Percentage, 1)+"%")
	t.Row("high (>150)", strconv.Itoa(d.HighCost.Count), formatFloat(d.HighCost.Percentage, 1)+"%")

	return t.Render()
}

func forecastTable(p models.PredictiveAnalytics) string {
	t := newTable([]string{"Month", "Price/L", "Liters", "Entries"}, 1, 2, 3)
	for i, price := range p.PriceForecast {
		liters, entries := "-", "-"
		if i < len(p.ConsumptionForecast) {
			liters = formatFloat(p.ConsumptionForecast[i].PredictedConsumption, 1)
			entries = formatFloat(p.ConsumptionForecast[i].PredictedEntries, 1)
		}
		t.Row(price.Month, formatFloat(price.PredictedPrice, 3), liters, entries)
	}

	r := p.RevenueProjections
	revenue := faintStyle.Render(fmt.Sprintf("projected spend: next month %s, quarter %s, year %s",
		formatFloat(r.NextMonth, 2), formatFloat(r.NextQuarter, 2), formatFloat(r.NextYear, 2)))

	return lipgloss.JoinVertical(lipgloss.Left, t.Render(), revenue)
}

func entriesTable(entries []models.FuelEntry) string {
	t := newTable(entryHeaders, 2, 3, 4, 5)
	for _, e := range entries {
		t.Row(entryRow(e)...)
	}
	return t.Render()
}

func section(b *strings.Builder, title, body string) {
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')
	b.WriteString(body)
	b.WriteByte('\n')
}

func userLabel(userID, email string) string {
	if email == "" {
		return userID
	}
	return email
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
