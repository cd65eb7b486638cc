// Package aggregate derives dashboard figures from snapshots of the two
// collections. Every function is pure and deterministic: no state, no
// caching, safe to call repeatedly with the same inputs.
package aggregate

import (
	"sort"

	"financaspro/internal/models"
)

// Totals holds the headline sums in centavos. Expense already includes the
// fixed-bill total.
type Totals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Fixed   int64 `json:"fixed"`
}

// Balance is the dashboard's headline balance: income minus all expense,
// fixed bills included. The advice prompt uses a different balance that
// excludes fixed bills; the two are intentionally kept apart.
func (t Totals) Balance() int64 {
	return t.Income - t.Expense
}

// CategoryAmount is one slice of the expense breakdown chart.
type CategoryAmount struct {
	Name  models.Category `json:"name"`
	Value int64           `json:"value"`
	Color string          `json:"color"`
}

// Composition splits total expense into its fixed and variable parts.
type Composition struct {
	Fixed    int64 `json:"fixed"`
	Variable int64 `json:"variable"`
	Total    int64 `json:"total"`
}

// MonthlySummary aggregates income and expense for one calendar month.
type MonthlySummary struct {
	Month   string `json:"month"` // YYYY-MM
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// ComputeTotals sums income and expense over the transactions and folds the
// full fixed-bill total into expense. Payment status does not affect the
// fixed total; it only matters for presentation.
func ComputeTotals(transactions []models.Transaction, fixedBills []models.FixedBill) Totals {
	var totals Totals
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeIncome {
			totals.Income += tx.Amount
		} else {
			totals.Expense += tx.Amount
		}
	}
	for _, bill := range fixedBills {
		totals.Fixed += bill.Amount
	}
	totals.Expense += totals.Fixed
	return totals
}

// ComputeCategoryBreakdown buckets expense transactions by category. Only
// categories that actually carry expense appear. When any fixed bills
// exist, their total is added into the "Moradia" bucket on top of whatever
// the transactions already put there; fixed bills carry no category of
// their own and are assumed housing-related for the chart.
func ComputeCategoryBreakdown(transactions []models.Transaction, fixedBills []models.FixedBill) []CategoryAmount {
	buckets := make(map[models.Category]int64)
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeExpense {
			buckets[tx.Category] += tx.Amount
		}
	}

	if len(fixedBills) > 0 {
		var fixedTotal int64
		for _, bill := range fixedBills {
			fixedTotal += bill.Amount
		}
		buckets[models.CategoryMoradia] += fixedTotal
	}

	// Emit in the fixed category order so the chart is stable across calls.
	breakdown := make([]CategoryAmount, 0, len(buckets))
	for _, category := range models.Categories {
		if value, ok := buckets[category]; ok {
			breakdown = append(breakdown, CategoryAmount{
				Name:  category,
				Value: value,
				Color: models.CategoryColors[category],
			})
		}
	}
	return breakdown
}

// ComputeComposition derives the fixed/variable split purely from totals,
// without recomputing anything from the raw collections.
func ComputeComposition(totals Totals) Composition {
	return Composition{
		Fixed:    totals.Fixed,
		Variable: totals.Expense - totals.Fixed,
		Total:    totals.Expense,
	}
}

// ComputeMonthlySummaries groups transaction income and expense by calendar
// month, ascending. Fixed bills are excluded: they describe obligations,
// not dated cash flow.
func ComputeMonthlySummaries(transactions []models.Transaction) []MonthlySummary {
	byMonth := make(map[string]*MonthlySummary)
	for _, tx := range transactions {
		month := tx.Date.Format("2006-01")
		summary, ok := byMonth[month]
		if !ok {
			summary = &MonthlySummary{Month: month}
			byMonth[month] = summary
		}
		if tx.Type == models.TransactionTypeIncome {
			summary.Income += tx.Amount
		} else {
			summary.Expense += tx.Amount
		}
	}

	summaries := make([]MonthlySummary, 0, len(byMonth))
	for _, summary := range byMonth {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Month < summaries[j].Month
	})
	return summaries
}
