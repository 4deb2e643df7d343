// Package report computes derived views over the ledger collections. Every
// function is pure: it reads the slices it is handed and never mutates them.
package report

import (
	"sort"

	"github.com/pocketledger/pocketledger/internal/model"
)

// Totals summarizes a transaction collection.
type Totals struct {
	Income   float64
	Expenses float64
	Balance  float64
}

// CalculateTotals sums income and expense amounts; Balance is always
// Income minus Expenses.
func CalculateTotals(transactions []model.Transaction) Totals {
	var totals Totals
	for _, t := range transactions {
		switch t.Type {
		case model.TypeIncome:
			totals.Income += t.Amount
		case model.TypeExpense:
			totals.Expenses += t.Amount
		}
	}
	totals.Balance = totals.Income - totals.Expenses
	return totals
}

// CategorySummary is one category's share of total expenses.
type CategorySummary struct {
	Category   model.Category
	Amount     float64
	Percentage float64
}

// ExpensesByCategory groups expense transactions by their embedded category
// id, sums each group and computes its percentage of all expenses. Groups
// come back sorted by descending amount; ties keep first-seen order.
func ExpensesByCategory(transactions []model.Transaction) []CategorySummary {
	var order []string
	byID := make(map[string]*CategorySummary)
	var total float64

	for _, t := range transactions {
		if t.Type != model.TypeExpense {
			continue
		}
		total += t.Amount
		if existing, ok := byID[t.Category.ID]; ok {
			existing.Amount += t.Amount
			continue
		}
		byID[t.Category.ID] = &CategorySummary{Category: t.Category, Amount: t.Amount}
		order = append(order, t.Category.ID)
	}

	summaries := make([]CategorySummary, 0, len(order))
	for _, id := range order {
		s := *byID[id]
		if total > 0 {
			s.Percentage = s.Amount / total * 100
		}
		summaries = append(summaries, s)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Amount > summaries[j].Amount
	})
	return summaries
}
