package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pocketledger/pocketledger/internal/model"
)

// SortBy names the final ordering of a filtered transaction list.
type SortBy string

const (
	// SortDateNewest orders by date, most recent first. The default.
	SortDateNewest SortBy = "date-newest"
	// SortDateOldest orders by date, oldest first.
	SortDateOldest SortBy = "date-oldest"
	// SortAmountHighest orders by amount, largest first.
	SortAmountHighest SortBy = "amount-highest"
	// SortAmountLowest orders by amount, smallest first.
	SortAmountLowest SortBy = "amount-lowest"
)

// Valid reports whether the sort order is one of the known tokens.
func (s SortBy) Valid() bool {
	switch s {
	case SortDateNewest, SortDateOldest, SortAmountHighest, SortAmountLowest:
		return true
	}
	return false
}

// TypeFilter optionally restricts a list to one transaction type.
type TypeFilter string

const (
	// TypeFilterAll keeps both income and expense transactions.
	TypeFilterAll TypeFilter = "all"
	// TypeFilterIncome keeps income transactions only.
	TypeFilterIncome TypeFilter = "income"
	// TypeFilterExpense keeps expense transactions only.
	TypeFilterExpense TypeFilter = "expense"
)

// FilterOptions is the full filter/search/sort configuration of the
// transaction list view. Zero values mean "no restriction".
type FilterOptions struct {
	Period          TimePeriod
	CustomRange     *DateRange
	Type            TypeFilter
	SearchQuery     string
	CategoryID      string
	PaymentMethodID string
	SortBy          SortBy
}

// ApplyFilters runs the filter pipeline in a fixed order: period, type,
// free-text search, category, payment method, then the final sort. Every
// stage before the sort preserves relative order.
func ApplyFilters(transactions []model.Transaction, opts FilterOptions) []model.Transaction {
	period := opts.Period
	if period == "" {
		period = PeriodAll
	}
	list := FilterByPeriod(transactions, period, opts.CustomRange)

	if opts.Type == TypeFilterIncome || opts.Type == TypeFilterExpense {
		list = keep(list, func(t model.Transaction) bool {
			return string(t.Type) == string(opts.Type)
		})
	}

	if q := strings.ToLower(strings.TrimSpace(opts.SearchQuery)); q != "" {
		list = keep(list, func(t model.Transaction) bool {
			return strings.Contains(strings.ToLower(t.Category.Name), q) ||
				strings.Contains(strings.ToLower(t.PaymentMethod.Name), q) ||
				strings.Contains(strings.ToLower(t.Notes), q)
		})
	}

	if opts.CategoryID != "" && opts.CategoryID != "all" {
		list = keep(list, func(t model.Transaction) bool {
			return t.Category.ID == opts.CategoryID
		})
	}

	if opts.PaymentMethodID != "" && opts.PaymentMethodID != "all" {
		list = keep(list, func(t model.Transaction) bool {
			return t.PaymentMethod.ID == opts.PaymentMethodID
		})
	}

	sorted := make([]model.Transaction, len(list))
	copy(sorted, list)

	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = SortDateNewest
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		switch sortBy {
		case SortDateOldest:
			return sorted[i].Date.Before(sorted[j].Date)
		case SortAmountHighest:
			return sorted[i].Amount > sorted[j].Amount
		case SortAmountLowest:
			return sorted[i].Amount < sorted[j].Amount
		default:
			return sorted[i].Date.After(sorted[j].Date)
		}
	})
	return sorted
}

// FormatCurrency renders an amount in the app's fixed currency.
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole := fmt.Sprintf("%.2f", amount)
	dot := strings.Index(whole, ".")
	intPart, fracPart := whole[:dot], whole[dot:]

	// group thousands
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + fracPart
}

func keep(transactions []model.Transaction, pred func(model.Transaction) bool) []model.Transaction {
	kept := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if pred(t) {
			kept = append(kept, t)
		}
	}
	return kept
}
