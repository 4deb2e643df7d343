package report

import (
	"time"

	"github.com/pocketledger/pocketledger/internal/model"
)

// dayKeyLayout is sortable: lexicographic order is chronological order.
const dayKeyLayout = "2006-01-02"

// DateGroup is one calendar day's worth of transactions.
type DateGroup struct {
	Key          string // local day, formatted 2006-01-02
	Transactions []model.Transaction
}

// GroupTransactionsByDate buckets transactions by local calendar day,
// discarding the time of day. Groups appear in first-encounter order and
// each bucket preserves the input's relative order.
func GroupTransactionsByDate(transactions []model.Transaction) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int)

	for _, t := range transactions {
		key := t.Date.Format(dayKeyLayout)
		if i, ok := index[key]; ok {
			groups[i].Transactions = append(groups[i].Transactions, t)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, DateGroup{Key: key, Transactions: []model.Transaction{t}})
	}
	return groups
}

// FormatDate renders a date for display, collapsing today and yesterday.
func FormatDate(date time.Time) string {
	return formatDateAt(date, time.Now())
}

func formatDateAt(date, now time.Time) string {
	day := date.Format(dayKeyLayout)
	switch day {
	case now.Format(dayKeyLayout):
		return "Today"
	case now.AddDate(0, 0, -1).Format(dayKeyLayout):
		return "Yesterday"
	}
	return date.Format("Jan 2, 2006")
}
