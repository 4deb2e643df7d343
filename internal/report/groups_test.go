package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketledger/pocketledger/internal/model"
)

func TestGroupTransactionsByDate(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, GroupTransactionsByDate(nil))
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		groups := GroupTransactionsByDate([]model.Transaction{
			txn("morning", model.TypeExpense, 5, "food", time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)),
			txn("evening", model.TypeExpense, 7, "food", time.Date(2024, 3, 1, 21, 30, 0, 0, time.UTC)),
		})

		require.Len(t, groups, 1)
		assert.Equal(t, "2024-03-01", groups[0].Key)
		require.Len(t, groups[0].Transactions, 2)
		assert.Equal(t, "morning", groups[0].Transactions[0].ID)
		assert.Equal(t, "evening", groups[0].Transactions[1].ID)
	})

	t.Run("buckets keep first-encounter order", func(t *testing.T) {
		groups := GroupTransactionsByDate([]model.Transaction{
			txn("a", model.TypeExpense, 1, "food", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)),
			txn("b", model.TypeExpense, 2, "food", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			txn("c", model.TypeExpense, 3, "food", time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)),
		})

		require.Len(t, groups, 2)
		assert.Equal(t, "2024-03-02", groups[0].Key)
		assert.Equal(t, "2024-03-01", groups[1].Key)
		require.Len(t, groups[0].Transactions, 2)
		assert.Equal(t, "a", groups[0].Transactions[0].ID)
		assert.Equal(t, "c", groups[0].Transactions[1].ID)
	})

	t.Run("keys sort chronologically", func(t *testing.T) {
		groups := GroupTransactionsByDate([]model.Transaction{
			txn("old", model.TypeExpense, 1, "food", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)),
			txn("new", model.TypeExpense, 2, "food", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		})

		require.Len(t, groups, 2)
		assert.Less(t, groups[0].Key, groups[1].Key)
	})
}

func TestFormatDate(t *testing.T) {
	now := time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", formatDateAt(time.Date(2024, 3, 13, 1, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Yesterday", formatDateAt(time.Date(2024, 3, 12, 23, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Mar 1, 2024", formatDateAt(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), now))
}
