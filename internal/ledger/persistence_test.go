package ledger_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketledger/pocketledger/internal/ledger"
	"github.com/pocketledger/pocketledger/internal/model"
	"github.com/pocketledger/pocketledger/internal/report"
	"github.com/pocketledger/pocketledger/internal/storage"
)

func openTestStorage(t *testing.T, dbPath string) *storage.SQLiteStore {
	t.Helper()

	persist, err := storage.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, persist.Migrate(context.Background()))
	return persist
}

func TestFirstEntryScenario(t *testing.T) {
	ctx := context.Background()
	persist := openTestStorage(t, filepath.Join(t.TempDir(), "ledger.db"))
	defer func() { _ = persist.Close() }()

	store := ledger.NewStore(persist)
	require.NoError(t, store.Load(ctx))

	// fresh install: seed data only
	require.Len(t, store.Categories(), 14)
	require.Len(t, store.PaymentMethods(), 4)
	require.Empty(t, store.Transactions())

	food, ok := store.CategoryByID("food")
	require.True(t, ok)
	cash, ok := store.PaymentMethodByID("cash")
	require.True(t, ok)

	_, err := store.AddTransaction(ctx, ledger.TransactionDraft{
		Type:          model.TypeExpense,
		Amount:        42.50,
		Category:      food,
		PaymentMethod: cash,
		Date:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Notes:         "lunch",
	})
	require.NoError(t, err)

	transactions := store.Transactions()
	require.Len(t, transactions, 1)

	totals := report.CalculateTotals(transactions)
	assert.Zero(t, totals.Income)
	assert.InDelta(t, 42.5, totals.Expenses, 1e-9)
	assert.InDelta(t, -42.5, totals.Balance, 1e-9)

	groups := report.GroupTransactionsByDate(transactions)
	require.Len(t, groups, 1)
	assert.Equal(t, "2024-03-01", groups[0].Key)
	assert.Len(t, groups[0].Transactions, 1)
}

func TestStoreRehydratesAcrossRestart(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	persist := openTestStorage(t, dbPath)
	store := ledger.NewStore(persist)
	require.NoError(t, store.Load(ctx))

	food, _ := store.CategoryByID("food")
	cash, _ := store.PaymentMethodByID("cash")

	added, err := store.AddTransaction(ctx, ledger.TransactionDraft{
		Type:          model.TypeExpense,
		Amount:        12.34,
		Category:      food,
		PaymentMethod: cash,
		Date:          time.Date(2024, 3, 1, 18, 45, 0, 0, time.UTC),
		Notes:         "tapas",
	})
	require.NoError(t, err)

	removed := store.DeleteCategory(ctx, "food")
	require.Equal(t, 1, removed)
	require.NoError(t, persist.Close())

	// simulate an app restart
	persist = openTestStorage(t, dbPath)
	defer func() { _ = persist.Close() }()

	reloaded := ledger.NewStore(persist)
	require.NoError(t, reloaded.Load(ctx))

	transactions := reloaded.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, added.ID, transactions[0].ID)
	assert.True(t, added.Date.Equal(transactions[0].Date))
	// the embedded snapshot survives the category deletion
	assert.Equal(t, "food", transactions[0].Category.ID)

	assert.Len(t, reloaded.Categories(), 13)
	_, ok := reloaded.CategoryByID("food")
	assert.False(t, ok)
}

func TestPreferencesRehydrateAcrossRestart(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	persist := openTestStorage(t, dbPath)
	prefs := ledger.NewPreferences(persist)
	require.NoError(t, prefs.Load(ctx))

	require.NoError(t, prefs.SetTheme(ctx, model.ThemeDark))
	prefs.SetQuickAddCategoryIDs(ctx, []string{"food", "bills"})
	require.NoError(t, persist.Close())

	persist = openTestStorage(t, dbPath)
	defer func() { _ = persist.Close() }()

	reloaded := ledger.NewPreferences(persist)
	require.NoError(t, reloaded.Load(ctx))

	assert.Equal(t, model.ThemeDark, reloaded.Theme())
	assert.Equal(t, []string{"food", "bills"}, reloaded.QuickAddCategoryIDs())
}
