package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketledger/pocketledger/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func testTransaction(id string, amount float64, date time.Time) model.Transaction {
	return model.Transaction{
		ID:     id,
		Type:   model.TypeExpense,
		Amount: amount,
		Date:   date,
		Notes:  "lunch",
		Category: model.Category{
			ID:    "food",
			Name:  "Food & Dining",
			Icon:  "UtensilsCrossed",
			Color: "#ef4444",
			Type:  model.TypeExpense,
		},
		PaymentMethod: model.PaymentMethod{
			ID:   "cash",
			Name: "Cash",
			Type: model.MethodCash,
			Icon: "Wallet",
		},
	}
}

func TestTransactionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	original := []model.Transaction{
		testTransaction("txn1", 42.50, time.Date(2024, 3, 1, 14, 30, 5, 0, time.UTC)),
		testTransaction("txn2", 9.99, time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC)),
	}

	require.NoError(t, store.SaveTransactions(ctx, original))

	loaded, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	for i := range original {
		assert.Equal(t, original[i].ID, loaded[i].ID)
		assert.Equal(t, original[i].Amount, loaded[i].Amount)
		assert.Equal(t, original[i].Category, loaded[i].Category)
		assert.Equal(t, original[i].PaymentMethod, loaded[i].PaymentMethod)
		assert.Equal(t, original[i].Notes, loaded[i].Notes)
		assert.True(t, original[i].Date.Equal(loaded[i].Date),
			"date should survive the round trip: %v != %v", original[i].Date, loaded[i].Date)
	}
}

func TestLoadTransactionsAbsentKey(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.LoadTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
	assert.NotNil(t, loaded)
}

func TestLoadTransactionsMalformedPayload(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.put(ctx, keyTransactions, []byte("not json at all")))

	loaded, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadTransactionsBadDate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.put(ctx, keyTransactions,
		[]byte(`[{"id":"txn1","type":"expense","amount":5,"date":"yesterday-ish"}]`)))

	loaded, err := store.LoadTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCategoriesRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	categories := []model.Category{
		{ID: "food", Name: "Food & Dining", Icon: "UtensilsCrossed", Color: "#ef4444", Type: model.TypeExpense},
		{ID: "groceries", Name: "Groceries", Icon: "ShoppingCart", Color: "#ef4444", Type: model.TypeExpense, ParentID: "food"},
	}

	require.NoError(t, store.SaveCategories(ctx, categories))

	loaded, err := store.LoadCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, loaded)
}

func TestPaymentMethodsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	methods := []model.PaymentMethod{
		{ID: "cash", Name: "Cash", Type: model.MethodCash, Icon: "Wallet"},
		{ID: "credit1", Name: "Visa Credit Card", Type: model.MethodCreditCard, Icon: "CreditCard"},
	}

	require.NoError(t, store.SavePaymentMethods(ctx, methods))

	loaded, err := store.LoadPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Equal(t, methods, loaded)
}

func TestQuickAddIDsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ids := []string{"food", "transport", "bills"}
	require.NoError(t, store.SaveQuickAddCategoryIDs(ctx, ids))

	loaded, err := store.LoadQuickAddCategoryIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, ids, loaded)
}

func TestSaveReplacesWholeValue(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SaveQuickAddCategoryIDs(ctx, []string{"food", "transport"}))
	require.NoError(t, store.SaveQuickAddCategoryIDs(ctx, []string{"bills"}))

	loaded, err := store.LoadQuickAddCategoryIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bills"}, loaded)
}

func TestTheme(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to light when absent", func(t *testing.T) {
		store := newTestStore(t)

		mode, err := store.LoadTheme(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.ThemeLight, mode)
	})

	t.Run("round-trips dark", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.SaveTheme(ctx, model.ThemeDark))

		mode, err := store.LoadTheme(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.ThemeDark, mode)
	})

	t.Run("falls back to light for unknown token", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.put(ctx, keyTheme, []byte("solarized")))

		mode, err := store.LoadTheme(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.ThemeLight, mode)
	})
}
