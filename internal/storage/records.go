package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pocketledger/pocketledger/internal/model"
)

// Keys for the five logical records. Each key holds one whole collection or
// scalar, replaced on every save.
const (
	keyTransactions   = "finance/transactions"
	keyCategories     = "finance/categories"
	keyPaymentMethods = "finance/payment_methods"
	keyQuickAddIDs    = "prefs/quick_add_category_ids"
	keyTheme          = "prefs/theme"
)

// storedTransaction carries a transaction across the persistence boundary
// with its date flattened to a sortable RFC 3339 string.
type storedTransaction struct {
	model.Transaction
	Date string `json:"date"`
}

func encodeTransaction(t model.Transaction) storedTransaction {
	return storedTransaction{
		Transaction: t,
		Date:        t.Date.Format(time.RFC3339),
	}
}

func decodeTransaction(st storedTransaction) (model.Transaction, error) {
	date, err := time.Parse(time.RFC3339, st.Date)
	if err != nil {
		return model.Transaction{}, err
	}
	t := st.Transaction
	t.Date = date
	return t, nil
}

// LoadTransactions returns the stored transaction collection. An absent key
// or an undecodable payload yields an empty collection, never an error;
// only database-level failures are returned.
func (s *SQLiteStore) LoadTransactions(ctx context.Context) ([]model.Transaction, error) {
	raw, err := s.get(ctx, keyTransactions)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []model.Transaction{}, nil
	}

	var stored []storedTransaction
	if err := json.Unmarshal(raw, &stored); err != nil {
		slog.Warn("discarding malformed transactions record", "error", err)
		return []model.Transaction{}, nil
	}

	transactions := make([]model.Transaction, 0, len(stored))
	for _, st := range stored {
		t, err := decodeTransaction(st)
		if err != nil {
			slog.Warn("discarding malformed transactions record", "id", st.ID, "error", err)
			return []model.Transaction{}, nil
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// SaveTransactions replaces the stored transaction collection.
func (s *SQLiteStore) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	stored := make([]storedTransaction, 0, len(transactions))
	for _, t := range transactions {
		stored = append(stored, encodeTransaction(t))
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return s.put(ctx, keyTransactions, raw)
}

// LoadCategories returns the stored category collection, empty when absent
// or malformed.
func (s *SQLiteStore) LoadCategories(ctx context.Context) ([]model.Category, error) {
	return loadCollection[model.Category](ctx, s, keyCategories)
}

// SaveCategories replaces the stored category collection.
func (s *SQLiteStore) SaveCategories(ctx context.Context, categories []model.Category) error {
	return saveCollection(ctx, s, keyCategories, categories)
}

// LoadPaymentMethods returns the stored payment method collection, empty
// when absent or malformed.
func (s *SQLiteStore) LoadPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	return loadCollection[model.PaymentMethod](ctx, s, keyPaymentMethods)
}

// SavePaymentMethods replaces the stored payment method collection.
func (s *SQLiteStore) SavePaymentMethods(ctx context.Context, methods []model.PaymentMethod) error {
	return saveCollection(ctx, s, keyPaymentMethods, methods)
}

// LoadQuickAddCategoryIDs returns the stored quick-add id list, empty when
// absent or malformed.
func (s *SQLiteStore) LoadQuickAddCategoryIDs(ctx context.Context) ([]string, error) {
	return loadCollection[string](ctx, s, keyQuickAddIDs)
}

// SaveQuickAddCategoryIDs replaces the stored quick-add id list.
func (s *SQLiteStore) SaveQuickAddCategoryIDs(ctx context.Context, ids []string) error {
	return saveCollection(ctx, s, keyQuickAddIDs, ids)
}

// LoadTheme returns the stored theme preference, falling back to light for
// an absent or unknown token.
func (s *SQLiteStore) LoadTheme(ctx context.Context) (model.ThemeMode, error) {
	raw, err := s.get(ctx, keyTheme)
	if err != nil {
		return model.ThemeLight, err
	}

	mode := model.ThemeMode(raw)
	if !mode.Valid() {
		if raw != nil {
			slog.Warn("discarding unknown theme token", "value", string(raw))
		}
		return model.ThemeLight, nil
	}
	return mode, nil
}

// SaveTheme replaces the stored theme preference.
func (s *SQLiteStore) SaveTheme(ctx context.Context, mode model.ThemeMode) error {
	return s.put(ctx, keyTheme, []byte(mode))
}

func loadCollection[T any](ctx context.Context, s *SQLiteStore, key string) ([]T, error) {
	raw, err := s.get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("discarding malformed record", "key", key, "error", err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func saveCollection[T any](ctx context.Context, s *SQLiteStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.put(ctx, key, raw)
}
