package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pocketledger/pocketledger/internal/common"
	"github.com/pocketledger/pocketledger/internal/config"
	"github.com/pocketledger/pocketledger/internal/ledger"
	"github.com/pocketledger/pocketledger/internal/model"
	"github.com/pocketledger/pocketledger/internal/report"
	"github.com/pocketledger/pocketledger/internal/storage"
)

// openStorage opens the backing database with proper path expansion.
func openStorage(ctx context.Context) (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/pocketledger/ledger.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

// initLedger opens storage and returns a hydrated finance store. The caller
// closes the returned storage.
func initLedger(ctx context.Context) (*ledger.Store, *storage.SQLiteStore, error) {
	persist, err := openStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	store := ledger.NewStore(persist)
	if err := store.Load(ctx); err != nil {
		_ = persist.Close()
		return nil, nil, err
	}
	return store, persist, nil
}

// ledgerPrefs wraps an already-open storage in a preferences store.
func ledgerPrefs(persist *storage.SQLiteStore) *ledger.Preferences {
	return ledger.NewPreferences(persist)
}

// initPrefs opens storage and returns hydrated preferences. The caller
// closes the returned storage.
func initPrefs(ctx context.Context) (*ledger.Preferences, *storage.SQLiteStore, error) {
	persist, err := openStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	prefs := ledger.NewPreferences(persist)
	if err := prefs.Load(ctx); err != nil {
		_ = persist.Close()
		return nil, nil, err
	}
	return prefs, persist, nil
}

// resolveCategory looks a category up by id first, then by exact
// case-insensitive name.
func resolveCategory(store *ledger.Store, ref string) (model.Category, error) {
	if cat, ok := store.CategoryByID(ref); ok {
		return cat, nil
	}
	for _, cat := range store.Categories() {
		if strings.EqualFold(cat.Name, ref) {
			return cat, nil
		}
	}
	return model.Category{}, common.NewUserError(
		fmt.Sprintf("no category matches %q (try 'pocket categories list')", ref),
		common.ErrUnknownCategory)
}

// resolvePaymentMethod looks a payment method up by id first, then by exact
// case-insensitive name.
func resolvePaymentMethod(store *ledger.Store, ref string) (model.PaymentMethod, error) {
	if method, ok := store.PaymentMethodByID(ref); ok {
		return method, nil
	}
	for _, method := range store.PaymentMethods() {
		if strings.EqualFold(method.Name, ref) {
			return method, nil
		}
	}
	return model.PaymentMethod{}, common.NewUserError(
		fmt.Sprintf("no payment method matches %q (try 'pocket methods list')", ref),
		common.ErrUnknownMethod)
}

// parseAmount parses a positive decimal amount, tolerating a leading $.
func parseAmount(raw string) (float64, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(raw), "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}

// parseDate accepts YYYY-MM-DD or the shortcuts "today" and "yesterday".
// An empty value means today.
func parseDate(raw string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "today":
		return time.Now(), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1), nil
	}

	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", raw)
	}
	return date, nil
}

// parsePeriod validates a --period flag value.
func parsePeriod(raw string) (report.TimePeriod, error) {
	period := report.TimePeriod(raw)
	if !period.Valid() {
		return "", fmt.Errorf("invalid period %q (one of: all, this-week, last-week, this-month, last-month, custom)", raw)
	}
	return period, nil
}

// parseCustomRange builds the custom date range from --from/--to flags.
func parseCustomRange(from, to string) (*report.DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("custom ranges need both --from and --to")
	}

	start, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(to)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("--to is before --from")
	}
	return &report.DateRange{Start: start, End: end}, nil
}
