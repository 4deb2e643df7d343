// Package model defines the domain entities for the ledger.
package model

import "time"

// Transaction represents a single recorded income or expense.
//
// Category and PaymentMethod are embedded snapshots taken when the
// transaction was created or last edited, not live references: deleting or
// editing a category later never rewrites historical transactions.
type Transaction struct {
	Date          time.Time       `json:"date"`
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Notes         string          `json:"notes,omitempty"`
	Category      Category        `json:"category"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Amount        float64         `json:"amount"`
}

// ThemeMode is the UI color scheme preference.
type ThemeMode string

const (
	// ThemeLight is the default color scheme.
	ThemeLight ThemeMode = "light"
	// ThemeDark is the dark color scheme.
	ThemeDark ThemeMode = "dark"
)

// Valid reports whether the mode is one of the known tokens.
func (m ThemeMode) Valid() bool {
	return m == ThemeLight || m == ThemeDark
}
