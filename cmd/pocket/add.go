package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketledger/pocketledger/internal/cli"
	"github.com/pocketledger/pocketledger/internal/ledger"
	"github.com/pocketledger/pocketledger/internal/model"
	"github.com/pocketledger/pocketledger/internal/report"
)

func addCmd() *cobra.Command {
	var (
		txnType   string
		amountStr string
		category  string
		method    string
		dateStr   string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record an income or expense transaction.

Categories and payment methods may be referenced by id or name:
  pocket add --amount 42.50 --category food --method cash --notes lunch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			cat, err := resolveCategory(store, category)
			if err != nil {
				return err
			}
			pm, err := resolvePaymentMethod(store, method)
			if err != nil {
				return err
			}

			txn, err := store.AddTransaction(ctx, ledger.TransactionDraft{
				Type:          model.TransactionType(txnType),
				Amount:        amount,
				Category:      cat,
				PaymentMethod: pm,
				Date:          date,
				Notes:         notes,
			})
			if err != nil {
				return fmt.Errorf("failed to add transaction: %w", err)
			}

			amountStyle := cli.ExpenseStyle
			if txn.Type == model.TypeIncome {
				amountStyle = cli.IncomeStyle
			}
			fmt.Printf("%s %s %s (%s, %s)\n",
				cli.SuccessStyle.Render("Recorded"),
				amountStyle.Render(report.FormatCurrency(txn.Amount)),
				txn.Category.Name,
				txn.PaymentMethod.Name,
				report.FormatDate(txn.Date))
			return nil
		},
	}

	cmd.Flags().StringVar(&txnType, "type", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&category, "category", "", "category id or name (required)")
	cmd.Flags().StringVar(&method, "method", "", "payment method id or name (required)")
	cmd.Flags().StringVar(&dateStr, "date", "", "date as YYYY-MM-DD, today or yesterday (default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("method")

	return cmd
}
