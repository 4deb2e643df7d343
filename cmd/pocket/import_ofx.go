package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pocketledger/pocketledger/internal/cli"
	"github.com/pocketledger/pocketledger/internal/ledger"
	"github.com/pocketledger/pocketledger/internal/model"
	"github.com/pocketledger/pocketledger/internal/ofx"
)

func importCmd() *cobra.Command {
	var (
		method          string
		incomeCategory  string
		expenseCategory string
	)

	cmd := &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import transactions from an OFX/QFX statement",
		Long: `Import a bank or credit card statement downloaded as OFX/QFX.

Debits become expenses and credits become income, filed under the given
categories with the statement payee recorded in the notes:
  pocket import checking.ofx --method bank1 --expense-category other-expense`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			pm, err := resolvePaymentMethod(store, method)
			if err != nil {
				return err
			}
			incomeCat, err := resolveCategory(store, incomeCategory)
			if err != nil {
				return err
			}
			expenseCat, err := resolveCategory(store, expenseCategory)
			if err != nil {
				return err
			}
			if incomeCat.Type != model.TypeIncome {
				return fmt.Errorf("--income-category must be an income category")
			}
			if expenseCat.Type != model.TypeExpense {
				return fmt.Errorf("--expense-category must be an expense category")
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open statement: %w", err)
			}
			defer func() { _ = file.Close() }()

			entries, err := ofx.NewParser().ParseFile(file)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(cli.InfoStyle.Render("Statement contains no transactions."))
				return nil
			}

			bar := progressbar.Default(int64(len(entries)), "importing")
			imported := 0
			for _, entry := range entries {
				category := expenseCat
				if entry.Type == model.TypeIncome {
					category = incomeCat
				}

				_, err := store.AddTransaction(ctx, ledger.TransactionDraft{
					Type:          entry.Type,
					Amount:        entry.Amount,
					Category:      category,
					PaymentMethod: pm,
					Date:          entry.Date,
					Notes:         entry.Payee,
				})
				if err != nil {
					fmt.Fprintln(os.Stderr, cli.WarningStyle.Render(fmt.Sprintf("skipped %q: %v", entry.Payee, err)))
				} else {
					imported++
				}
				_ = bar.Add(1)
			}

			fmt.Printf("\n%s\n", cli.SuccessStyle.Render(fmt.Sprintf("Imported %d of %d transactions.", imported, len(entries))))
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "payment method the statement belongs to (required)")
	cmd.Flags().StringVar(&incomeCategory, "income-category", "other-income", "category for credits")
	cmd.Flags().StringVar(&expenseCategory, "expense-category", "other-expense", "category for debits")
	_ = cmd.MarkFlagRequired("method")

	return cmd
}
