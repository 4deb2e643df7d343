package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pocketledger/pocketledger/internal/cli"
	"github.com/pocketledger/pocketledger/internal/ledger"
	"github.com/pocketledger/pocketledger/internal/model"
	"github.com/pocketledger/pocketledger/internal/report"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `List, edit, and delete recorded transactions.`,
	}

	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(editTxCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		periodStr string
		from      string
		to        string
		typeStr   string
		search    string
		category  string
		method    string
		sortStr   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `List transactions grouped by day, with filtering, search and sorting.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			period, err := parsePeriod(periodStr)
			if err != nil {
				return err
			}
			custom, err := parseCustomRange(from, to)
			if err != nil {
				return err
			}
			sortBy := report.SortBy(sortStr)
			if !sortBy.Valid() {
				return fmt.Errorf("invalid sort %q (one of: date-newest, date-oldest, amount-highest, amount-lowest)", sortStr)
			}

			opts := report.FilterOptions{
				Period:          period,
				CustomRange:     custom,
				Type:            report.TypeFilter(typeStr),
				SearchQuery:     search,
				CategoryID:      category,
				PaymentMethodID: method,
				SortBy:          sortBy,
			}
			list := report.ApplyFilters(store.Transactions(), opts)

			if len(list) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions match."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			for _, group := range report.GroupTransactionsByDate(list) {
				fmt.Fprintf(w, "%s\n", cli.BoldStyle.Render(group.Key))
				for _, txn := range group.Transactions {
					amount := report.FormatCurrency(txn.Amount)
					if txn.Type == model.TypeExpense {
						amount = cli.ExpenseStyle.Render("-" + amount)
					} else {
						amount = cli.IncomeStyle.Render("+" + amount)
					}
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
						amount,
						txn.Category.Name,
						txn.PaymentMethod.Name,
						txn.Notes,
						cli.SubtleStyle.Render(txn.ID))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&periodStr, "period", "all", "time period (all, this-week, last-week, this-month, last-month, custom)")
	cmd.Flags().StringVar(&from, "from", "", "custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "custom range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&typeStr, "type", "all", "transaction type filter (all, income, expense)")
	cmd.Flags().StringVar(&search, "search", "", "search category, payment method and notes")
	cmd.Flags().StringVar(&category, "category", "", "filter by category id")
	cmd.Flags().StringVar(&method, "method", "", "filter by payment method id")
	cmd.Flags().StringVar(&sortStr, "sort", "date-newest", "sort order (date-newest, date-oldest, amount-highest, amount-lowest)")

	return cmd
}

func editTxCmd() *cobra.Command {
	var (
		txnType   string
		amountStr string
		category  string
		method    string
		dateStr   string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long:  `Replace a transaction's fields. Flags not given keep the current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			var current *model.Transaction
			for _, txn := range store.Transactions() {
				if txn.ID == id {
					t := txn
					current = &t
					break
				}
			}
			if current == nil {
				fmt.Println(cli.WarningStyle.Render("No transaction with that id; nothing to do."))
				return nil
			}

			draft := ledger.TransactionDraft{
				Type:          current.Type,
				Amount:        current.Amount,
				Category:      current.Category,
				PaymentMethod: current.PaymentMethod,
				Date:          current.Date,
				Notes:         current.Notes,
			}

			if cmd.Flags().Changed("type") {
				draft.Type = model.TransactionType(txnType)
			}
			if cmd.Flags().Changed("amount") {
				draft.Amount, err = parseAmount(amountStr)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("category") {
				draft.Category, err = resolveCategory(store, category)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("method") {
				draft.PaymentMethod, err = resolvePaymentMethod(store, method)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("date") {
				draft.Date, err = parseDate(dateStr)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("notes") {
				draft.Notes = notes
			}

			updated, found, err := store.UpdateTransaction(ctx, id, draft)
			if err != nil {
				return fmt.Errorf("failed to update transaction: %w", err)
			}
			if !found {
				fmt.Println(cli.WarningStyle.Render("No transaction with that id; nothing to do."))
				return nil
			}

			fmt.Printf("%s %s %s\n",
				cli.SuccessStyle.Render("Updated"),
				report.FormatCurrency(updated.Amount),
				updated.Category.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&txnType, "type", "", "transaction type (income, expense)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount")
	cmd.Flags().StringVar(&category, "category", "", "category id or name")
	cmd.Flags().StringVar(&method, "method", "", "payment method id or name")
	cmd.Flags().StringVar(&dateStr, "date", "", "date as YYYY-MM-DD, today or yesterday")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			if !store.DeleteTransaction(ctx, args[0]) {
				fmt.Println(cli.WarningStyle.Render("No transaction with that id; nothing to do."))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Deleted."))
			return nil
		},
	}
}
