package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pocketledger/pocketledger/internal/cli"
	"github.com/pocketledger/pocketledger/internal/report"
)

func summaryCmd() *cobra.Command {
	var (
		periodStr string
		from      string
		to        string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals and expense breakdown",
		Long:  `Show income, expenses and balance for a period, plus expenses by category.`,
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

			filtered := report.FilterByPeriod(store.Transactions(), period, custom)
			totals := report.CalculateTotals(filtered)

			fmt.Println(cli.TitleStyle.Render(report.FormatTimePeriod(period)))
			fmt.Printf("  Income    %s\n", cli.IncomeStyle.Render(report.FormatCurrency(totals.Income)))
			fmt.Printf("  Expenses  %s\n", cli.ExpenseStyle.Render(report.FormatCurrency(totals.Expenses)))
			fmt.Printf("  Balance   %s\n\n", cli.BoldStyle.Render(report.FormatCurrency(totals.Balance)))

			summaries := report.ExpensesByCategory(filtered)
			if len(summaries) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses in this period."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Share"))
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%.1f%%\n",
					s.Category.Name,
					report.FormatCurrency(s.Amount),
					s.Percentage)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&periodStr, "period", "this-month", "time period (all, this-week, last-week, this-month, last-month, custom)")
	cmd.Flags().StringVar(&from, "from", "", "custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "custom range end (YYYY-MM-DD)")

	return cmd
}
