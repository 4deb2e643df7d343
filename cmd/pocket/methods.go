package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pocketledger/pocketledger/internal/cli"
	"github.com/pocketledger/pocketledger/internal/ledger"
	"github.com/pocketledger/pocketledger/internal/model"
)

func methodsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "methods",
		Short: "Manage payment methods",
		Long:  `List and add payment methods. Payment methods cannot be edited or removed.`,
	}

	cmd.AddCommand(listMethodsCmd())
	cmd.AddCommand(addMethodCmd())

	return cmd
}

func listMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List payment methods",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("ID"))
			for _, method := range store.PaymentMethods() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", method.Name, method.Type, cli.SubtleStyle.Render(method.ID))
			}
			return nil
		},
	}
}

func addMethodCmd() *cobra.Command {
	var (
		typeStr string
		icon    string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a payment method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			method, err := store.AddPaymentMethod(ctx, ledger.PaymentMethodDraft{
				Name: args[0],
				Type: model.PaymentMethodType(typeStr),
				Icon: icon,
			})
			if err != nil {
				return fmt.Errorf("failed to add payment method: %w", err)
			}

			fmt.Printf("%s %s (%s)\n", cli.SuccessStyle.Render("Added"), method.Name, cli.SubtleStyle.Render(method.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeStr, "type", "bank", "method type (bank, credit-card, cash)")
	cmd.Flags().StringVar(&icon, "icon", "CreditCard", "icon name")

	return cmd
}
