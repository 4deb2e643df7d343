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

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, add, and delete the categories transactions are organized under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var typeStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  `Display categories of a type with their subcategories nested beneath.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			txnType := model.TransactionType(typeStr)
			if !txnType.Valid() {
				return fmt.Errorf("invalid type %q (income or expense)", typeStr)
			}

			groups := report.CategoriesGroupedByMain(store.Categories(), txnType)
			if len(groups) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'pocket categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\n", cli.HeaderStyle.Render("Name"), cli.HeaderStyle.Render("ID"))
			for _, group := range groups {
				fmt.Fprintf(w, "%s\t%s\n", group.Main.Name, cli.SubtleStyle.Render(group.Main.ID))
				for _, sub := range group.Subcategories {
					fmt.Fprintf(w, "  %s\t%s\n", sub.Name, cli.SubtleStyle.Render(sub.ID))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeStr, "type", "expense", "category type (income, expense)")
	return cmd
}

func addCategoryCmd() *cobra.Command {
	var (
		typeStr string
		icon    string
		color   string
		parent  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Long: `Add a category. With --parent it becomes a subcategory of an existing
main category of the same type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			parentID := ""
			if parent != "" {
				parentCat, err := resolveCategory(store, parent)
				if err != nil {
					return err
				}
				parentID = parentCat.ID
			}

			cat, err := store.AddCategory(ctx, ledger.CategoryDraft{
				Name:     args[0],
				Icon:     icon,
				Color:    color,
				Type:     model.TransactionType(typeStr),
				ParentID: parentID,
			})
			if err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Printf("%s %s (%s)\n", cli.SuccessStyle.Render("Added"), cat.Name, cli.SubtleStyle.Render(cat.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeStr, "type", "expense", "category type (income, expense)")
	cmd.Flags().StringVar(&icon, "icon", "Tag", "icon name")
	cmd.Flags().StringVar(&color, "color", "#6b7280", "display color")
	cmd.Flags().StringVar(&parent, "parent", "", "parent category id or name")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category. Deleting a main category also deletes its
subcategories. Existing transactions keep their recorded category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			removed := store.DeleteCategory(ctx, args[0])
			if removed == 0 {
				fmt.Println(cli.WarningStyle.Render("No category with that id; nothing to do."))
				return nil
			}
			if removed == 1 {
				fmt.Println(cli.SuccessStyle.Render("Deleted 1 category."))
			} else {
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted %d categories.", removed)))
			}
			return nil
		},
	}
}
