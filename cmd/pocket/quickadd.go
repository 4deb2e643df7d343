package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketledger/pocketledger/internal/cli"
	"github.com/pocketledger/pocketledger/internal/model"
)

func quickaddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quickadd",
		Short: "Manage the quick-add category list",
		Long: `Manage the categories surfaced for one-tap entry. With an empty list,
the first four expense categories are used.`,
	}

	cmd.AddCommand(listQuickAddCmd())
	cmd.AddCommand(setQuickAddCmd())
	cmd.AddCommand(toggleQuickAddCmd())

	return cmd
}

// quickAddCategories resolves the preference list against the current
// categories, falling back to the first four expense categories when the
// list is empty. Ids that no longer resolve are skipped.
func quickAddCategories(ids []string, categories []model.Category) []model.Category {
	if len(ids) > 0 {
		var out []model.Category
		for _, id := range ids {
			for _, c := range categories {
				if c.ID == id {
					out = append(out, c)
					break
				}
			}
		}
		return out
	}

	var out []model.Category
	for _, c := range categories {
		if c.Type == model.TypeExpense {
			out = append(out, c)
			if len(out) == 4 {
				break
			}
		}
	}
	return out
}

func listQuickAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the quick-add categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			prefs := ledgerPrefs(persist)
			if err := prefs.Load(ctx); err != nil {
				return err
			}

			ids := prefs.QuickAddCategoryIDs()
			if len(ids) == 0 {
				fmt.Println(cli.SubtleStyle.Render("(using default: first four expense categories)"))
			}
			for _, c := range quickAddCategories(ids, store.Categories()) {
				fmt.Printf("%s %s\n", c.Name, cli.SubtleStyle.Render(c.ID))
			}
			return nil
		},
	}
}

func setQuickAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id>...",
		Short: "Replace the quick-add list",
		Long:  `Replace the whole quick-add list with the given category ids, in order.`,
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			for _, id := range args {
				if _, ok := store.CategoryByID(id); !ok {
					return fmt.Errorf("no category with id %q", id)
				}
			}

			prefs := ledgerPrefs(persist)
			if err := prefs.Load(ctx); err != nil {
				return err
			}
			prefs.SetQuickAddCategoryIDs(ctx, args)

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Quick-add list set (%d categories).", len(args))))
			return nil
		},
	}
}

func toggleQuickAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a category on the quick-add list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, persist, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			cat, ok := store.CategoryByID(args[0])
			if !ok {
				return fmt.Errorf("no category with id %q", args[0])
			}

			prefs := ledgerPrefs(persist)
			if err := prefs.Load(ctx); err != nil {
				return err
			}

			if prefs.ToggleQuickAddCategory(ctx, cat.ID) {
				fmt.Printf("%s %s\n", cli.SuccessStyle.Render("Added to quick-add:"), cat.Name)
			} else {
				fmt.Printf("%s %s\n", cli.SuccessStyle.Render("Removed from quick-add:"), cat.Name)
			}
			return nil
		},
	}
}
