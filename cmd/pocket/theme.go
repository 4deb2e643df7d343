package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketledger/pocketledger/internal/cli"
	"github.com/pocketledger/pocketledger/internal/model"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the theme preference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the current theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			prefs, persist, err := initPrefs(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			fmt.Println(prefs.Theme())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <light|dark>",
		Short: "Set the theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			prefs, persist, err := initPrefs(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = persist.Close() }()

			if err := prefs.SetTheme(ctx, model.ThemeMode(args[0])); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("Theme set to " + args[0] + "."))
			return nil
		},
	})

	return cmd
}
