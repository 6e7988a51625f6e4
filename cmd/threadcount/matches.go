package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/threadcount/threadcount/internal/cli"
	"github.com/threadcount/threadcount/internal/model"
)

func matchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Manage manual template matches",
		Long: `Manual matches pin an owned item to a template slot so the matcher
stops second-guessing it. Created here or via 'capsules match --review'.`,
	}

	cmd.AddCommand(linkMatchCmd())
	cmd.AddCommand(unlinkMatchCmd())
	cmd.AddCommand(listMatchesCmd())

	return cmd
}

func linkMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <template-id> <slot-id> <item-id>",
		Short: "Pin an owned item to a template slot",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			// Fail early if the item doesn't exist.
			if _, err := store.GetItem(ctx, args[2]); err != nil {
				return err
			}

			match := &model.ManualMatch{
				TemplateID:     args[0],
				TemplateItemID: args[1],
				ItemID:         args[2],
			}
			if err := store.SaveManualMatch(ctx, match); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Linked item %s to slot %s", args[2], args[1])))
			return nil
		},
	}
}

func unlinkMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <template-id> <slot-id>",
		Short: "Remove a pinned match from a template slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteManualMatch(ctx, args[0], args[1]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Unlinked slot %s", args[1])))
			return nil
		},
	}
}

func listMatchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <template-id>",
		Short: "List pinned matches for a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			matches, err := store.GetManualMatches(ctx, args[0])
			if err != nil {
				return err
			}

			if len(matches) == 0 {
				fmt.Println(cli.InfoStyle.Render("No manual matches for this template."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				headerStyle.Render("Slot"),
				headerStyle.Render("Item"),
				headerStyle.Render("Linked"))

			for _, match := range matches {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					match.TemplateItemID, match.ItemID, match.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}
