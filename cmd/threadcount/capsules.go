package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/threadcount/threadcount/internal/capsule"
	"github.com/threadcount/threadcount/internal/catalog"
	"github.com/threadcount/threadcount/internal/cli"
	"github.com/threadcount/threadcount/internal/model"
	"github.com/threadcount/threadcount/internal/tui"
)

func capsulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capsules",
		Short: "Explore capsule wardrobe templates",
		Long:  `List capsule templates, match them against your wardrobe, and find the best fit.`,
	}

	cmd.AddCommand(listCapsulesCmd())
	cmd.AddCommand(showCapsuleCmd())
	cmd.AddCommand(matchCapsuleCmd())
	cmd.AddCommand(recommendCapsulesCmd())
	cmd.AddCommand(browseCapsulesCmd())

	return cmd
}

func listCapsulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List capsule templates with your completion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			templates, err := loadCatalog()
			if err != nil {
				return err
			}
			inventory, err := loadInventory(ctx, store)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Items"),
				headerStyle.Render("Outfits"),
				headerStyle.Render("Complete"))

			for _, tmpl := range templates {
				manual, resolveErr := store.ResolveManualMatches(ctx, tmpl.ID)
				if resolveErr != nil {
					return resolveErr
				}
				match := capsule.MatchTemplate(inventory, tmpl, manual)
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d%%\n",
					tmpl.ID, tmpl.Name, tmpl.TotalItems, tmpl.TotalOutfits,
					capsule.CompletionPercentage(match, tmpl))
			}
			return nil
		},
	}
}

func showCapsuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <template-id>",
		Short: "Show a capsule template's contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := loadCatalog()
			if err != nil {
				return err
			}
			tmpl, err := catalog.ByID(templates, args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(tmpl.Name))
			fmt.Println(cli.SubtleStyle.Render(tmpl.Description))
			fmt.Printf("\n%d items, %d outfits, %s composition\n\n", tmpl.TotalItems, tmpl.TotalOutfits, tmpl.Composition)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			for _, item := range tmpl.Items {
				essential := ""
				if item.Essential {
					essential = cli.WarningStyle.Render("essential")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.ID, item.Category, item.Description, essential)
			}
			return nil
		},
	}
}

func matchCapsuleCmd() *cobra.Command {
	var review bool

	cmd := &cobra.Command{
		Use:   "match <template-id>",
		Short: "Match your wardrobe against a capsule template",
		Long: `Partition a template's slots into what you own, what's close, and what
is missing. With --review, walk through the close matches and confirm the
ones that should count as owned.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			templates, err := loadCatalog()
			if err != nil {
				return err
			}
			tmpl, err := catalog.ByID(templates, args[0])
			if err != nil {
				return err
			}
			inventory, err := loadInventory(ctx, store)
			if err != nil {
				return err
			}
			manual, err := store.ResolveManualMatches(ctx, tmpl.ID)
			if err != nil {
				return err
			}

			match := capsule.MatchTemplate(inventory, tmpl, manual)
			printMatchResult(tmpl, match)

			if review && len(match.Similar) > 0 {
				prompter := cli.NewPrompter(nil, nil)
				confirmed, reviewErr := prompter.ReviewSimilarMatches(ctx, tmpl.ID, match.Similar)
				if reviewErr != nil {
					return reviewErr
				}
				for i := range confirmed {
					if saveErr := store.SaveManualMatch(ctx, &confirmed[i]); saveErr != nil {
						return saveErr
					}
				}
				if len(confirmed) > 0 {
					fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved %d manual match(es)", len(confirmed))))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&review, "review", false, "interactively confirm similar matches")
	return cmd
}

func recommendCapsulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Rank capsule templates by fit with your wardrobe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			templates, err := loadCatalog()
			if err != nil {
				return err
			}
			inventory, err := loadInventory(ctx, store)
			if err != nil {
				return err
			}

			recommendations := capsule.Recommend(inventory, templates)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Rank"),
				headerStyle.Render("Capsule"),
				headerStyle.Render("Score"),
				headerStyle.Render("You Own"))

			for i, rec := range recommendations {
				fmt.Fprintf(w, "%d\t%s\t%.1f\t%d%%\n",
					i+1, rec.Template.Name, rec.Score, rec.MatchPercentage)
			}
			return nil
		},
	}
}

func browseCapsulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse capsules in an interactive terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			templates, err := loadCatalog()
			if err != nil {
				return err
			}
			inventory, err := loadInventory(ctx, store)
			if err != nil {
				return err
			}

			manual := make(map[string]map[string]model.WardrobeItem, len(templates))
			for _, tmpl := range templates {
				resolved, resolveErr := store.ResolveManualMatches(ctx, tmpl.ID)
				if resolveErr != nil {
					return resolveErr
				}
				if resolved != nil {
					manual[tmpl.ID] = resolved
				}
			}

			return tui.Run(ctx, tui.Config{
				Templates:     templates,
				Inventory:     inventory,
				ManualMatches: manual,
			})
		},
	}
}

func printMatchResult(tmpl model.CapsuleTemplate, match model.MatchResult) {
	fmt.Println(cli.FormatTitle(tmpl.Name))
	fmt.Printf("%d%% complete, $%.2f to finish\n",
		capsule.CompletionPercentage(match, tmpl), capsule.Budget(match.Missing))

	if len(match.Exact) > 0 {
		fmt.Println(cli.SuccessStyle.Render("\nYou already own:"))
		for _, exact := range match.Exact {
			fmt.Printf("  %s %s (%s)\n", cli.SuccessIcon, exact.TemplateItem.Description, exact.UserItem.Analysis)
		}
	}
	if len(match.Similar) > 0 {
		fmt.Println(cli.WarningStyle.Render("\nClose enough:"))
		for _, similar := range match.Similar {
			fmt.Printf("  ~ %s (%s) — %s\n", similar.TemplateItem.Description, similar.UserItem.Analysis, similar.Reason)
		}
	}
	if len(match.Missing) > 0 {
		fmt.Println(cli.ErrorStyle.Render("\nStill needed:"))
		for _, slot := range match.Missing {
			fmt.Printf("  %s %s\n", cli.ErrorIcon, slot.Description)
		}
	}
}
