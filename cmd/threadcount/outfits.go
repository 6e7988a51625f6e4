package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/threadcount/threadcount/internal/cli"
	"github.com/threadcount/threadcount/internal/model"
	"github.com/threadcount/threadcount/internal/outfit"
)

func outfitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outfits",
		Short: "Outfit math for your wardrobe",
		Long:  `Count the outfit combinations your wardrobe supports and find the purchases that unlock the most new ones.`,
	}

	cmd.AddCommand(countOutfitsCmd())
	cmd.AddCommand(suggestOutfitsCmd())
	cmd.AddCommand(potentialOutfitsCmd())

	return cmd
}

func countOutfitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count distinct outfit combinations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			inventory, err := loadInventory(ctx, store)
			if err != nil {
				return err
			}

			counts := outfit.Tally(inventory)
			total := outfit.Count(inventory)

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s %d outfits", cli.SparkleIcon, total)))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()
			fmt.Fprintf(w, "Tops\t%d\n", counts.Tops)
			fmt.Fprintf(w, "Bottoms\t%d\n", counts.Bottoms)
			fmt.Fprintf(w, "Shoes\t%d\n", counts.Shoes)
			fmt.Fprintf(w, "Dresses\t%d\n", counts.Dresses)
			fmt.Fprintf(w, "Outerwear\t%d\n", counts.Outerwear)
			fmt.Fprintf(w, "Accessories\t%d\n", counts.Accessories)
			return nil
		},
	}
}

func suggestOutfitsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Rank owned items by the outfits they unlock",
		Long: `Treat classified items as the candidate pool and rank them by how many
new outfit combinations each would add to what you wear today. Useful for
deciding what to keep when paring a wardrobe down.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			inventory, err := loadInventory(ctx, store)
			if err != nil {
				return err
			}
			if len(inventory) == 0 {
				fmt.Println(cli.InfoStyle.Render("No items yet. Use 'threadcount items add' to start your wardrobe."))
				return nil
			}

			suggestions := outfit.SuggestNext(nil, inventory, top)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Item"),
				headerStyle.Render("Category"),
				headerStyle.Render("Unlocks"),
				headerStyle.Render("New Total"))

			for _, s := range suggestions {
				desc := s.Item.Analysis
				if desc == "" {
					desc = s.Item.ID
				}
				fmt.Fprintf(w, "%s\t%s\t+%d\t%d\n", desc, s.Item.Category, s.OutfitIncrease, s.NewTotal)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 5, "number of suggestions to show")
	return cmd
}

func potentialOutfitsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "potential",
		Short: "Show outfits unlocked by one more item per category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			inventory, err := loadInventory(ctx, store)
			if err != nil {
				return err
			}
			counts := outfit.Tally(inventory)

			categories := model.AllCategories
			if category != "" {
				parsed, parseErr := model.ParseCategory(category)
				if parseErr != nil {
					return parseErr
				}
				categories = []model.Category{parsed}
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\n",
				headerStyle.Render("Category"),
				headerStyle.Render("Outfits Unlocked"))

			for _, cat := range categories {
				fmt.Fprintf(w, "%s\t+%d\n", cat, outfit.Potential(cat, counts))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "limit to one category")
	return cmd
}
