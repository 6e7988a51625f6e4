package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/threadcount/threadcount/internal/cli"
	"github.com/threadcount/threadcount/internal/common"
	"github.com/threadcount/threadcount/internal/model"
	"github.com/threadcount/threadcount/internal/service"
	"github.com/threadcount/threadcount/internal/vision"
)

func itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage wardrobe items",
		Long:  `Add, list, edit, delete, and classify the garments in your wardrobe.`,
	}

	cmd.AddCommand(addItemCmd())
	cmd.AddCommand(listItemsCmd())
	cmd.AddCommand(editItemCmd())
	cmd.AddCommand(deleteItemCmd())
	cmd.AddCommand(classifyItemsCmd())

	return cmd
}

func addItemCmd() *cobra.Command {
	var (
		category string
		photo    string
		analysis string
		color    string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a garment to your wardrobe",
		Long: `Add a garment. Provide a description yourself with --analysis, or
just a --photo and let 'threadcount items classify' fill in the rest.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			parsed, err := model.ParseCategory(category)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			item := &model.WardrobeItem{
				Category:  parsed,
				Analysis:  analysis,
				Color:     strings.ToLower(color),
				PhotoPath: photo,
				Notes:     notes,
			}
			item.ID = item.GenerateHash()[:12]

			if err := store.SaveItem(ctx, item); err != nil {
				if errors.Is(err, common.ErrDuplicateEntry) {
					return fmt.Errorf("an identical item already exists (id %s)", item.ID)
				}
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s item %s", parsed, item.ID)))
			if analysis == "" && photo != "" {
				fmt.Println(cli.InfoStyle.Render("Run 'threadcount items classify' to analyze the photo."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "garment category (top, bottom, shoes, dress, outerwear, accessory)")
	cmd.Flags().StringVar(&photo, "photo", "", "path to a photo of the garment")
	cmd.Flags().StringVar(&analysis, "analysis", "", "free-text description of the garment")
	cmd.Flags().StringVar(&color, "color", "", "dominant color")
	cmd.Flags().StringVar(&notes, "notes", "", "freeform notes")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func listItemsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List wardrobe items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			filter := itemFilter(category)
			items, err := store.GetItems(ctx, filter)
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Println(cli.InfoStyle.Render("No items yet. Use 'threadcount items add' to start your wardrobe."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Category"),
				headerStyle.Render("Color"),
				headerStyle.Render("Description"),
				headerStyle.Render("Tags"))

			for _, item := range items {
				desc := item.Analysis
				if desc == "" {
					desc = cli.SubtleStyle.Render("(not yet classified)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					item.ID, item.Category, item.Color, desc, strings.Join(item.StyleTags, ","))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	return cmd
}

func editItemCmd() *cobra.Command {
	var (
		analysis string
		color    string
		notes    string
		category string
	)

	cmd := &cobra.Command{
		Use:   "edit <item-id>",
		Short: "Edit a wardrobe item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			item, err := store.GetItem(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("analysis") {
				item.Analysis = analysis
			}
			if cmd.Flags().Changed("color") {
				item.Color = strings.ToLower(color)
			}
			if cmd.Flags().Changed("notes") {
				item.Notes = notes
			}
			if cmd.Flags().Changed("category") {
				parsed, parseErr := model.ParseCategory(category)
				if parseErr != nil {
					return parseErr
				}
				item.Category = parsed
			}

			if err := store.UpdateItem(ctx, item); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Updated item " + item.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&analysis, "analysis", "", "new description")
	cmd.Flags().StringVar(&color, "color", "", "new color")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	return cmd
}

func deleteItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Remove a wardrobe item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteItem(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Deleted item " + args[0]))
			return nil
		},
	}
}

func classifyItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Analyze unclassified photos with a vision model",
		Long: `Send every item that has a photo but no description to the configured
vision provider and store the resulting category, description, color and
style tags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			classifier, err := vision.NewClassifier(visionConfig(), slog.Default())
			if err != nil {
				return err
			}
			defer classifier.Close()

			prompter := cli.NewPrompter(nil, nil)

			pending, err := store.GetItemsToClassify(ctx)
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing to classify."))
				return nil
			}

			prompter.StartClassifyProgress(len(pending))
			stats, err := classifier.ClassifyPending(ctx, store, func(_, _ int) {
				prompter.AdvanceClassifyProgress()
			})
			prompter.FinishClassifyProgress()
			if err != nil && !errors.Is(err, common.ErrNoItems) {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Classified %d of %d items (%d failed) in %s",
				stats.Classified, stats.TotalItems, stats.Failed, stats.Duration.Round(time.Millisecond))))
			return nil
		},
	}
}

func itemFilter(category string) service.ItemFilter {
	var filter service.ItemFilter
	if category == "" {
		return filter
	}
	if parsed, err := model.ParseCategory(category); err == nil {
		filter.Category = &parsed
	}
	return filter
}

func visionConfig() vision.Config {
	return vision.Config{
		Provider:   viper.GetString("vision.provider"),
		APIKey:     viper.GetString("vision.api_key"),
		Model:      viper.GetString("vision.model"),
		RateLimit:  viper.GetInt("vision.rate_limit"),
		MaxRetries: viper.GetInt("vision.max_retries"),
	}
}
