package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/threadcount/threadcount/internal/cli"
	"github.com/threadcount/threadcount/internal/packing"
	"github.com/threadcount/threadcount/internal/weather"
)

func packCmd() *cobra.Command {
	var (
		destination string
		latitude    float64
		longitude   float64
		days        int
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Build a weather-aware packing list",
		Long: `Fetch the forecast for a destination and pick items from your wardrobe
to cover the trip: enough tops and bottoms for the length, a rain or warm
layer when the weather calls for one.`,
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

			planner := packing.NewPlanner(weather.NewClient(slog.Default(), ""), slog.Default())
			plan, err := planner.Plan(ctx, inventory, packing.Trip{
				Destination: destination,
				Latitude:    latitude,
				Longitude:   longitude,
				Days:        days,
			})
			if err != nil {
				return err
			}

			printPlan(plan)
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "trip destination name")
	cmd.Flags().Float64Var(&latitude, "lat", 0, "destination latitude")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "destination longitude")
	cmd.Flags().IntVar(&days, "days", 0, "trip length in days")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}

func printPlan(plan *packing.Plan) {
	title := fmt.Sprintf("%s %d-day trip", cli.LuggageIcon, plan.Trip.Days)
	if plan.Trip.Destination != "" {
		title = fmt.Sprintf("%s %d days in %s", cli.LuggageIcon, plan.Trip.Days, plan.Trip.Destination)
	}
	fmt.Println(cli.TitleStyle.Render(title))
	fmt.Printf("%s weather: highs around %.0f°C, lows around %.0f°C, %d rainy day(s)\n",
		plan.Weather.Condition, plan.Weather.AvgHighC, plan.Weather.AvgLowC, plan.Weather.RainyDays)
	fmt.Printf("%d items, %d outfit combinations\n\n", len(plan.Items), plan.Outfits)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("Category"),
		headerStyle.Render("Color"),
		headerStyle.Render("Item"))
	for _, item := range plan.Items {
		desc := item.Analysis
		if desc == "" {
			desc = item.ID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Category, item.Color, desc)
	}
	_ = w.Flush()

	if len(plan.Advice) > 0 {
		fmt.Println()
		for _, note := range plan.Advice {
			fmt.Println(cli.FormatInfo(note))
		}
	}
}
