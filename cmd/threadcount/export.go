package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/threadcount/threadcount/internal/capsule"
	"github.com/threadcount/threadcount/internal/catalog"
	"github.com/threadcount/threadcount/internal/cli"
	"github.com/threadcount/threadcount/internal/common"
	"github.com/threadcount/threadcount/internal/config"
	"github.com/threadcount/threadcount/internal/sheets"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export capsule plans to external services",
	}

	cmd.AddCommand(exportSheetsCmd())
	cmd.AddCommand(exportAuthCmd())
	return cmd
}

func exportSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <template-id>",
		Short: "Export a capsule plan to Google Sheets",
		Long: `Write the matched capsule plan, including the shopping list for missing
slots, to a Google Sheets spreadsheet. Credentials come from the
GOOGLE_SHEETS_* environment variables.`,
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

			config := sheets.DefaultConfig()
			if err := config.LoadFromEnv(); err != nil {
				return err
			}
			if err := config.Validate(); err != nil {
				return err
			}

			writer, err := sheets.NewWriter(ctx, config, slog.Default())
			if err != nil {
				return common.NewUserError("failed to connect to Google Sheets", err)
			}

			if err := writer.Export(ctx, tmpl, match); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %q to spreadsheet %q", tmpl.Name, config.SpreadsheetName)))
			return nil
		},
	}
}

func exportAuthCmd() *cobra.Command {
	var tokenFile string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with Google Sheets",
		Long: `Run the interactive OAuth2 flow against Google and cache the resulting
token. The refresh token it prints can be stored in
GOOGLE_SHEETS_REFRESH_TOKEN for non-interactive exports.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			clientID := os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
			clientSecret := os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
			if clientID == "" || clientSecret == "" {
				return fmt.Errorf("%w: GOOGLE_SHEETS_CLIENT_ID and GOOGLE_SHEETS_CLIENT_SECRET", common.ErrMissingConfig)
			}

			token, err := sheets.GetOrCreateToken(ctx, sheets.OAuth2Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				TokenFile:    config.ExpandPath(tokenFile),
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Authenticated with Google Sheets"))
			if token.RefreshToken != "" {
				fmt.Println(cli.SubtleStyle.Render("Refresh token (set GOOGLE_SHEETS_REFRESH_TOKEN):"))
				fmt.Println(token.RefreshToken)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenFile, "token-file", "~/.config/threadcount/sheets-token.json", "where to cache the OAuth2 token")
	return cmd
}
