package main

import (
	"fmt"

	"github.com/Veraticus/kesi-ledger/internal/cli"
	"github.com/Veraticus/kesi-ledger/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with external services",
	}

	cmd.AddCommand(authSheetsCmd())
	return cmd
}

func authSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Authenticate with Google Sheets",
		Long: `Authenticate with Google Sheets using OAuth2.

This opens a consent page, waits for the redirect on a local port and stores
the resulting refresh token as sheets.refresh_token in the config file.
Service account users do not need this; set sheets.service_account_path instead.`,
		RunE: runAuthSheets,
	}

	cmd.Flags().String("client-id", "", "OAuth2 client ID")
	cmd.Flags().String("client-secret", "", "OAuth2 client secret")
	cmd.Flags().String("listen", "127.0.0.1:8080", "address for the OAuth2 callback")

	return cmd
}

func runAuthSheets(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	clientID := viper.GetString("sheets.client_id")
	clientSecret := viper.GetString("sheets.client_secret")
	if flagID, _ := cmd.Flags().GetString("client-id"); flagID != "" {
		clientID = flagID
	}
	if flagSecret, _ := cmd.Flags().GetString("client-secret"); flagSecret != "" {
		clientSecret = flagSecret
	}

	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("OAuth2 credentials not found. Set sheets.client_id and sheets.client_secret in config or use --client-id and --client-secret")
	}

	listen, _ := cmd.Flags().GetString("listen")
	token, err := sheets.Authorize(cmd.Context(), clientID, clientSecret, listen, func(url string) {
		fmt.Fprintln(out, cli.FormatInfo("Open this URL to authorize Kesi Ledger:"))
		fmt.Fprintln(out, url)
	})
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	viper.Set("sheets.client_id", clientID)
	viper.Set("sheets.client_secret", clientSecret)
	viper.Set("sheets.refresh_token", token.RefreshToken)

	if err := viper.WriteConfig(); err != nil {
		fmt.Fprintln(out, cli.FormatWarning("Could not save the refresh token to the config file."))
		fmt.Fprintf(out, "Add this to your config.yaml:\n\nsheets:\n  refresh_token: %q\n", token.RefreshToken)
		return nil
	}

	fmt.Fprintln(out, cli.FormatSuccess("Google Sheets is now configured. Run 'kesi export --format sheets'."))
	return nil
}
