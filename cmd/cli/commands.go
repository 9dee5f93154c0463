package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	digestCmd.Flags().Bool("dry-run", false, "Log the digest instead of posting it")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(upcomingCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Trigger the daily digest and post it to Slack",
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		endpoint := "/digest"
		if dryRun {
			endpoint += "?dry_run=true"
		}
		return performGetRequest(endpoint)
	},
}

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Fetch the upcoming games message",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/slack/command/upcoming")
	},
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Fetch the recent results message",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/slack/command/results")
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Fetch the team roster message",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/slack/command/roster")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
