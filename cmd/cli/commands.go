package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	scorePeriod string
	scoreTypes  string
)

func init() {
	scoreCmd.Flags().StringVar(&scorePeriod, "period", "", "Period filter (1m, 3m, 6m, 1y, all)")
	scoreCmd.Flags().StringVar(&scoreTypes, "types", "", "Comma-separated match types")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(schedulesCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(adminMetricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List the members in the club store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/members")
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the player score table",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/score"
		sep := "?"
		if scorePeriod != "" {
			endpoint += sep + "period=" + scorePeriod
			sep = "&"
		}
		if scoreTypes != "" {
			endpoint += sep + "types=" + scoreTypes
		}
		return performGetRequest(endpoint)
	},
}

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "List the schedules for the current month",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/schedules")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List all recorded matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var adminMetricsCmd = &cobra.Command{
	Use:   "admin-metrics",
	Short: "Get the persistent usage counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/admin/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if adminKey != "" {
		req.Header.Set("X-Admin-Key", adminKey)
	}

	resp, err := http.DefaultClient.Do(req)
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
