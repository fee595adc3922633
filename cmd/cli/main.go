package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host     string
	adminKey string
)

var rootCmd = &cobra.Command{
	Use:   "burn-cli",
	Short: "A CLI to interact with the burn-to-win server",
	Long: `A command-line interface for making requests to the various endpoints
of the burn-to-win application.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&adminKey, "admin-key", "", "Admin key for protected endpoints")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
