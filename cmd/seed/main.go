package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"
)

const (
	defaultCount   = 30
	defaultBaseURL = "http://127.0.0.1:8001"
	requestTimeout = 10 * time.Second
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create demo repair tickets through the techrepair API",
	Long: `Create demo repair tickets through the techrepair API.

Examples:
  seed --count 30 --base-url http://127.0.0.1:8001
  seed --count 5 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		baseURL, _ := cmd.Flags().GetString("base-url")
		seed, _ := cmd.Flags().GetUint64("seed")

		if count < 0 {
			return fmt.Errorf("--count must not be negative")
		}

		gofakeit.Seed(seed)

		s := &seeder{
			target: repairsURL(baseURL),
			client: &http.Client{Timeout: requestTimeout},
			out:    cmd.OutOrStdout(),
			errOut: cmd.ErrOrStderr(),
		}

		return s.run(cmd.Context(), count)
	},
}

func init() {
	rootCmd.Flags().Int("count", defaultCount, "number of repairs to create")
	rootCmd.Flags().String("base-url", defaultBaseURL, "techrepair server base URL")
	rootCmd.Flags().Uint64("seed", 0, "random seed, 0 picks a random one")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errPartialSeed) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
