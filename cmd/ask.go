package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ragline/ragline/internal/config"
	"github.com/ragline/ragline/internal/llm"
	"github.com/ragline/ragline/internal/pipeline"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Run one question through the pipeline from the terminal",
	Long:  `Sends a single question through the validate-retrieve-complete pipeline and prints the answer, without starting the HTTP server.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().Bool("json", false, "print the full outcome as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return fmt.Errorf("creating LLM provider: %w", err)
	}

	pipe := pipeline.New(cfg, provider, logger)

	outcome, err := pipe.Process(context.Background(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	}

	fmt.Println(outcome.Answer)
	if len(outcome.Sources) > 0 {
		fmt.Printf("\nSources (%d):\n", len(outcome.Sources))
		for i, src := range outcome.Sources {
			fmt.Printf("  %d. %s\n", i+1, truncate(src, 120))
		}
	}
	fmt.Printf("\n[%s, %.1fms]\n", outcome.QueryID, outcome.ProcessingTimeMS)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
