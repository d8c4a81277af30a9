package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aqqnoor/aunichance/internal/advisor"
	"github.com/aqqnoor/aunichance/internal/config"
	"github.com/aqqnoor/aunichance/internal/db"
	"github.com/aqqnoor/aunichance/internal/llm"
	"github.com/aqqnoor/aunichance/internal/types"
)

var (
	tipsProfilePath string
	tipsSavedOnly   bool
	tipsVerbose     bool
)

var tipsCmd = &cobra.Command{
	Use:   "tips <program-id>",
	Short: "Generate or list improvement tips for a program",
	Long: `Generate improvement tips for a student profile against a program's stored
requirements, or list previously saved tips with --saved.`,
	Args: cobra.ExactArgs(1),
	RunE: runTips,
}

func init() {
	tipsCmd.Flags().StringVar(&tipsProfilePath, "profile", "", "Path to a profile JSON file")
	tipsCmd.Flags().BoolVar(&tipsSavedOnly, "saved", false, "List saved tips instead of generating")
	tipsCmd.Flags().BoolVarP(&tipsVerbose, "verbose", "v", false, "Print formatted stage summaries to stderr")
	rootCmd.AddCommand(tipsCmd)
}

func runTips(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	programID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid program id %q: %w", args[0], err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	opts := advisor.Options{
		FetchTimeout: cfg.FetchTimeout,
		LLMTimeout:   cfg.LLMTimeout,
	}
	if tipsVerbose {
		// Summaries go to stderr so stdout stays machine-readable JSON.
		opts.Verbose = os.Stderr
	}
	service := advisor.NewService(database, client, opts)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if tipsSavedOnly {
		saved, err := service.GetSavedTips(ctx, programID)
		if err != nil {
			return err
		}
		return encoder.Encode(saved)
	}

	if tipsProfilePath == "" {
		return fmt.Errorf("--profile is required to generate tips")
	}
	data, err := os.ReadFile(tipsProfilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}
	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	generated, err := service.GenerateTips(ctx, programID, &profile)
	if err != nil {
		return err
	}
	return encoder.Encode(generated)
}
