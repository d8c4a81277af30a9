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
)

var (
	parseProgramID string
	parseBrowser   bool
	parseVerbose   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <url>",
	Short: "Parse an admission document",
	Long: `Fetch an admission document by URL, classify it, and extract structured
requirements or deadlines. With --program the result is persisted to that
program's row.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseProgramID, "program", "", "Program UUID to persist the result to")
	parseCmd.Flags().BoolVar(&parseBrowser, "browser", false, "Use a headless browser for JS-rendered pages")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print formatted stage summaries to stderr")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if parseBrowser {
		cfg.UseBrowser = true
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var programID *uuid.UUID
	var database *db.DB
	if parseProgramID != "" {
		id, err := uuid.Parse(parseProgramID)
		if err != nil {
			return fmt.Errorf("invalid program id %q: %w", parseProgramID, err)
		}
		programID = &id

		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required with --program")
		}
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	opts := advisor.Options{
		FetchTimeout: cfg.FetchTimeout,
		LLMTimeout:   cfg.LLMTimeout,
		UseBrowser:   cfg.UseBrowser,
	}
	if parseVerbose {
		// Summaries go to stderr so stdout stays machine-readable JSON.
		opts.Verbose = os.Stderr
	}
	service := advisor.NewService(gatewayOrNil(database), client, opts)

	result, err := service.ParseDocument(ctx, args[0], programID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// gatewayOrNil lets parse run without a database when no persistence is asked
// for; the service only touches the gateway when a program id is given.
func gatewayOrNil(database *db.DB) advisor.Gateway {
	if database == nil {
		return nil
	}
	return database
}
