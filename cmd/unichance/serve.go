package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aqqnoor/aunichance/internal/advisor"
	"github.com/aqqnoor/aunichance/internal/config"
	"github.com/aqqnoor/aunichance/internal/db"
	"github.com/aqqnoor/aunichance/internal/llm"
	"github.com/aqqnoor/aunichance/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for document parsing and tip generation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		database.Close()
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	service := advisor.NewService(database, client, advisor.Options{
		FetchTimeout: cfg.FetchTimeout,
		LLMTimeout:   cfg.LLMTimeout,
		UseBrowser:   cfg.UseBrowser,
	})

	srv := server.New(server.Config{Port: cfg.Port}, database, service)
	return srv.Start()
}
