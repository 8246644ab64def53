package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careerpilot/backend/internal/config"
	"github.com/careerpilot/backend/internal/jobsearch"
	"github.com/careerpilot/backend/internal/llm"
	"github.com/careerpilot/backend/internal/pipeline"
	"github.com/careerpilot/backend/internal/resume"
	"github.com/careerpilot/backend/internal/score"
	"github.com/careerpilot/backend/internal/server"
	"github.com/careerpilot/backend/internal/tutor"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume upload, job aggregation, resume scoring, and tutor endpoints.`,
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
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Long-lived clients, constructed once and injected everywhere.
	llmClient, err := llm.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = llmClient.Close() }()

	sources := []jobsearch.Source{
		jobsearch.NewJSearchSource(cfg.RapidAPIKey),
		jobsearch.NewGoogleSource(cfg.GoogleAPIKey, cfg.GoogleCXID),
	}

	extractor := resume.NewExtractor()
	runner := pipeline.New(extractor, llmClient, sources)

	srv := server.New(server.Config{Port: cfg.Port}, server.Deps{
		Runner:    runner,
		Extractor: extractor,
		Scorer:    score.New(llmClient),
		Tutor:     tutor.NewYouTubeClient(cfg.YouTubeAPIKey),
	})

	return srv.Start()
}
