// board-mcp serves the job board to agent clients over MCP stdio, reading the
// same store as the board service. Logs go to stderr; stdout carries the
// protocol.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"jobmate/board-service/internal/app"
	"jobmate/board-service/internal/config"
	"jobmate/board-service/internal/jobs"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	app.SetupLogging(cfg, os.Stderr, "board-mcp")

	ctx := context.Background()
	deps, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer deps.Close()

	svc := jobs.NewService(deps.Store, deps.Recs, deps.Publisher, jobs.Options{
		BlockedTerms: cfg.BlockedTerms,
		TopN:         cfg.RecommendTopN,
	})

	s := server.NewMCPServer("jobmate-board", version)
	(&tools{svc: svc}).register(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
