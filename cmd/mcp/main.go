// Command mcp serves the portfolio content as MCP tools over stdio or HTTP.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	mcpadapter "portfolio-api/internal/adapter/mcp"
	"portfolio-api/internal/bootstrap"
	"portfolio-api/internal/config"
)

func main() {
	httpAddr := flag.String("http", "", "HTTP server address (e.g., ':8080'); stdio when empty")
	allowGenerate := flag.Bool("generate", false, "register the generate_post tool")
	flag.Parse()

	cfg := config.Load()
	// stdout carries the stdio protocol, so logs go to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	svc, err := bootstrap.Build(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer svc.Close()

	deps := mcpadapter.Deps{Projects: svc.Projects, Skills: svc.Skills, Posts: svc.Posts}
	if *allowGenerate && svc.Generator != nil {
		deps.Generator = svc.Generator
	}
	s := mcpadapter.NewServer(deps)

	if *httpAddr != "" {
		logger.Info("starting MCP server", "addr", *httpAddr)
		if err := server.NewStreamableHTTPServer(s).Start(*httpAddr); err != nil {
			logger.Error("MCP server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("starting MCP server in stdio mode")
	if err := server.ServeStdio(s); err != nil {
		logger.Error("MCP server failed", "error", err)
		os.Exit(1)
	}
}
