package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yhao3/hinto/internal/config"
	"github.com/yhao3/hinto/internal/logging"
	"github.com/yhao3/hinto/internal/platform"
	"github.com/yhao3/hinto/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing discovery and click tools",
	Long: `Start a Model Context Protocol (MCP) server so AI agents can discover
labeled elements, click them, and scroll without the interactive hotkey.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  hinto serve
  hinto serve --transport streamable-http --port 8080
  hinto serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 2000, "Scan cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Options{Level: cfg.LogLevel})
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return fmt.Errorf("failed to create platform provider: %w", err)
	}

	serverCfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
		Alphabet:  cfg.Alphabet,
	}
	srv := server.New(serverCfg, provider, log)
	return srv.Serve(serverCfg)
}
