// Package server exposes discovery and input as MCP tools so agents can
// drive the screen the same way the interactive modes do.
package server

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/yhao3/hinto/internal/platform"
	"github.com/yhao3/hinto/internal/scan"
	"github.com/yhao3/hinto/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
	Alphabet  string
}

// Server wraps the MCP server with the platform provider and scan cache.
type Server struct {
	provider *platform.Provider
	builder  *scan.Builder
	cache    *ScanCache
	alphabet string
	log      *slog.Logger

	// providerMu serializes accessibility and input calls; the underlying
	// APIs are not safe for concurrent use.
	providerMu sync.Mutex

	mcp *mcpserver.MCPServer
}

// New creates and configures an MCP server with the discovery tools.
func New(cfg Config, provider *platform.Provider, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		provider: provider,
		builder:  scan.NewBuilder(provider.AX, log, false),
		cache:    NewScanCache(cfg.CacheTTL),
		alphabet: cfg.Alphabet,
		log:      log,
	}

	s.mcp = mcpserver.NewMCPServer("hinto", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("discover",
			mcp.WithDescription("Scan the frontmost window for clickable elements. Returns labeled elements with roles, frames, and click coordinates."),
		),
		s.handleDiscover,
	)

	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Click an element by its label from a previous discover call, rescanning if the result is stale"),
			mcp.WithString("label", mcp.Description("Element label (e.g. 'A', 'SD')"), mcp.Required()),
			mcp.WithString("button", mcp.Description("Mouse button: left, right (default: left)")),
		),
		s.handleClick,
	)

	s.mcp.AddTool(
		mcp.NewTool("scroll",
			mcp.WithDescription("Scroll in the frontmost window"),
			mcp.WithString("direction", mcp.Description("Scroll direction: up, down, left, right"), mcp.Required()),
			mcp.WithNumber("amount", mcp.Description("Scroll lines (default: 3)")),
		),
		s.handleScroll,
	)
}
