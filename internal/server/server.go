package server

import (
	"context"
	"fmt"

	"ngmcp/internal/config"
	"ngmcp/internal/content"
	"ngmcp/internal/logging"
	"ngmcp/internal/rules"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "angular-guidelines"
	serverVersion = "1.0.0"
)

// Server ties the dispatcher to the mcp-go stdio transport.
type Server struct {
	config     *config.Config
	logger     *logging.AppLogger
	dispatcher *Dispatcher
	mcpServer  *mcpserver.MCPServer
}

// NewServer creates a new MCP server instance. Nothing is loaded until
// Start is called.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
	}
}

// Start initializes the content store, rule engine and registries, then
// serves MCP over stdio until the host closes the stream.
func (s *Server) Start() error {
	s.logger.Info("Initializing MCP server")

	if err := s.initialize(); err != nil {
		return err
	}

	s.logger.Info("MCP server ready, starting stdio communication",
		"tools", len(s.dispatcher.ListTools()),
		"prompts", len(s.dispatcher.ListPrompts()),
	)

	if err := mcpserver.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the MCP server
func (s *Server) Stop() error {
	s.logger.Info("Stopping MCP server")
	// The mcp-go server handles cleanup when the stdio stream closes
	return nil
}

// initialize builds the process-wide read-only state: content store, rule
// engine, dispatcher and the mcp-go server wired to them.
func (s *Server) initialize() error {
	store, err := s.buildStore()
	if err != nil {
		return err
	}

	dispatcher, err := NewDispatcher(store, rules.NewEngine(), s.logger)
	if err != nil {
		return fmt.Errorf("failed to build dispatcher: %w", err)
	}
	s.dispatcher = dispatcher

	srv := mcpserver.NewMCPServer(serverName, serverVersion,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithPromptCapabilities(false),
		mcpserver.WithRecovery(),
	)

	for _, name := range dispatcher.tools.Names() {
		entry, _ := dispatcher.tools.Lookup(name)
		srv.AddTool(entry.Spec, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return dispatcher.CallTool(ctx, request), nil
		})
	}

	for _, name := range dispatcher.prompts.Names() {
		entry, _ := dispatcher.prompts.Lookup(name)
		srv.AddPrompt(entry.Spec, dispatcher.GetPrompt)
	}

	s.mcpServer = srv
	return nil
}

// buildStore loads the content store, honoring the optional guidelines
// file override from the config.
func (s *Server) buildStore() (*content.Store, error) {
	if s.config != nil && s.config.GuidelinesFile != "" {
		s.logger.Info("Loading guidelines from file", "path", s.config.GuidelinesFile)
		store, err := content.NewStoreFromFile(s.config.GuidelinesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load guidelines override: %w", err)
		}
		return store, nil
	}
	return content.NewStore()
}

// Dispatcher exposes the request dispatcher, mainly for tests and the CLI.
func (s *Server) Dispatcher() *Dispatcher {
	return s.dispatcher
}
