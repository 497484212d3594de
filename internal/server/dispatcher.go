package server

import (
	"context"

	"ngmcp/internal/content"
	"ngmcp/internal/logging"
	"ngmcp/internal/rules"

	"github.com/mark3labs/mcp-go/mcp"
)

// Dispatcher routes inbound requests to registered handlers and owns the
// failure contract: on the tool path every failure, including an unknown
// name, becomes an error-flagged content envelope; on the prompt path
// failures reject the request, since that protocol has no isError flag.
type Dispatcher struct {
	tools   *ToolRegistry
	prompts *PromptRegistry
	logger  *logging.AppLogger
}

// NewDispatcher builds the registries over the given store and engine. The
// dispatcher is read-only after construction.
func NewDispatcher(store *content.Store, engine *rules.Engine, logger *logging.AppLogger) (*Dispatcher, error) {
	tools, err := newToolRegistry(store, engine)
	if err != nil {
		return nil, err
	}
	prompts, err := newPromptRegistry(store)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		tools:   tools,
		prompts: prompts,
		logger:  logger,
	}, nil
}

// CallTool executes the named tool. It never fails: every error, from an
// unknown name to a bad argument, comes back as an error-flagged result so
// callers always receive a structured envelope.
func (d *Dispatcher) CallTool(ctx context.Context, request mcp.CallToolRequest) *mcp.CallToolResult {
	name := request.Params.Name

	entry, ok := d.tools.Lookup(name)
	if !ok {
		d.logger.Warn("Tool call for unregistered tool", "tool", name)
		return errorResult(&UnknownToolError{Name: name})
	}

	result, err := entry.Handler(ctx, request)
	if err != nil {
		d.logger.Debug("Tool call failed", "tool", name, "error", err)
		return errorResult(err)
	}
	return result
}

// errorResult wraps a handler failure into the tool-call failure envelope.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}

// GetPrompt executes the named prompt. Failures propagate as errors and
// surface to the caller as a rejected request.
func (d *Dispatcher) GetPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := request.Params.Name

	entry, ok := d.prompts.Lookup(name)
	if !ok {
		d.logger.Warn("Prompt request for unregistered prompt", "prompt", name)
		return nil, &UnknownPromptError{Name: name}
	}

	return entry.Handler(ctx, request)
}

// ListTools returns the tool specs in their fixed listing order.
func (d *Dispatcher) ListTools() []mcp.Tool {
	return d.tools.Specs()
}

// ListPrompts returns the prompt specs in their fixed listing order.
func (d *Dispatcher) ListPrompts() []mcp.Prompt {
	return d.prompts.Specs()
}
