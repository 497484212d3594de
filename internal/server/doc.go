// Package server implements the MCP request dispatcher for the Angular
// guidance server, built on the mcp-go library.
//
// The package exposes three tools (get_angular_guidelines,
// get_code_example, validate_angular_code) and two prompts
// (angular_code_review, create_angular_component) to MCP hosts over
// stdio using JSON-RPC 2.0.
//
// # Architecture
//
// All process-wide state is read-only and built once in Server.Start:
// the content store (internal/content), the rule engine (internal/rules)
// and the two registries, composed into a Dispatcher. Handlers are pure,
// terminating computations over in-memory strings; there is no I/O, no
// persistence and no mutation after startup, so overlapping requests are
// safe without locking.
//
// # Error contract
//
// Tool-path failures never escape: the Dispatcher converts every handler
// error, and unknown tool names, into an error-flagged content envelope
// whose text is "Error: " followed by the failure message. Prompt-path
// failures reject the request instead, because the prompt response shape
// has no isError flag. This asymmetry is part of the protocol contract.
//
// # Usage
//
// The server is typically started as a subprocess by an MCP host:
//
//	ngmcp serve
//
// It reads JSON-RPC requests from stdin and writes responses to stdout
// until it receives EOF or is terminated. Logs go to stderr.
package server
