// Package mcp exposes the read-only home graph operations as Model Context
// Protocol tools served over stdio.
//
// Every enumeration operation becomes one tool. Tool arguments use the
// same field names as the JSON request records, so
//
//	{"home": "Main", "room_filter": "kitchen"}
//
// passed to enumerate_accessories is decoded exactly as the HTTP body of
// POST /api/v1/rpc/EnumerateAccessories would be. Results are the JSON
// response records; failures are reported as tool errors rather than
// protocol errors.
//
// Tests in this package use testify's assert and require, unlike the rest
// of the module, because they compare decoded tool results field by field.
package mcp

import (
	"errors"

	"github.com/mark3labs/mcp-go/server"

	"github.com/nerrad567/gray-logic-homegraph/internal/audit"
	"github.com/nerrad567/gray-logic-homegraph/internal/enumerate"
	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
)

// ServerName is reported to MCP clients during initialisation.
const ServerName = "graylogic-homegraph"

// Logger is the logging surface the server needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Deps holds what the tool server needs. Audit is optional.
type Deps struct {
	Service *enumerate.Service
	Store   *homegraph.Store
	Audit   audit.Repository
	Version string
}

// Server wraps the MCP server with the home graph tools.
type Server struct {
	mcpServer *server.MCPServer
	service   *enumerate.Service
	store     *homegraph.Store
	audit     audit.Repository
	logger    Logger
}

// NewServer creates the MCP server and registers every tool.
func NewServer(deps Deps) (*Server, error) {
	if deps.Service == nil {
		return nil, errors.New("enumeration service is required")
	}
	if deps.Store == nil {
		return nil, errors.New("graph store is required")
	}
	version := deps.Version
	if version == "" {
		version = "dev"
	}

	s := &Server{
		service: deps.Service,
		store:   deps.Store,
		audit:   deps.Audit,
		logger:  noopLogger{},
	}
	s.mcpServer = server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
	)
	for _, t := range s.tools() {
		s.mcpServer.AddTool(t.Tool, t.Handler)
	}
	return s, nil
}

// SetLogger sets the logger. Logs must not go to stdout while serving.
func (s *Server) SetLogger(logger Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// ServeStdio serves the tools on stdin and stdout until stdin closes or
// the process receives SIGINT or SIGTERM.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP tools on stdio")
	return server.ServeStdio(s.mcpServer)
}
