package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nerrad567/gray-logic-homegraph/internal/audit"
	"github.com/nerrad567/gray-logic-homegraph/internal/enumerate"
	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
)

const auditTimeout = 2 * time.Second

// operation returns the handler that runs op with the tool arguments as
// its request record.
func (s *Server) operation(op string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding arguments: %s", err)), nil
		}

		var req any
		decode := func(v any) error {
			req = v
			return json.Unmarshal(args, v)
		}

		start := time.Now()
		resp, err := s.service.Invoke(op, decode)
		s.record(ctx, op, req, resp, err, time.Since(start))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(formatJSON(resp)), nil
	}
}

type graphStatus struct {
	Source   string           `json:"source"`
	LoadedAt time.Time        `json:"loaded_at"`
	Counts   homegraph.Counts `json:"counts"`
}

func (s *Server) handleGraphStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.store.Snapshot()
	return mcp.NewToolResultText(formatJSON(graphStatus{
		Source:   snap.Source,
		LoadedAt: snap.LoadedAt,
		Counts:   snap.Counts(),
	})), nil
}

func (s *Server) record(ctx context.Context, op string, req, resp any, err error, d time.Duration) {
	if s.audit == nil {
		return
	}
	entry := &audit.Entry{
		Operation: op,
		Home:      enumerate.RequestHome(req),
		Transport: audit.TransportMCP,
		Outcome:   audit.OutcomeOf(err),
		ItemCount: enumerate.ItemCount(resp),
		Duration:  d,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()
	if aerr := s.audit.Create(ctx, entry); aerr != nil {
		s.logger.Warn("recording audit entry failed", "operation", op, "error", aerr)
	}
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
