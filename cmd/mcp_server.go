package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"noteremote/internal/model"
	"noteremote/internal/resolve"
)

// mcpServer wraps the MCP server with one long-lived app. Tool calls are
// serialized with opMu: the session's cached container and the signature
// store are single-operation state, and two concurrent scrolls would fight
// over the same UI anyway.
type mcpServer struct {
	app  *app
	opMu sync.Mutex
	mcp  *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

func newMCPServer() (*mcpServer, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{app: a}
	s.mcp = mcpserver.NewMCPServer("noteremote", rootCmd.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
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

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("windows",
			mcp.WithDescription("List visible OneNote windows (handle, title, class, pid)"),
			mcp.WithBoolean("all", mcp.Description("List every visible window, not just OneNote")),
		),
		s.handleWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("connect",
			mcp.WithDescription("Connect to a OneNote window and store its identity signature"),
			mcp.WithString("title", mcp.Description("Pick the window whose title contains this substring")),
			mcp.WithNumber("handle", mcp.Description("Pick the window with this exact handle")),
		),
		s.handleConnect,
	)

	s.mcp.AddTool(
		mcp.NewTool("center",
			mcp.WithDescription("Center the selected row in the connected window's navigation pane"),
		),
		s.handleCenter,
	)

	s.mcp.AddTool(
		mcp.NewTool("select",
			mcp.WithDescription("Select a navigation-pane row by text, optionally fuzzy and recentered"),
			mcp.WithString("text", mcp.Description("Row text to select"), mcp.Required()),
			mcp.WithBoolean("fuzzy", mcp.Description("Use fuzzy matching")),
			mcp.WithBoolean("center", mcp.Description("Center the row after selecting it")),
		),
		s.handleSelect,
	)

	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Show the stored signature and whether it still resolves to a live window"),
			mcp.WithBoolean("scores", mcp.Description("Include per-window match scores")),
		),
		s.handleStatus,
	)

	s.mcp.AddTool(
		mcp.NewTool("disconnect",
			mcp.WithDescription("Forget the stored window signature"),
		),
		s.handleDisconnect,
	)
}

// stringParam, boolParam, and uint64Param read loosely-typed MCP tool
// arguments with a default.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

func uint64Param(params map[string]interface{}, key string, def uint64) uint64 {
	switch v := params[key].(type) {
	case float64:
		return uint64(v)
	case int:
		return uint64(v)
	case int64:
		return uint64(v)
	}
	return def
}

// toolResult serializes v to YAML for the MCP text response.
func toolResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all := boolParam(request.GetArguments(), "all", false)

	s.opMu.Lock()
	defer s.opMu.Unlock()

	var windows []model.WindowInfo
	if all {
		windows = s.app.provider.Enumerator.Enumerate(nil)
	} else {
		windows = s.app.resolver.EnumerateTarget()
	}
	if windows == nil {
		windows = []model.WindowInfo{}
	}
	return toolResult(windows)
}

func (s *mcpServer) handleConnect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	title := stringParam(params, "title", "")
	handle := uint64Param(params, "handle", 0)

	s.opMu.Lock()
	defer s.opMu.Unlock()

	picked, err := pickWindow(s.app.resolver.EnumerateTarget(), handle, title)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	w, err := s.app.provider.Desktop.OpenWindow(picked.Handle)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sig := resolve.BuildSignature(w, s.app.provider.Inspector)
	if err := s.app.store.Save(sig); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.app.session.Reset()
	return toolResult(sig)
}

func (s *mcpServer) handleCenter(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	w, sig, err := s.app.resolveConnected()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.app.refreshSignature(w, sig)

	return toolResult(s.app.session.CenterSelection(w))
}

func (s *mcpServer) handleSelect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	fuzzy := boolParam(params, "fuzzy", false)
	center := boolParam(params, "center", false)

	s.opMu.Lock()
	defer s.opMu.Unlock()

	w, sig, err := s.app.resolveConnected()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.app.refreshSignature(w, sig)

	result, err := s.app.session.SelectItem(w, text, fuzzy, center)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(result)
}

func (s *mcpServer) handleStatus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	withScores := boolParam(request.GetArguments(), "scores", false)

	s.opMu.Lock()
	defer s.opMu.Unlock()

	sig, ok, err := s.app.store.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report := statusReport{Connected: ok}
	if !ok {
		return toolResult(report)
	}
	report.Signature = &sig

	if w, rerr := s.app.resolver.Resolve(sig); rerr == nil {
		report.Resolved = true
		info := model.WindowInfo{Handle: w.Handle()}
		if title, terr := w.Title(); terr == nil {
			info.Title = title
		}
		report.Window = &info
	}
	if withScores {
		report.Scores = s.app.resolver.ScoreAgainst(sig)
	}
	return toolResult(report)
}

func (s *mcpServer) handleDisconnect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.app.store.Clear(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.app.session.Reset()
	return toolResult(map[string]bool{"disconnected": true})
}
