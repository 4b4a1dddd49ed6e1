// Package mcp exposes window management over the Model Context Protocol so
// agents can open windows and watch their events through stdio.
package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/paneless/sash"
)

const (
	ServerName    = "sash"
	ServerVersion = "0.1.0"
)

// trackedWindow pairs an open window with the title it was created under,
// since the display server does not hand titles back.
type trackedWindow struct {
	win   *sash.Window
	title string
}

// Server is the MCP server over one shared display connection.
type Server struct {
	mcpServer *mcpsdk.Server
	conn      *sash.Connection

	mu      sync.Mutex
	windows map[uint32]*trackedWindow
}

// NewServer connects to the display and builds the tool surface.
func NewServer() (*Server, error) {
	conn, err := sash.Connect()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to display: %w", err)
	}

	s := &Server{
		conn:    conn,
		windows: make(map[uint32]*trackedWindow),
	}
	s.mcpServer = mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, nil)
	s.registerTools()
	return s, nil
}

// Run serves MCP over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close tears down every open window and the display connection.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, tw := range s.windows {
		tw.win.Close()
		delete(s.windows, id)
	}
	s.conn.Close()
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "open_window",
		Description: "Open a titled window on the shared display connection. Returns the window identifier for future reference.",
	}, s.handleOpenWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "poll_events",
		Description: "Poll a window for pending events. Returns the events gathered since the previous poll, oldest first: close requests, key presses/releases/repeats and focus changes.",
	}, s.handlePollEvents)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the windows this server has opened, with their identifiers and titles.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Close a window opened by open_window and release its identifier.",
	}, s.handleCloseWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_screens",
		Description: "List the active screens (monitors) of the display with their geometry.",
	}, s.handleListScreens)
}
