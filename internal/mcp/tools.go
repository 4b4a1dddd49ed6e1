package mcp

import (
	"context"
	"fmt"
	"sort"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/paneless/sash"
)

func (s *Server) handleOpenWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args OpenWindowInput) (*mcpsdk.CallToolResult, OpenWindowOutput, error) {
	if args.Title == "" {
		return nil, OpenWindowOutput{}, fmt.Errorf("title must not be empty")
	}

	win, err := sash.NewWindow(s.conn, args.Title)
	if err != nil {
		return nil, OpenWindowOutput{}, fmt.Errorf("failed to open window: %w", err)
	}

	s.mu.Lock()
	s.windows[uint32(win.ID())] = &trackedWindow{win: win, title: args.Title}
	s.mu.Unlock()

	return nil, OpenWindowOutput{Window: uint32(win.ID()), Title: args.Title}, nil
}

func (s *Server) handlePollEvents(_ context.Context, _ *mcpsdk.CallToolRequest, args PollEventsInput) (*mcpsdk.CallToolResult, PollEventsOutput, error) {
	s.mu.Lock()
	tw, ok := s.windows[args.Window]
	s.mu.Unlock()
	if !ok {
		return nil, PollEventsOutput{}, fmt.Errorf("unknown window %d", args.Window)
	}

	tw.win.Poll()
	evs := tw.win.Events()
	out := PollEventsOutput{Events: make([]string, 0, len(evs))}
	for _, ev := range evs {
		out.Events = append(out.Events, formatEvent(ev))
	}
	return nil, out, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	s.mu.Lock()
	out := ListWindowsOutput{Windows: make([]WindowInfo, 0, len(s.windows))}
	for id, tw := range s.windows {
		out.Windows = append(out.Windows, WindowInfo{Window: id, Title: tw.title})
	}
	s.mu.Unlock()

	sort.Slice(out.Windows, func(i, j int) bool {
		return out.Windows[i].Window < out.Windows[j].Window
	})
	return nil, out, nil
}

func (s *Server) handleCloseWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args CloseWindowInput) (*mcpsdk.CallToolResult, CloseWindowOutput, error) {
	s.mu.Lock()
	tw, ok := s.windows[args.Window]
	if ok {
		delete(s.windows, args.Window)
	}
	s.mu.Unlock()
	if !ok {
		return nil, CloseWindowOutput{}, fmt.Errorf("unknown window %d", args.Window)
	}

	tw.win.Close()
	return nil, CloseWindowOutput{Closed: true}, nil
}

func (s *Server) handleListScreens(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListScreensInput) (*mcpsdk.CallToolResult, ListScreensOutput, error) {
	screens, err := s.conn.Screens()
	if err != nil {
		return nil, ListScreensOutput{}, fmt.Errorf("failed to list screens: %w", err)
	}

	out := ListScreensOutput{Screens: make([]ScreenInfo, 0, len(screens))}
	for _, sc := range screens {
		out.Screens = append(out.Screens, ScreenInfo{
			Name: sc.Name, X: sc.X, Y: sc.Y, Width: sc.Width, Height: sc.Height,
		})
	}
	return nil, out, nil
}

// formatEvent renders one event as a stable single-line string for tool
// output.
func formatEvent(ev sash.Event) string {
	switch e := ev.(type) {
	case sash.CloseRequest:
		return "close-request"
	case sash.KeyDown:
		return "key-down " + e.Key.String()
	case sash.KeyUp:
		return "key-up " + e.Key.String()
	case sash.KeyRepeat:
		return "key-repeat " + e.Key.String()
	case sash.Focus:
		if e.Gained {
			return "focus-gained"
		}
		return "focus-lost"
	default:
		return fmt.Sprintf("unknown event %T", ev)
	}
}
