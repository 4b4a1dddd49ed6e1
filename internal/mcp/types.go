package mcp

// OpenWindowInput is the input for the open_window tool.
type OpenWindowInput struct {
	Title string `json:"title" jsonschema:"required,Window title. Shown by the window manager."`
}

// OpenWindowOutput is the output for the open_window tool.
type OpenWindowOutput struct {
	Window uint32 `json:"window"`
	Title  string `json:"title"`
}

// PollEventsInput is the input for the poll_events tool.
type PollEventsInput struct {
	Window uint32 `json:"window" jsonschema:"required,Window identifier returned by open_window"`
}

// PollEventsOutput is the output for the poll_events tool.
type PollEventsOutput struct {
	Events []string `json:"events"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes a single open window.
type WindowInfo struct {
	Window uint32 `json:"window"`
	Title  string `json:"title"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// CloseWindowInput is the input for the close_window tool.
type CloseWindowInput struct {
	Window uint32 `json:"window" jsonschema:"required,Window identifier returned by open_window"`
}

// CloseWindowOutput is the output for the close_window tool.
type CloseWindowOutput struct {
	Closed bool `json:"closed"`
}

// ListScreensInput is the input for the list_screens tool.
type ListScreensInput struct{}

// ScreenInfo describes one active output.
type ScreenInfo struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ListScreensOutput is the output for the list_screens tool.
type ListScreensOutput struct {
	Screens []ScreenInfo `json:"screens"`
}
