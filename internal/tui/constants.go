package tui

// Layout constants
const (
	// MinimalBorderMargin is consumed by a rounded border on each axis
	MinimalBorderMargin = 2

	// RequestPanelLines is the fixed height of the tab content area
	RequestPanelLines = 8

	// ChromeLines counts the title, method/URL line, tab bar, response
	// header, status bar and borders around the two panels
	ChromeLines = 12

	// MinResponseLines keeps the response viewport usable on small terminals
	MinResponseLines = 3

	// MaxStatusLength truncates footer messages
	MaxStatusLength = 100
)
