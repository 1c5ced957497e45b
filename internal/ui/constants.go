package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidth is the width of the expanded sidebar including borders
	SidebarWidth = 28

	// SidebarCollapsedWidth fits a shortcut digit and an icon
	SidebarCollapsedWidth = 7

	// MinTerminalWidth and MinTerminalHeight bound layout calculations
	MinTerminalWidth  = 60
	MinTerminalHeight = 12
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)
