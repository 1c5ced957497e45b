package ui

import (
	"sync"

	"github.com/abapcodestudio/codestudio/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight     int
	FooterHeight     int
	ContentHeight    int
	SidebarWidth     int
	ContentWidth     int
	SidebarCollapsed bool

	mu sync.Mutex
}

var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
			SidebarWidth: SidebarWidth,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.recalculate()

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"contentWidth", v.ContentWidth,
	)
}

// SetSidebarCollapsed switches between the full and the icon-only sidebar.
func (v *ViewContext) SetSidebarCollapsed(collapsed bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.SidebarCollapsed = collapsed
	v.recalculate()
}

func (v *ViewContext) recalculate() {
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = v.TerminalHeight - v.HeaderHeight - v.FooterHeight

	v.SidebarWidth = SidebarWidth
	if v.SidebarCollapsed {
		v.SidebarWidth = SidebarCollapsedWidth
	}
	v.ContentWidth = v.TerminalWidth - v.SidebarWidth
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
