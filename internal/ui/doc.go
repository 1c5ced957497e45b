// Package ui provides the user interface components for the codestudio TUI.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├──────────────┬──────────────────────────────────────┤
//	│              │                                      │
//	│  Sidebar     │   Active panel                       │
//	│  (fixed or   │   (one of ten, see package panels)   │
//	│  collapsed)  │                                      │
//	├──────────────┴──────────────────────────────────────┤
//	│ Footer (1 line, key bindings or a flash message)    │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// Router owns the active panel identifier and the sidebar-collapsed flag and
// renders exactly one panel. Sidebar lists the navigation tree and emits
// NavigateMsg. Header shows the active panel and the live channel state.
// Footer shows context bindings and flash messages. Modal hosts the forms in
// package modals.
//
// ViewContext is a singleton that centralizes layout arithmetic.
//
// # Styles
//
// Styles are regenerated from the current Theme by SetTheme and pushed into
// the panels and modals subpackages, which cannot import this package.
package ui
