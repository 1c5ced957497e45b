package app

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abapcodestudio/codestudio/internal/channel"
	"github.com/abapcodestudio/codestudio/internal/client"
	"github.com/abapcodestudio/codestudio/internal/config"
	"github.com/abapcodestudio/codestudio/internal/credential"
	"github.com/abapcodestudio/codestudio/internal/logger"
	"github.com/abapcodestudio/codestudio/internal/ui"
	"github.com/abapcodestudio/codestudio/internal/ui/panels"
)

// Focus represents which side of the screen receives keys
type Focus int

const (
	FocusSidebar Focus = iota
	FocusPanel
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusSidebar:
		return "Sidebar"
	case FocusPanel:
		return "Panel"
	default:
		return "Unknown"
	}
}

// frameBuffer bounds how many channel frames may wait for the UI loop.
const frameBuffer = 64

// Options configures a Model.
type Options struct {
	Config  *config.Config
	Client  *client.Client
	Store   *credential.Store // optional; enables the credential watcher
	Version string

	// TargetSystem is the SAP system prompts and catalog queries go to.
	// Empty lets the backend pick.
	TargetSystem string

	// Offline skips the real-time channel and the initial catalog load.
	Offline bool
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	client  *client.Client
	store   *credential.Store
	version string
	log     *slog.Logger

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	router  *ui.Router
	modal   *ui.Modal

	width  int
	height int
	focus  Focus

	targetSystem string
	offline      bool

	// lastSession is the most recent AI session created from the chat panel.
	lastSession *client.SessionResponse

	frames       chan channel.Frame
	channelState ui.ChannelState
	tokens       <-chan string

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new app model
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{APIURL: config.DefaultAPIURL}
	}
	log := logger.WithComponent("app")

	theme, ok := ui.ResolveTheme(cfg.GetTheme())
	if !ok {
		log.Warn("unknown theme, using default", "theme", cfg.GetTheme(), "default", theme)
	}
	ui.SetTheme(theme)

	start, ok := panels.Parse(cfg.StartPanel)
	if !ok {
		if cfg.StartPanel != "" {
			log.Warn("unknown start panel, using default", "panel", cfg.StartPanel, "default", panels.Default)
		}
		start = panels.Default
	}

	cl := opts.Client
	if cl == nil {
		cl = client.New(cfg.APIURL, "")
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		config:       cfg,
		client:       cl,
		store:        opts.Store,
		version:      opts.Version,
		log:          log,
		header:       ui.NewHeader(),
		footer:       ui.NewFooter(),
		sidebar:      ui.NewSidebar(),
		router:       ui.NewRouter(start),
		modal:        ui.NewModal(),
		focus:        FocusSidebar,
		targetSystem: opts.TargetSystem,
		offline:      opts.Offline,
		frames:       make(chan channel.Frame, frameBuffer),
		channelState: ui.ChannelOff,
		ctx:          ctx,
		cancel:       cancel,
	}

	m.sidebar.SetActive(start)
	m.sidebar.SetFocused(true)
	m.header.SetPanelTitle(m.router.ActivePanel().Title())
	m.header.SetAPIURL(cl.BaseURL())
	m.header.SetChannelState(m.channelState)
	m.footer.SetContext(true, start)

	return m
}

// Init starts the background listeners
func (m *Model) Init() tea.Cmd {
	if m.offline {
		return nil
	}
	return tea.Batch(
		m.connectChannel(),
		m.listenForFrames(),
		m.watchCredentials(),
		m.loadObjects(""),
		channelPollTick(),
	)
}

// Close stops the channel and any watchers. Safe to call more than once.
func (m *Model) Close() {
	m.cancel()
	if !m.offline {
		m.client.CloseChannel()
	}
}

// Focus returns which side has keyboard focus
func (m *Model) Focus() Focus {
	return m.focus
}

// Router exposes the view router
func (m *Model) Router() *ui.Router {
	return m.router
}

// setFocus moves keyboard focus and keeps focusable panels in sync
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.sidebar.SetFocused(f == FocusSidebar)

	fp, ok := m.router.ActivePanel().(panels.Focusable)
	if !ok {
		return nil
	}
	if f == FocusPanel {
		return fp.Focus()
	}
	fp.Blur()
	return nil
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == FocusSidebar {
		return m.setFocus(FocusPanel)
	}
	return m.setFocus(FocusSidebar)
}

// navigate switches the active panel, carrying panel focus over
func (m *Model) navigate(id panels.ID) tea.Cmd {
	if fp, ok := m.router.ActivePanel().(panels.Focusable); ok {
		fp.Blur()
	}
	m.router.Navigate(id)
	m.sidebar.SetActive(id)
	m.header.SetPanelTitle(m.router.ActivePanel().Title())

	if m.focus == FocusPanel {
		if fp, ok := m.router.ActivePanel().(panels.Focusable); ok {
			return fp.Focus()
		}
	}
	return nil
}

func (m *Model) toggleSidebar() {
	collapsed := m.router.ToggleSidebarCollapse()
	m.sidebar.SetCollapsed(collapsed)
	ui.GetViewContext().SetSidebarCollapsed(collapsed)
	m.updateSizes()
}

// capturesInput reports whether the active panel wants raw keys
func (m *Model) capturesInput() bool {
	if m.focus != FocusPanel {
		return false
	}
	c, ok := m.router.ActivePanel().(interface{ CapturesInput() bool })
	return ok && c.CapturesInput()
}

func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)
	ctx.SetSidebarCollapsed(m.router.Collapsed())

	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
}
