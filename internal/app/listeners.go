package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abapcodestudio/codestudio/internal/channel"
	"github.com/abapcodestudio/codestudio/internal/notification"
	"github.com/abapcodestudio/codestudio/internal/studio"
	"github.com/abapcodestudio/codestudio/internal/ui"
	"github.com/abapcodestudio/codestudio/internal/ui/panels"
)

// channelPollInterval is how often the header's channel indicator refreshes.
const channelPollInterval = 2 * time.Second

// FrameMsg carries one frame from the real-time channel into the UI loop
type FrameMsg struct {
	Frame channel.Frame
}

// channelOpenedMsg is sent once the channel loop has been started
type channelOpenedMsg struct{}

// channelPollMsg triggers a connection state refresh
type channelPollMsg struct{}

// credentialChangedMsg is sent when another process stores a new token
type credentialChangedMsg struct {
	Token string
}

// Frame payloads pushed by the on-premise agent through the backend.
type (
	pipelineFrame struct {
		Step studio.PipelineStep `json:"step"`
	}
	diffFrame struct {
		Diff studio.CodeDiff `json:"diff"`
	}
	agentStatusFrame struct {
		Systems []struct {
			Name      string `json:"name"`
			Connected bool   `json:"connected"`
		} `json:"systems"`
		Version string `json:"version"`
	}
	errorFrame struct {
		Error string `json:"error"`
	}
)

// enqueueFrame is the channel handler. It runs on the channel's loop
// goroutine and must not block it, so frames are dropped when the UI lags.
func (m *Model) enqueueFrame(f channel.Frame) {
	select {
	case m.frames <- f:
	default:
		m.log.Warn("dropping channel frame, UI is behind", "type", f.Type, "session", f.SessionID)
	}
}

// connectChannel opens the real-time channel
func (m *Model) connectChannel() tea.Cmd {
	c := m.client
	handler := m.enqueueFrame
	return func() tea.Msg {
		c.OpenChannel(handler)
		return channelOpenedMsg{}
	}
}

// reconnectChannel restarts the channel so a new token is used for auth
func (m *Model) reconnectChannel() tea.Cmd {
	if m.offline {
		return nil
	}
	c := m.client
	handler := m.enqueueFrame
	return func() tea.Msg {
		c.CloseChannel()
		c.OpenChannel(handler)
		return channelOpenedMsg{}
	}
}

// listenForFrames creates a command that waits for the next channel frame
func (m *Model) listenForFrames() tea.Cmd {
	frames := m.frames
	done := m.ctx.Done()
	return func() tea.Msg {
		select {
		case f := <-frames:
			return FrameMsg{Frame: f}
		case <-done:
			return nil
		}
	}
}

func channelPollTick() tea.Cmd {
	return tea.Tick(channelPollInterval, func(time.Time) tea.Msg {
		return channelPollMsg{}
	})
}

func (m *Model) pollChannel() tea.Cmd {
	if m.ctx.Err() != nil {
		return nil
	}
	ch := m.client.Channel()
	switch {
	case ch.Connected():
		m.setChannelState(ui.ChannelLive)
	case ch.IsOpen():
		m.setChannelState(ui.ChannelConnecting)
	default:
		m.setChannelState(ui.ChannelOff)
	}
	return channelPollTick()
}

func (m *Model) setChannelState(state ui.ChannelState) {
	if state != m.channelState {
		m.log.Debug("channel state changed", "from", m.channelState, "to", state)
	}
	m.channelState = state
	m.header.SetChannelState(state)
}

// handleFrame applies one inbound frame to the panels
func (m *Model) handleFrame(f channel.Frame) tea.Cmd {
	m.setChannelState(ui.ChannelLive)

	switch f.Type {
	case channel.TypePipeline:
		var p pipelineFrame
		if err := f.Decode(&p); err != nil {
			m.log.Warn("bad pipeline frame", "error", err)
			return nil
		}
		pp, ok := m.router.Panel(panels.Pipeline).(*panels.PipelinePanel)
		if !ok {
			return nil
		}
		before := panels.StateOf(pp.Run())
		if pp.Run().SessionID != f.SessionID {
			before = panels.PipelineInProgress
		}
		after := pp.ApplyStep(f.SessionID, p.Step)
		if before == panels.PipelineInProgress && after != panels.PipelineInProgress {
			m.notifyPipeline(f.SessionID, after)
		}
		if p.Step.Status == studio.StepFail {
			return m.flashWarning("Pipeline step " + p.Step.Name + " failed")
		}
		return nil

	case channel.TypeDiff:
		var d diffFrame
		if err := f.Decode(&d); err != nil {
			m.log.Warn("bad diff frame", "error", err)
			return nil
		}
		m.router.UpdatePanel(panels.Diff, panels.DiffUpdateMsg{SessionID: f.SessionID, Diff: d.Diff})
		m.notify(func() error { return notification.DiffReady(d.Diff.ObjectName) })
		return m.flashInfo(d.Diff.ObjectName + " has a new diff")

	case channel.TypeAgentStatus:
		var s agentStatusFrame
		if err := f.Decode(&s); err != nil {
			m.log.Warn("bad agent status frame", "error", err)
			return nil
		}
		online := 0
		for _, sys := range s.Systems {
			if sys.Connected {
				online++
			}
		}
		return m.flashInfo(formatAgentStatus(online, len(s.Systems)))

	case channel.TypeResult:
		return m.flashSuccess("Session " + f.SessionID + " finished")

	case channel.TypeError:
		var e errorFrame
		if err := f.Decode(&e); err != nil || e.Error == "" {
			e.Error = "unknown agent error"
		}
		return m.flashError("Agent: " + e.Error)
	}

	m.log.Debug("ignoring frame", "type", f.Type)
	return nil
}

func formatAgentStatus(online, total int) string {
	return fmt.Sprintf("Agent online: %d/%d systems connected", online, total)
}

// watchCredentials forwards token changes made by other processes
func (m *Model) watchCredentials() tea.Cmd {
	if m.store == nil {
		return nil
	}
	tokens, err := m.store.Watch(m.ctx, m.log)
	if err != nil {
		m.log.Warn("credential watcher unavailable", "error", err)
		return nil
	}
	m.tokens = tokens
	return listenForCredential(tokens)
}

func listenForCredential(tokens <-chan string) tea.Cmd {
	if tokens == nil {
		return nil
	}
	return func() tea.Msg {
		token, ok := <-tokens
		if !ok {
			return nil
		}
		return credentialChangedMsg{Token: token}
	}
}

func (m *Model) handleCredentialChanged(msg credentialChangedMsg) tea.Cmd {
	next := listenForCredential(m.tokens)
	if msg.Token == m.client.Credential() {
		return next
	}
	if err := m.client.SetCredential(msg.Token); err != nil {
		m.log.Warn("failed to apply new credential", "error", err)
		return next
	}
	m.log.Info("credential changed on disk")
	return tea.Batch(next, m.flashInfo("Token updated"), m.reconnectChannel())
}
