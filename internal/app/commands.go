package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abapcodestudio/codestudio/internal/client"
	"github.com/abapcodestudio/codestudio/internal/clipboard"
	"github.com/abapcodestudio/codestudio/internal/notification"
	"github.com/abapcodestudio/codestudio/internal/studio"
	"github.com/abapcodestudio/codestudio/internal/ui/modals"
	"github.com/abapcodestudio/codestudio/internal/ui/panels"
)

// sessionCreatedMsg is sent when CreateSession returns
type sessionCreatedMsg struct {
	Prompt string
	Resp   *client.SessionResponse
	Err    error
}

// objectsLoadedMsg is sent when ListObjects returns
type objectsLoadedMsg struct {
	Objects []studio.Object
	Err     error
}

// reviewDoneMsg is sent when ReviewSession returns
type reviewDoneMsg struct {
	SessionID string
	Action    studio.ReviewAction
	Resp      *client.ReviewResponse
	Err       error
}

// systemRegisteredMsg is sent when RegisterSystem returns
type systemRegisteredMsg struct {
	Name string
	Resp *client.RegisterSystemResponse
	Err  error
}

func (m *Model) submitPrompt(msg panels.SubmitPromptMsg) tea.Cmd {
	if len(msg.Hints) > 0 {
		if ex, ok := m.router.Panel(panels.Explorer).(*panels.ExplorerPanel); ok {
			ex.SetFilter(msg.Hints[0])
		}
	}

	req := client.SessionRequest{
		Prompt:          msg.Prompt,
		TargetSystem:    m.targetSystem,
		ModelPreference: msg.Model,
	}
	ctx := m.ctx
	c := m.client
	m.log.Debug("creating session", "model", msg.Model, "hints", msg.Hints)
	return func() tea.Msg {
		resp, err := c.CreateSession(ctx, req)
		return sessionCreatedMsg{Prompt: msg.Prompt, Resp: resp, Err: err}
	}
}

func (m *Model) handleSessionCreated(msg sessionCreatedMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warn("create session failed", "error", msg.Err)
		m.router.UpdatePanel(panels.Chat, panels.AssistantReplyMsg{Err: msg.Err})
		return m.flashError("Session failed: " + msg.Err.Error())
	}

	resp := msg.Resp
	m.lastSession = resp
	m.router.UpdatePanel(panels.Chat, panels.AssistantReplyMsg{
		SessionID: resp.SessionID,
		Model:     resp.ModelUsed,
		Content:   summarizeSession(resp),
	})
	if len(resp.Diffs) > 0 {
		m.router.UpdatePanel(panels.Diff, panels.DiffUpdateMsg{SessionID: resp.SessionID, Diff: resp.Diffs[0]})
	}
	if resp.Pipeline != nil {
		run := *resp.Pipeline
		if run.SessionID == "" {
			run.SessionID = resp.SessionID
		}
		m.router.UpdatePanel(panels.Pipeline, panels.PipelineRunMsg{Run: run})
	}
	return m.flashSuccess(fmt.Sprintf("Session %s %s", resp.SessionID, resp.Status))
}

// summarizeSession renders a session result as a chat reply. The first
// changed object's new source is included as a code block.
func summarizeSession(resp *client.SessionResponse) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Session %s is %s.", resp.SessionID, resp.Status)
	if len(resp.ObjectsRead) > 0 {
		fmt.Fprintf(&sb, "\nRead: %s", strings.Join(resp.ObjectsRead, ", "))
	}
	if len(resp.ObjectsModified) > 0 {
		fmt.Fprintf(&sb, "\nModified: %s", strings.Join(resp.ObjectsModified, ", "))
	}
	if resp.Confidence > 0 {
		fmt.Fprintf(&sb, "\nConfidence: %.0f%%", resp.Confidence*100)
	}
	if len(resp.Diffs) > 0 {
		d := resp.Diffs[0]
		fmt.Fprintf(&sb, "\n\n%s (+%d -%d):\n```abap\n%s\n```", d.ObjectName, d.AddedLines, d.RemovedLines, strings.TrimRight(d.NewSource, "\n"))
		if len(resp.Diffs) > 1 {
			fmt.Fprintf(&sb, "\n%d more change(s) in the diff viewer.", len(resp.Diffs)-1)
		}
	}
	return sb.String()
}

func (m *Model) loadObjects(objectType studio.ObjectType) tea.Cmd {
	ctx := m.ctx
	c := m.client
	system := m.targetSystem
	return func() tea.Msg {
		objects, err := c.ListObjects(ctx, system, objectType)
		return objectsLoadedMsg{Objects: objects, Err: err}
	}
}

func (m *Model) handleObjectsLoaded(msg objectsLoadedMsg) tea.Cmd {
	m.router.UpdatePanel(panels.Explorer, panels.ObjectsLoadedMsg{Objects: msg.Objects, Err: msg.Err})
	if msg.Err != nil {
		m.log.Warn("list objects failed", "error", msg.Err)
		return m.flashError("Could not load objects: " + msg.Err.Error())
	}
	return nil
}

func (m *Model) openReview(sessionID string) tea.Cmd {
	if sessionID == "" && m.lastSession != nil {
		sessionID = m.lastSession.SessionID
	}
	if sessionID == "" {
		return m.flashWarning("No session to review")
	}
	var objects []string
	if m.lastSession != nil && m.lastSession.SessionID == sessionID {
		objects = m.lastSession.ObjectsModified
	}
	m.modal.Show(modals.NewReviewState(sessionID, objects))
	return nil
}

func (m *Model) reviewSession(sessionID string, req client.ReviewRequest) tea.Cmd {
	ctx := m.ctx
	c := m.client
	return func() tea.Msg {
		resp, err := c.ReviewSession(ctx, sessionID, req)
		return reviewDoneMsg{SessionID: sessionID, Action: req.Action, Resp: resp, Err: err}
	}
}

func (m *Model) handleReviewDone(msg reviewDoneMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warn("review failed", "session", msg.SessionID, "error", msg.Err)
		return m.flashError("Review failed: " + msg.Err.Error())
	}
	status := msg.Action.ResultingStatus()
	if msg.Resp != nil && msg.Resp.Status != "" {
		status = msg.Resp.Status
	}
	return m.flashSuccess(fmt.Sprintf("Session %s: %s", msg.SessionID, status))
}

func (m *Model) registerSystem(req client.RegisterSystemRequest) tea.Cmd {
	ctx := m.ctx
	c := m.client
	return func() tea.Msg {
		resp, err := c.RegisterSystem(ctx, req)
		return systemRegisteredMsg{Name: req.Name, Resp: resp, Err: err}
	}
}

func (m *Model) handleSystemRegistered(msg systemRegisteredMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warn("register system failed", "system", msg.Name, "error", msg.Err)
		return m.flashError("Register failed: " + msg.Err.Error())
	}
	if m.targetSystem == "" {
		m.targetSystem = msg.Name
	}
	text := "Registered " + msg.Name
	if msg.Resp != nil && msg.Resp.AgentToken != "" {
		if err := clipboard.WriteText(msg.Resp.AgentToken); err == nil {
			text += "; agent token copied"
		} else {
			m.log.Debug("agent token not copied", "error", err)
		}
	}
	return m.flashSuccess(text)
}

func (m *Model) copyText(msg panels.CopyTextMsg) tea.Cmd {
	if err := clipboard.WriteText(msg.Text); err != nil {
		m.log.Warn("clipboard write failed", "error", err)
		return m.flashError("Clipboard unavailable")
	}
	return m.flashSuccess("Copied " + msg.Label)
}

func (m *Model) notify(send func() error) {
	if !m.config.GetNotificationsEnabled() {
		return
	}
	if err := send(); err != nil {
		m.log.Debug("notification failed", "error", err)
	}
}

// notifyPipeline reports a finished run once.
func (m *Model) notifyPipeline(sessionID string, state panels.PipelineState) {
	switch state {
	case panels.PipelinePassed:
		m.notify(func() error { return notification.PipelineFinished(sessionID, true) })
	case panels.PipelineFailed:
		m.notify(func() error { return notification.PipelineFinished(sessionID, false) })
	}
}
