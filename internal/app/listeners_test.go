package app

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abapcodestudio/codestudio/internal/channel"
	"github.com/abapcodestudio/codestudio/internal/notification"
	"github.com/abapcodestudio/codestudio/internal/studio"
	"github.com/abapcodestudio/codestudio/internal/ui"
	"github.com/abapcodestudio/codestudio/internal/ui/panels"
)

type sentNotification struct {
	title, message string
}

func recordNotifications(t *testing.T) *[]sentNotification {
	t.Helper()
	var mu sync.Mutex
	var sent []sentNotification
	notification.SetNotifier(func(title, message string, _ any) error {
		mu.Lock()
		defer mu.Unlock()
		sent = append(sent, sentNotification{title, message})
		return nil
	})
	t.Cleanup(notification.ResetNotifier)
	return &sent
}

func frame(t *testing.T, raw string) channel.Frame {
	t.Helper()
	f, err := channel.ParseFrame([]byte(raw))
	require.NoError(t, err)
	return f
}

func TestHandleFrame_Pipeline(t *testing.T) {
	sent := recordNotifications(t)
	cfg := testConfig()
	cfg.Notifications = true
	m := testModel(cfg, "")

	m.Update(FrameMsg{Frame: frame(t, `{"type":"pipeline","session_id":"s1","step":{"name":"syntax","status":"running"}}`)})
	pipeline := m.Router().Panel(panels.Pipeline).(*panels.PipelinePanel)
	require.Equal(t, "s1", pipeline.Run().SessionID, "a new session replaces the run")
	assert.Empty(t, *sent, "no notification while running")

	m.Update(FrameMsg{Frame: frame(t, `{"type":"pipeline","session_id":"s1","step":{"name":"syntax","status":"pass"}}`)})
	require.Len(t, pipeline.Run().Steps, 1)
	assert.Equal(t, studio.StepPass, pipeline.Run().Steps[0].Status)
	require.Len(t, *sent, 1)
	assert.Equal(t, "Pipeline for s1 passed", (*sent)[0].message)

	// Already finished: further passing steps do not notify again.
	m.Update(FrameMsg{Frame: frame(t, `{"type":"pipeline","session_id":"s1","step":{"name":"atc","status":"warn"}}`)})
	assert.Len(t, *sent, 1)
}

func TestHandleFrame_PipelineFailure(t *testing.T) {
	recordNotifications(t)
	m := testModelWithSize(testConfig(), 120, 40)

	m.Update(FrameMsg{Frame: frame(t, `{"type":"pipeline","session_id":"s2","step":{"name":"unit","status":"fail","detail":"2 tests failed"}}`)})
	pipeline := m.Router().Panel(panels.Pipeline).(*panels.PipelinePanel)
	assert.Equal(t, panels.PipelineFailed, panels.StateOf(pipeline.Run()))
	assert.True(t, m.footer.HasFlash())
}

func TestHandleFrame_Diff(t *testing.T) {
	sent := recordNotifications(t)
	cfg := testConfig()
	cfg.Notifications = true
	m := testModel(cfg, "")

	m.Update(FrameMsg{Frame: frame(t, `{"type":"diff","session_id":"s3","diff":{"object_name":"ZCL_X","object_type":"CLAS","new_source":"CLASS zcl_x DEFINITION.\nENDCLASS."}}`)})

	diff := m.Router().Panel(panels.Diff).(*panels.DiffPanel)
	assert.Equal(t, "s3", diff.SessionID())
	assert.Equal(t, "ZCL_X", diff.Diff().ObjectName)
	require.Len(t, *sent, 1)
	assert.Equal(t, "ZCL_X has a change ready for review", (*sent)[0].message)
}

func TestHandleFrame_NotificationsDisabled(t *testing.T) {
	sent := recordNotifications(t)
	m := testModel(testConfig(), "")

	m.Update(FrameMsg{Frame: frame(t, `{"type":"diff","session_id":"s3","diff":{"object_name":"ZCL_X"}}`)})
	assert.Empty(t, *sent)
}

func TestHandleFrame_StatusAndErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"agent status", `{"type":"agent_status","systems":[{"name":"DEV","connected":true},{"name":"QAS","connected":false}]}`, "Agent online: 1/2 systems connected"},
		{"error", `{"type":"error","session_id":"s1","error":"RFC timeout"}`, "Agent: RFC timeout"},
		{"error without text", `{"type":"error"}`, "Agent: unknown agent error"},
		{"result", `{"type":"result","session_id":"s9"}`, "Session s9 finished"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(testConfig(), 120, 40)
			m.Update(FrameMsg{Frame: frame(t, tt.raw)})
			require.True(t, m.footer.HasFlash())
			assert.Contains(t, m.footer.View(), tt.want)
		})
	}
}

func TestHandleFrame_MarksChannelLive(t *testing.T) {
	m := testModel(testConfig(), "")
	m.Update(FrameMsg{Frame: frame(t, `{"type":"ping"}`)})
	assert.Equal(t, ui.ChannelLive, m.channelState)
	assert.False(t, m.footer.HasFlash(), "pings are silent")
}

func TestEnqueueFrame_DropsWhenFull(t *testing.T) {
	m := testModel(testConfig(), "")
	for range frameBuffer + 5 {
		m.enqueueFrame(channel.Frame{Type: channel.TypePing})
	}
	assert.Len(t, m.frames, frameBuffer)
}

func TestListenForFrames(t *testing.T) {
	m := testModel(testConfig(), "")
	m.enqueueFrame(channel.Frame{Type: channel.TypeResult, SessionID: "s1"})

	msg := m.listenForFrames()()
	fm, ok := msg.(FrameMsg)
	require.True(t, ok, "expected FrameMsg, got %T", msg)
	assert.Equal(t, "s1", fm.Frame.SessionID)

	m.Close()
	assert.Nil(t, m.listenForFrames()(), "listener stops after Close")
}

func TestCredentialChanged(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	tokens := make(chan string, 1)
	m.tokens = tokens

	m.Update(credentialChangedMsg{Token: "acs_rotated"})
	assert.Equal(t, "acs_rotated", m.client.Credential())
	assert.True(t, m.footer.HasFlash())

	close(tokens)
	assert.Nil(t, listenForCredential(tokens)())
}
