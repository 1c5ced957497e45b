package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abapcodestudio/codestudio/internal/errors"
	"github.com/abapcodestudio/codestudio/internal/studio"
)

// recordingServer answers every request with body and remembers the last request.
type recordingServer struct {
	*httptest.Server
	method string
	uri    string
	body   map[string]any
	calls  int
}

func newRecordingServer(t *testing.T, body string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.calls++
		rs.method = r.Method
		rs.uri = r.URL.RequestURI()
		rs.body = nil
		if r.ContentLength > 0 {
			_ = json.NewDecoder(r.Body).Decode(&rs.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func TestHealth(t *testing.T) {
	srv := newRecordingServer(t, `{"status":"ok","agents_connected":2,"version":"1.0.0"}`)

	h, err := New(srv.URL, "").Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GET", srv.method)
	assert.Equal(t, "/health", srv.uri)
	assert.Equal(t, &Health{Status: "ok", AgentsConnected: 2, Version: "1.0.0"}, h)
}

func TestListSystems(t *testing.T) {
	srv := newRecordingServer(t, `[{"id":"s1","name":"ECC-PROD","type":"ecc","host_label":"ecc-prod","client_nr":"100","agent_connected":true}]`)

	systems, err := New(srv.URL, "").ListSystems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/systems", srv.uri)
	require.Len(t, systems, 1)
	assert.Equal(t, studio.SystemECC, systems[0].Type)
	assert.True(t, systems[0].AgentConnected)
}

func TestRegisterSystem(t *testing.T) {
	srv := newRecordingServer(t, `{"id":"s2","name":"BTP","agent_token":"acs_abc"}`)
	c := New(srv.URL, "")

	resp, err := c.RegisterSystem(context.Background(), RegisterSystemRequest{
		Name: "BTP", Type: studio.SystemBTPABAPCloud, HostLabel: "btp-dev",
	})
	require.NoError(t, err)
	assert.Equal(t, "acs_abc", resp.AgentToken)
	assert.Equal(t, "POST", srv.method)
	assert.Equal(t, "100", srv.body["client_nr"], "client number defaults to 100")
	assert.Equal(t, map[string]any{}, srv.body["features"])

	_, err = c.RegisterSystem(context.Background(), RegisterSystemRequest{Name: "X", Type: "s4"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindInvalid))
	_, err = c.RegisterSystem(context.Background(), RegisterSystemRequest{Type: studio.SystemECC})
	require.Error(t, err)
	assert.Equal(t, 1, srv.calls, "invalid requests are not sent")
}

func TestCreateAndGetSession(t *testing.T) {
	srv := newRecordingServer(t, `{"session_id":"abc","status":"processing","model_used":"auto","id":"abc","prompt":"p","system_target":"ECC"}`)
	c := New(srv.URL, "")
	ctx := context.Background()

	resp, err := c.CreateSession(ctx, SessionRequest{Prompt: "add field", TargetSystem: "ECC", ModelPreference: studio.ModelAuto})
	require.NoError(t, err)
	assert.Equal(t, "/api/sessions", srv.uri)
	assert.Equal(t, "add field", srv.body["prompt"])
	assert.Equal(t, "ECC", srv.body["target_system"])
	assert.Equal(t, "processing", resp.Status)

	sess, err := c.GetSession(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "/api/sessions/abc", srv.uri)
	assert.Equal(t, "ECC", sess.SystemTarget)

	_, err = c.GetSession(ctx, "")
	assert.True(t, errors.Is(err, errors.KindInvalid))
	_, err = c.CreateSession(ctx, SessionRequest{})
	assert.True(t, errors.Is(err, errors.KindInvalid))
}

func TestReviewSession(t *testing.T) {
	srv := newRecordingServer(t, `{"status":"approved","session_id":"abc"}`)
	c := New(srv.URL, "")
	ctx := context.Background()

	resp, err := c.ReviewSession(ctx, "abc", ReviewRequest{Action: studio.ActionApprove, Comment: "lgtm"})
	require.NoError(t, err)
	assert.Equal(t, "/api/sessions/abc/review", srv.uri)
	assert.Equal(t, "approve", srv.body["action"])
	assert.Equal(t, studio.ReviewApproved, resp.Status)

	_, err = c.ReviewSession(ctx, "abc", ReviewRequest{Action: "merge"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindInvalid))
	assert.Equal(t, 1, srv.calls)
}

func TestListObjects_Query(t *testing.T) {
	srv := newRecordingServer(t, `[{"name":"ZCL_SALES","type":"CLAS","package":"ZSD"}]`)
	c := New(srv.URL, "")
	ctx := context.Background()

	objects, err := c.ListObjects(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, "/api/objects", srv.uri)
	require.Len(t, objects, 1)
	assert.Equal(t, studio.ObjectClass, objects[0].Type)

	_, err = c.ListObjects(ctx, "ECC PROD", studio.ObjectCDSView)
	require.NoError(t, err)
	assert.Equal(t, "/api/objects?object_type=DDLS&system=ECC+PROD", srv.uri)
}

func TestAuditLog_Limit(t *testing.T) {
	srv := newRecordingServer(t, `[]`)
	c := New(srv.URL, "")

	tests := []struct {
		limit int
		want  string
	}{
		{0, "/api/audit?limit=50"},
		{-3, "/api/audit?limit=50"},
		{1, "/api/audit?limit=1"},
		{500, "/api/audit?limit=500"},
		{9000, "/api/audit?limit=500"},
	}
	for _, tt := range tests {
		_, err := c.AuditLog(context.Background(), tt.limit)
		require.NoError(t, err)
		assert.Equal(t, "GET", srv.method)
		assert.Equal(t, tt.want, srv.uri, "limit %d", tt.limit)
	}
}

func TestGenerate(t *testing.T) {
	srv := newRecordingServer(t, `{"model_selected":"claude"}`)

	resp, err := New(srv.URL, "").Generate(context.Background(), SessionRequest{Prompt: "explain ZCL_A", TargetSystem: "ECC"})
	require.NoError(t, err)
	assert.Equal(t, "/api/ai/generate", srv.uri)
	assert.Equal(t, "claude", resp.ModelSelected)
}
