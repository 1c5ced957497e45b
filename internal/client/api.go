package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/abapcodestudio/codestudio/internal/errors"
	"github.com/abapcodestudio/codestudio/internal/studio"
)

// Audit log limits accepted by the backend.
const (
	DefaultAuditLimit = 50
	MaxAuditLimit     = 500
)

// Health is the backend's liveness payload.
type Health struct {
	Status          string `json:"status"`
	AgentsConnected int    `json:"agents_connected"`
	Version         string `json:"version"`
}

// RegisterSystemRequest registers system metadata. Credentials and real
// hostnames never leave the customer's agent.
type RegisterSystemRequest struct {
	Name         string            `json:"name"`
	Type         studio.SystemType `json:"type"`
	HostLabel    string            `json:"host_label"`
	ClientNr     string            `json:"client_nr"`
	BasisVersion string            `json:"basis_version,omitempty"`
	Features     map[string]any    `json:"features"`
}

// RegisterSystemResponse carries the token the on-premise agent uses to connect.
type RegisterSystemResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AgentToken string `json:"agent_token"`
}

// SessionRequest starts an AI code generation session.
type SessionRequest struct {
	Prompt          string       `json:"prompt"`
	TargetSystem    string       `json:"target_system"`
	ModelPreference studio.Model `json:"model_preference,omitempty"`
}

// SessionResponse is the state of an AI session.
type SessionResponse struct {
	SessionID       string              `json:"session_id"`
	Status          string              `json:"status"`
	ModelUsed       string              `json:"model_used,omitempty"`
	ObjectsRead     []string            `json:"objects_read"`
	ObjectsModified []string            `json:"objects_modified"`
	Diffs           []studio.CodeDiff   `json:"diffs"`
	Confidence      float64             `json:"confidence"`
	Pipeline        *studio.PipelineRun `json:"pipeline_status,omitempty"`
}

// Session is a stored session record as returned by GetSession.
type Session struct {
	ID           string              `json:"id"`
	Prompt       string              `json:"prompt"`
	SystemTarget string              `json:"system_target"`
	Status       string              `json:"status"`
	ReviewStatus studio.ReviewStatus `json:"review_status,omitempty"`
	CreatedAt    string              `json:"created_at,omitempty"`
}

// ReviewRequest is a reviewer's decision.
type ReviewRequest struct {
	Action  studio.ReviewAction `json:"action"`
	Comment string              `json:"comment,omitempty"`
}

// ReviewResponse reports the session's new status.
type ReviewResponse struct {
	Status    studio.ReviewStatus `json:"status"`
	SessionID string              `json:"session_id"`
}

// AuditEntry is one audit log row.
type AuditEntry struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Action    string `json:"action"`
	SessionID string `json:"session_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// GenerateResponse reports which model the backend selected.
type GenerateResponse struct {
	ModelSelected string `json:"model_selected"`
	Note          string `json:"note,omitempty"`
}

// Health checks backend liveness.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.Request(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// ListSystems returns the tenant's registered systems.
func (c *Client) ListSystems(ctx context.Context) ([]studio.System, error) {
	var systems []studio.System
	if err := c.Request(ctx, http.MethodGet, "/api/systems", nil, &systems); err != nil {
		return nil, err
	}
	return systems, nil
}

// RegisterSystem registers a system's metadata. ClientNr defaults to "100".
func (c *Client) RegisterSystem(ctx context.Context, req RegisterSystemRequest) (*RegisterSystemResponse, error) {
	if req.Name == "" {
		return nil, errors.InvalidArgument("client.RegisterSystem", "system name is required")
	}
	if !req.Type.Valid() {
		return nil, errors.InvalidArgument("client.RegisterSystem", "unknown system type "+strconv.Quote(string(req.Type)))
	}
	if req.ClientNr == "" {
		req.ClientNr = "100"
	}
	if req.Features == nil {
		req.Features = map[string]any{}
	}
	var resp RegisterSystemResponse
	if err := c.Request(ctx, http.MethodPost, "/api/systems", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateSession starts an AI session against a target system.
func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (*SessionResponse, error) {
	if req.Prompt == "" {
		return nil, errors.InvalidArgument("client.CreateSession", "prompt is required")
	}
	var resp SessionResponse
	if err := c.Request(ctx, http.MethodPost, "/api/sessions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSession fetches a session by ID.
func (c *Client) GetSession(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("client.GetSession", "session id is required")
	}
	var s Session
	if err := c.Request(ctx, http.MethodGet, "/api/sessions/"+url.PathEscape(id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReviewSession approves, rejects or comments on a session. Unknown actions
// are rejected before any request is sent.
func (c *Client) ReviewSession(ctx context.Context, id string, req ReviewRequest) (*ReviewResponse, error) {
	if id == "" {
		return nil, errors.InvalidArgument("client.ReviewSession", "session id is required")
	}
	if _, err := studio.ParseReviewAction(string(req.Action)); err != nil {
		return nil, errors.E(errors.Op("client.ReviewSession"), errors.KindInvalid, err)
	}
	var resp ReviewResponse
	path := "/api/sessions/" + url.PathEscape(id) + "/review"
	if err := c.Request(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListObjects lists catalog metadata, optionally filtered by system name and
// object type. Empty filters are omitted.
func (c *Client) ListObjects(ctx context.Context, system string, objectType studio.ObjectType) ([]studio.Object, error) {
	q := url.Values{}
	if system != "" {
		q.Set("system", system)
	}
	if objectType != "" {
		q.Set("object_type", string(objectType))
	}
	path := "/api/objects"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var objects []studio.Object
	if err := c.Request(ctx, http.MethodGet, path, nil, &objects); err != nil {
		return nil, err
	}
	return objects, nil
}

// ClampAuditLimit maps limit into the range the backend accepts. Non-positive
// values select DefaultAuditLimit.
func ClampAuditLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultAuditLimit
	case limit > MaxAuditLimit:
		return MaxAuditLimit
	default:
		return limit
	}
}

// AuditLog returns the newest audit entries first.
func (c *Client) AuditLog(ctx context.Context, limit int) ([]AuditEntry, error) {
	path := "/api/audit?limit=" + strconv.Itoa(ClampAuditLimit(limit))
	var entries []AuditEntry
	if err := c.Request(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Generate asks the backend to route a prompt to a model.
func (c *Client) Generate(ctx context.Context, req SessionRequest) (*GenerateResponse, error) {
	if req.Prompt == "" {
		return nil, errors.InvalidArgument("client.Generate", "prompt is required")
	}
	var resp GenerateResponse
	if err := c.Request(ctx, http.MethodPost, "/api/ai/generate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
