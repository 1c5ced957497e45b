package channel

import "encoding/json"

// Frame types exchanged over the channel.
const (
	TypeAuth        = "auth"
	TypePing        = "ping"
	TypePong        = "pong"
	TypePipeline    = "pipeline"
	TypeDiff        = "diff"
	TypeAgentStatus = "agent_status"
	TypeResult      = "result"
	TypeError       = "error"
)

// Frame is one decoded JSON message. Type and SessionID are lifted out for
// dispatch; Raw holds the full document for typed decoding.
type Frame struct {
	Type      string
	SessionID string
	Raw       json.RawMessage
}

// ParseFrame decodes data into a Frame. Only malformed JSON is an error: a
// document that is not an object yields an empty Type, and a non-string
// type or session_id is carried as its JSON text.
func ParseFrame(data []byte) (Frame, error) {
	if !json.Valid(data) {
		var v any
		return Frame{}, json.Unmarshal(data, &v)
	}
	f := Frame{Raw: append(json.RawMessage(nil), data...)}

	var fields map[string]json.RawMessage
	if json.Unmarshal(data, &fields) != nil {
		return f, nil
	}
	f.Type = lenientString(fields["type"])
	f.SessionID = lenientString(fields["session_id"])
	return f, nil
}

// lenientString returns a JSON string's value, "" for null or absent, and the
// literal text of any other value.
func lenientString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

// Decode unmarshals the full frame into v.
func (f Frame) Decode(v any) error {
	return json.Unmarshal(f.Raw, v)
}

type authFrame struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

type pongFrame struct {
	Type string `json:"type"`
}
