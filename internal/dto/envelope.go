package dto

import "encoding/json"

// Envelope is the single JSON shape returned by every endpoint:
// {"success": bool, "<key>": payload, "error", "kind", "details", "message"}.
// The payload key defaults to "data".
type Envelope struct {
	Success bool
	Key     string
	Payload any
	Error   string
	Kind    string
	Details any
	Message string
}

// OK wraps payload under "data".
func OK(payload any) Envelope {
	return Envelope{Success: true, Key: "data", Payload: payload}
}

// OKAs wraps payload under an endpoint-specific key such as "company".
func OKAs(key string, payload any) Envelope {
	return Envelope{Success: true, Key: key, Payload: payload}
}

// Fail builds an error envelope.
func Fail(message, kind string, details any) Envelope {
	return Envelope{Error: message, Kind: kind, Details: details}
}

// WithMessage returns a copy of e carrying a human readable message.
func (e Envelope) WithMessage(message string) Envelope {
	e.Message = message
	return e
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	out := map[string]any{"success": e.Success}
	if e.Success {
		key := e.Key
		if key == "" {
			key = "data"
		}
		out[key] = e.Payload
	}
	if e.Error != "" {
		out["error"] = e.Error
	}
	if e.Kind != "" {
		out["kind"] = e.Kind
	}
	if e.Details != nil {
		out["details"] = e.Details
	}
	if e.Message != "" {
		out["message"] = e.Message
	}
	return json.Marshal(out)
}
