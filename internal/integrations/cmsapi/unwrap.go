package cmsapi

import (
	"encoding/json"
	"strings"
)

// UnwrapErrorMessage digs the human-readable error out of a CMS error
// body. The CMS nests its real message in several shapes, sometimes
// double-JSON-encoded, so unwrapping proceeds in order:
//
//  1. the _server_messages field: a JSON-encoded array of JSON-encoded
//     objects, first entry's "message" wins;
//  2. a nested {"message": {"message": "..."}} object;
//  3. a string-typed "message" that itself parses as JSON carrying a
//     "message" field;
//  4. the literal string value, if nothing above applies.
//
// An empty result means the body carried no usable message.
func UnwrapErrorMessage(body []byte) string {
	var envelope struct {
		ServerMessages string          `json:"_server_messages"`
		Message        json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	if msg := unwrapServerMessages(envelope.ServerMessages); msg != "" {
		return msg
	}
	return unwrapMessage(envelope.Message)
}

func unwrapServerMessages(raw string) string {
	if raw == "" {
		return ""
	}
	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || len(entries) == 0 {
		return ""
	}
	var inner struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(entries[0]), &inner); err == nil && inner.Message != "" {
		return inner.Message
	}
	return entries[0]
}

func unwrapMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	// Nested object: {"message": {"message": "..."}}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil && nested.Message != "" {
		return nested.Message
	}

	// String-typed message, possibly JSON-encoded one more time
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	if strings.HasPrefix(strings.TrimSpace(s), "{") {
		if err := json.Unmarshal([]byte(s), &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
	}
	return s
}
