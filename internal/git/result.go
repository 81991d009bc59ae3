package git

import "encoding/json"

// Result is the envelope returned by every operation.
//
// Code is 0 on success and the git exit status otherwise. Message carries
// the diagnostic output on failure, and the trimmed output on success for
// operations that do not parse it. Value is set only on success for
// operations that do.
type Result[T any] struct {
	Code    int
	Message string
	Value   T

	// field is the JSON key Value is published under; empty for raw results.
	field string
}

// Ack is the result of an operation whose only payload is git's message.
type Ack = Result[struct{}]

// OK reports whether git exited successfully.
func (r Result[T]) OK() bool {
	return r.Code == 0
}

// Field returns the JSON key the payload is published under, or "" when the
// result carries only a message.
func (r Result[T]) Field() string {
	return r.field
}

// MarshalJSON renders {"code": N, "message": "..."} on failure and for raw
// results, and {"code": 0, "<field>": value} for parsed ones.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Code != 0 || r.field == "" {
		return json.Marshal(struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}{r.Code, r.Message})
	}
	return json.Marshal(map[string]any{
		"code":  r.Code,
		r.field: r.Value,
	})
}

// failed converts a failure envelope of any payload type into another.
func failed[T, U any](res Result[U]) Result[T] {
	return Result[T]{Code: res.Code, Message: res.Message}
}
