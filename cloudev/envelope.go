package cloudev

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Result is the uniform envelope every operation resolves to. Operations
// never return a Go error: any failure, whether reported by the server or
// raised by the transport, lands here with Success=false and a best-effort
// Message. Callers branch on Success only; Message is diagnostic text, not
// a stable error taxonomy.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// apiEnvelope is the wire shape of every server response. Data is decoded
// in a second stage so a payload of the wrong shape can be normalized
// instead of poisoning the whole envelope.
type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is a non-2xx response whose body carried a structured message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// parseErr reduces any transport failure to the message surfaced to
// callers. A structured server message is passed through verbatim;
// everything else (network failure, timeout, malformed body) becomes the
// fixed fallback. This is the only place error detail is extracted.
func parseErr(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "unexpected error"
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

// call dispatches one request and maps the outcome through the envelope
// contract: transport errors via parseErr, embedded failures via the
// server message (or "failed"), and a payload of the wrong shape treated
// as an application failure.
func call[T any](c *Client, name, method, path string, body any) Result[T] {
	env, err := c.dispatch(name, method, path, body)
	if err != nil {
		return Result[T]{Success: false, Message: parseErr(err)}
	}
	if !env.Success {
		return Result[T]{Success: false, Message: messageOr(env.Message, "failed")}
	}
	var data T
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return Result[T]{Success: false, Message: messageOr(env.Message, "failed")}
		}
	}
	return Result[T]{Success: true, Message: env.Message, Data: data}
}

// callList is call for list-shaped payloads. Data is always a non-nil
// slice so callers can range over it without checking Success first, and
// a missing or non-array payload counts as failure.
func callList[T any](c *Client, name, method, path string, body any) Result[[]T] {
	env, err := c.dispatch(name, method, path, body)
	if err != nil {
		return Result[[]T]{Success: false, Message: parseErr(err), Data: []T{}}
	}
	if !env.Success {
		return Result[[]T]{Success: false, Message: messageOr(env.Message, "failed"), Data: []T{}}
	}
	var data []T
	if err := json.Unmarshal(env.Data, &data); err != nil || data == nil {
		return Result[[]T]{Success: false, Message: messageOr(env.Message, "failed"), Data: []T{}}
	}
	return Result[[]T]{Success: true, Message: env.Message, Data: data}
}
